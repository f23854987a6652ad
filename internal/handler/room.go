package handler

import (
	"net/http"
)

// HandleGetRoom returns a room's persistent data
func HandleGetRoom(rooms RoomSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roomID, ok := GetPathParam(r, w, ParamRoomID)
		if !ok {
			return
		}
		data, err := rooms.RoomSnapshot(r.Context(), roomID)
		if err != nil {
			respondServiceError(w, r, "Get room", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: data})
	}
}

// HandleTickRoom runs one room's restock and shop upkeep immediately
func HandleTickRoom(rooms RoomSource, ticker RoomTicker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roomID, ok := GetPathParam(r, w, ParamRoomID)
		if !ok {
			return
		}
		rm, err := rooms.Room(r.Context(), roomID)
		if err != nil {
			respondServiceError(w, r, "Tick room", err)
			return
		}
		if err := ticker.TickRoom(r.Context(), rm); err != nil {
			respondServiceError(w, r, "Tick room", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRoomTicked})
	}
}
