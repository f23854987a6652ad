package handler

import (
	"net/http"

	"github.com/osse101/MudShop_Go/internal/domain"
)

// JoinRequest brings a player into the world
type JoinRequest struct {
	Name      string           `json:"name" validate:"required,max=32,playername"`
	RoomID    string           `json:"room_id" validate:"required,max=128"`
	Silver    int              `json:"silver" validate:"min=0"`
	Stats     map[string]int   `json:"stats,omitempty"`
	Skills    map[string]int   `json:"skills,omitempty"`
	Inventory []domain.ItemRef `json:"inventory,omitempty"`
}

// MoveRequest moves a player to another room
type MoveRequest struct {
	RoomID string `json:"room_id" validate:"required,max=128"`
}

// HandleJoin adds a player to the world
func HandleJoin(players PlayerRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req JoinRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Join"); err != nil {
			return
		}

		p := &domain.Player{
			Name:          req.Name,
			CurrentRoomID: req.RoomID,
			Wealth:        domain.Wealth{Silvers: req.Silver},
			Stats:         req.Stats,
			Skills:        req.Skills,
			Inventory:     req.Inventory,
		}
		if err := players.Join(r.Context(), p); err != nil {
			respondServiceError(w, r, "Join", err)
			return
		}

		respondJSON(w, http.StatusCreated, DataResponse{
			Message: MsgPlayerJoined,
			Data:    domain.PlayerInfo{Name: req.Name, CurrentRoomID: req.RoomID},
		})
	}
}

// HandleLeave removes a player from the world
func HandleLeave(players PlayerRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := GetPathParam(r, w, ParamName)
		if !ok {
			return
		}
		if _, found := players.Player(name); !found {
			respondError(w, http.StatusNotFound, ErrMsgPlayerNotFoundError)
			return
		}

		players.Leave(r.Context(), name)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPlayerLeft})
	}
}

// HandleMove puts a player in another room
func HandleMove(players PlayerRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := GetPathParam(r, w, ParamName)
		if !ok {
			return
		}
		var req MoveRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Move"); err != nil {
			return
		}

		if err := players.Move(r.Context(), name, req.RoomID); err != nil {
			respondServiceError(w, r, "Move", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPlayerMoved})
	}
}

// HandleGetPlayer returns a connected player's full record
func HandleGetPlayer(players PlayerRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := GetPathParam(r, w, ParamName)
		if !ok {
			return
		}
		p, found := players.PlayerSnapshot(name)
		if !found {
			respondError(w, http.StatusNotFound, ErrMsgPlayerNotFoundError)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: p})
	}
}

// HandleListPlayers lists every connected player
func HandleListPlayers(players PlayerRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: players.AllPlayers()})
	}
}
