package handler

import (
	"net/http"
)

// CommandRequest is one command line typed by a player
type CommandRequest struct {
	Player  string `json:"player" validate:"required,max=32,playername"`
	Command string `json:"command" validate:"required,max=512,excludesall=\x00\r\n"`
}

// HandleCommand runs a command for a connected player. Its output reaches
// the player over their stream, so the call only acknowledges it.
func HandleCommand(exec CommandExecutor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CommandRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Command"); err != nil {
			return
		}

		if err := exec.Execute(r.Context(), req.Player, req.Command); err != nil {
			respondServiceError(w, r, "Command", err)
			return
		}

		respondJSON(w, http.StatusAccepted, SuccessResponse{Message: MsgCommandAccepted})
	}
}
