package handler

import (
	"net/http"
	"time"

	"github.com/osse101/MudShop_Go/internal/eventlog"
	"github.com/osse101/MudShop_Go/internal/logger"
)

// HandleGetLedger returns recorded shop events, newest first. Filters:
// room, player, type, since (RFC 3339) and limit.
func HandleGetLedger(ledger eventlog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseLimit(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
			return
		}

		filter := eventlog.EventFilter{
			RoomID:    GetOptionalQueryParam(r, QueryRoom, ""),
			Player:    GetOptionalQueryParam(r, QueryPlayer, ""),
			EventType: GetOptionalQueryParam(r, QueryType, ""),
			Limit:     limit,
		}
		if raw := r.URL.Query().Get(QuerySince); raw != "" {
			since, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidSince)
				return
			}
			filter.Since = &since
		}

		events, err := ledger.Events(r.Context(), filter)
		if err != nil {
			logger.FromContext(r.Context()).Error(ErrMsgLedgerFailed, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgLedgerFailed)
			return
		}
		if events == nil {
			events = []eventlog.Event{}
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: events})
	}
}
