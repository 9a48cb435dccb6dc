package controllers

import (
	"context"
	"net/http"

	"github.com/srmns/quotation-backend/api/responses"
	"github.com/srmns/quotation-backend/pkg/logger"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// Health reports liveness and database reachability.
func Health(db pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := db.Ping(ctx); err != nil {
			if logg != nil {
				logg.Error(ctx, "health.db_ping_failed", err)
			}
			responses.WriteJSON(w, http.StatusInternalServerError, map[string]string{
				"status": "DB ERROR",
				"error":  err.Error(),
			})
			return
		}

		responses.WriteJSON(w, http.StatusOK, map[string]string{"status": "OK"})
	}
}
