package controllers

import (
	"net/http"

	"github.com/srmns/quotation-backend/api/responses"
	"github.com/srmns/quotation-backend/api/validators"
	"github.com/srmns/quotation-backend/internal/auth"
	"github.com/srmns/quotation-backend/pkg/logger"
)

// Register creates an operator account.
func Register(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req auth.RegisterRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.Register(ctx, req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteMessage(w, http.StatusCreated, "User registered successfully")
	}
}

// Login verifies credentials and returns the user plus an access token.
func Login(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.Login(ctx, req)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, result)
	}
}
