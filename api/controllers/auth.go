package controllers

import (
	"net/http"

	"github.com/drivecans/storefront-backend/api/middleware"
	"github.com/drivecans/storefront-backend/api/responses"
	"github.com/drivecans/storefront-backend/api/validators"
	authsvc "github.com/drivecans/storefront-backend/internal/auth"
	"github.com/drivecans/storefront-backend/pkg/config"
	pkgerrors "github.com/drivecans/storefront-backend/pkg/errors"
	"github.com/drivecans/storefront-backend/pkg/logger"
)

// Register creates a user account.
func Register(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var payload authsvc.RegisterRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Register(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

// Login authenticates a user and sets the auth cookie.
func Login(cfg config.SessionConfig, svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var payload authsvc.LoginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		http.SetCookie(w, middleware.NewSessionCookie(cfg.AuthCookie, result.Token, cfg.TTL))
		responses.WriteSuccess(w, result.User)
	}
}

// Logout revokes the auth session if one is present and clears the
// cookie. Calling it without a session still succeeds.
func Logout(cfg config.SessionConfig, svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		token := ""
		if cookie, err := r.Cookie(cfg.AuthCookie); err == nil {
			token = cookie.Value
		}

		if err := svc.Logout(r.Context(), token); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		http.SetCookie(w, middleware.ClearSessionCookie(cfg.AuthCookie))
		responses.WriteSuccess(w, map[string]bool{"ok": true})
	}
}
