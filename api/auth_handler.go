package api

import (
	"net/http"
	"time"

	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	auth      *services.AuthService
}

func newAuthHandler(auth *services.AuthService) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		auth:      auth,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type sessionUserView struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func newSessionUserView(s services.SessionInfo) sessionUserView {
	return sessionUserView{
		ID:        formatID(s.UserID),
		Username:  s.Username,
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	}
}

type loginResponse struct {
	Token string          `json:"token"`
	User  sessionUserView `json:"user"`
}

func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		result, err := h.auth.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			if errs.IsInvalidCredentialsError(err) {
				h.logger.Warn().Str("username", req.Username).Msg("failed login attempt")
			}
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, loginResponse{
			Token: result.Token,
			User:  newSessionUserView(result.Session),
		})
	}
}

// logout always succeeds, with or without a valid token.
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := services.BearerToken(r.Header.Get("Authorization"))
		if err := h.auth.Logout(r.Context(), token); err != nil {
			h.logger.Error().Err(err).Msg("failed to delete session")
		}

		h.responder.WriteSuccess(w)
	}
}

func (h authHandler) me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := ctxGetSession(r.Context())
		if session == nil {
			h.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		h.responder.WriteJSON(w, newSessionUserView(*session))
	}
}

func (h authHandler) changePassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := ctxGetSession(r.Context())
		if session == nil {
			h.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		var req changePasswordRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.auth.ChangePassword(r.Context(), session.Username, req.CurrentPassword, req.NewPassword); err != nil {
			if errs.IsInvalidTokenError(err) {
				h.logger.Warn().Str("username", session.Username).Msg("session outlived its admin user")
			}
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w)
	}
}
