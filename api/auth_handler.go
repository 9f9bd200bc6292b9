package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authHandler struct {
	responder   Responder
	logger      zerolog.Logger
	adminSecret string
}

func newAuthHandler(adminSecret string) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		adminSecret: adminSecret,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
}

// login checks the shared admin secret and hands out a session token the
// front end can present on mutating calls.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteJSONWithStatus(w, http.StatusUnauthorized, loginResponse{
				Success: false,
				Message: "Access Denied",
			})
			return
		}

		// An unset secret denies everyone, including the empty string
		if h.adminSecret == "" || req.Password == "" || !secretsMatch(req.Password, h.adminSecret) {
			h.responder.WriteJSONWithStatus(w, http.StatusUnauthorized, loginResponse{
				Success: false,
				Message: "Access Denied",
			})
			return
		}

		token, err := generateSessionToken(h.adminSecret)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to sign session token")
			h.responder.WriteJSONWithStatus(w, http.StatusUnauthorized, loginResponse{
				Success: false,
				Message: "Access Denied",
			})
			return
		}

		h.responder.WriteJSON(w, loginResponse{
			Success: true,
			Token:   token,
		})
	}
}
