package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SessionHandler serves the rehydrated claim set to session-holding pages
// (badge rendering, certificate download). It reads the principal from the
// token alone — no store access after login.
type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

type sessionResponse struct {
	Success bool        `json:"success"`
	User    sessionUser `json:"user"`
}

// Session returns the caller's session claims.
//
// @Summary      Read the current session's identity claims
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  map[string]string
// @Security     BearerAuth
// @Router       /api/auth/session [get]
func (h *SessionHandler) Session(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{
		Success: true,
		User:    toSessionUser(principal),
	})
}
