package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aoicon/registration-auth/internal/api/middleware"
	"github.com/aoicon/registration-auth/internal/core/domain"
)

// ctxPrincipal extracts the session principal injected by the Session
// middleware. An empty ID means the middleware did not run or the token was
// rejected; reject with 401 before any further work.
func ctxPrincipal(c echo.Context) (domain.SessionPrincipal, error) {
	principal, _ := c.Get(middleware.PrincipalKey).(domain.SessionPrincipal)
	if principal.ID == "" {
		return domain.SessionPrincipal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return principal, nil
}
