package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lunchbox/catering-api/internal/core/domain"
)

// ctxClaims extracts the claims injected by the Auth middleware. A missing
// role means the middleware did not run for this route; reject rather than
// serve an unauthenticated request.
func ctxClaims(c echo.Context) (*domain.Claims, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ := c.Get("userId").(int64)
	email, _ := c.Get("email").(string)

	return &domain.Claims{UserID: userID, Email: email, Role: role}, nil
}
