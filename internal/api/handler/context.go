package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	appmiddleware "github.com/flowiq/flowiq/internal/api/middleware"
)

// currentUserID extracts the user id the gate attached to the request.
// Its presence proves the gate ran; handlers behind the gate fail with 401
// rather than panic when wired incorrectly.
func currentUserID(c echo.Context) (string, error) {
	id, _ := c.Get(appmiddleware.CtxUserID).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
