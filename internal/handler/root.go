package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Greeting answers GET / so a bare request to the host shows the API is up.
func Greeting(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: "Hello World"})
}
