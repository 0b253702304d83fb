package http

import (
	"net/http"

	"clinic/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

// Login handles POST /api/v1/login. Every failure answers 401.
func (s *Server) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnauthorized, HTTPError{Code: http.StatusUnauthorized, Message: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnauthorized, HTTPError{Code: http.StatusUnauthorized, Message: err.Error()})
	}

	cmd, err := commands.NewLoginCommand(req.Email, req.Password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, HTTPError{Code: http.StatusUnauthorized, Message: err.Error()})
	}

	token, err := s.handlers.Login.Handle(c.Request().Context(), cmd)
	if err != nil {
		s.logFailure("admin login", err)
		return c.JSON(http.StatusUnauthorized, HTTPError{Code: http.StatusUnauthorized, Message: err.Error()})
	}

	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}
