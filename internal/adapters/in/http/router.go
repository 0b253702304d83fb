package http

import (
	"net/http"

	"clinic/internal/core/ports"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance with middleware and all routes.
// Swagger UI reads the document registered in the swag registry.
func NewRouter(s *Server, tokens ports.TokenService) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.WARN)
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(RequestLogger(s.logger))
	e.Use(Metrics(s.metrics))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")
	api.POST("/login", s.Login)

	secured := api.Group("", BearerAuth(tokens))
	secured.POST("/patients", s.RegisterPatient)
	secured.GET("/patients/:cpf", s.FindPatient)
	secured.PUT("/patients/:cpf", s.UpdatePatient)
	secured.DELETE("/patients/:cpf", s.DeletePatient)
	secured.GET("/patients/:cpf/appointments", s.ListPatientAppointments)
	secured.POST("/appointments", s.BookAppointment)
	secured.PATCH("/appointments/cancellation", s.CancelAppointment)

	return e
}
