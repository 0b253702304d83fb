// Package http exposes the clinic use cases over HTTP with echo.
//
// Routes:
//
//	POST   /api/v1/login                      admin login, public
//	POST   /api/v1/patients                   register patient
//	GET    /api/v1/patients/:cpf              find patient
//	PUT    /api/v1/patients/:cpf              rename patient
//	DELETE /api/v1/patients/:cpf              delete patient
//	GET    /api/v1/patients/:cpf/appointments list appointments of a patient
//	POST   /api/v1/appointments               book appointment
//	PATCH  /api/v1/appointments/cancellation  cancel appointment
//	GET    /health, /metrics, /swagger/*      operational endpoints, public
//
// Every /api/v1 route except login requires a bearer token.
package http

import (
	"context"

	"clinic/internal/core/application/usecases/commands"
	"clinic/internal/core/application/usecases/queries"
	"clinic/internal/core/domain/model/appointment"
	"clinic/internal/core/domain/model/patient"
	"clinic/internal/pkg/metrics"

	"go.uber.org/zap"
)

// BookAppointmentHandler books an appointment.
type BookAppointmentHandler interface {
	Handle(ctx context.Context, command commands.BookAppointmentCommand) (*appointment.Appointment, error)
}

// CancelAppointmentHandler cancels an appointment.
type CancelAppointmentHandler interface {
	Handle(ctx context.Context, command commands.CancelAppointmentCommand) (*appointment.Appointment, error)
}

// ListPatientAppointmentsHandler lists the appointments of a patient.
type ListPatientAppointmentsHandler interface {
	Handle(ctx context.Context, query queries.ListPatientAppointmentsQuery) ([]*appointment.Appointment, error)
}

// RegisterPatientHandler registers a patient.
type RegisterPatientHandler interface {
	Handle(ctx context.Context, command commands.RegisterPatientCommand) (int32, error)
}

// FindPatientHandler finds a patient by CPF.
type FindPatientHandler interface {
	Handle(ctx context.Context, query queries.FindPatientByCPFQuery) (*patient.Patient, error)
}

// UpdatePatientHandler renames a patient.
type UpdatePatientHandler interface {
	Handle(ctx context.Context, command commands.UpdatePatientCommand) (*patient.Patient, error)
}

// DeletePatientHandler deletes a patient.
type DeletePatientHandler interface {
	Handle(ctx context.Context, command commands.DeletePatientCommand) error
}

// LoginHandler authenticates an admin.
type LoginHandler interface {
	Handle(ctx context.Context, command commands.LoginCommand) (string, error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	BookAppointment         BookAppointmentHandler
	CancelAppointment       CancelAppointmentHandler
	ListPatientAppointments ListPatientAppointmentsHandler
	RegisterPatient         RegisterPatientHandler
	FindPatient             FindPatientHandler
	UpdatePatient           UpdatePatientHandler
	DeletePatient           DeletePatientHandler
	Login                   LoginHandler
}

// Server translates HTTP requests into commands and queries and use-case
// results into responses.
type Server struct {
	handlers Handlers
	metrics  *metrics.Collector
	logger   *zap.Logger
}

// NewServer creates a server for the given use cases.
func NewServer(handlers Handlers, collector *metrics.Collector, logger *zap.Logger) *Server {
	return &Server{
		handlers: handlers,
		metrics:  collector,
		logger:   logger.With(zap.String("component", "http")),
	}
}
