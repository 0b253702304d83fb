package http

import (
	"net/http"

	"clinic/internal/core/application/apperrors"
	"clinic/internal/core/application/usecases/commands"
	"clinic/internal/core/application/usecases/queries"
	"clinic/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// BookAppointment handles POST /api/v1/appointments.
func (s *Server) BookAppointment(c echo.Context) error {
	var req BookAppointmentRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	cmd, err := commands.NewBookAppointmentCommand(req.PatientCPF, req.AppointmentAt, req.Specialty, req.Notes)
	if err != nil {
		return badRequest(c, "Invalid appointment data: "+err.Error())
	}

	booked, err := s.handlers.BookAppointment.Handle(c.Request().Context(), cmd)
	if err != nil {
		if apperrors.IsConstraint(err) {
			s.metrics.Appointment(metrics.OutcomeConflict)
		}
		s.logFailure("booking appointment", err)
		return respondError(c, err, ResourceAppointment)
	}
	s.metrics.Appointment(metrics.OutcomeBooked)

	resp, ok := toAppointmentResponse(booked)
	if !ok {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, resp)
}

// CancelAppointment handles PATCH /api/v1/appointments/cancellation.
func (s *Server) CancelAppointment(c echo.Context) error {
	var req CancelAppointmentRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	cmd, err := commands.NewCancelAppointmentCommand(req.PatientCPF, req.AppointmentAt, req.CancellationReason)
	if err != nil {
		return badRequest(c, "Invalid cancellation data: "+err.Error())
	}

	canceled, err := s.handlers.CancelAppointment.Handle(c.Request().Context(), cmd)
	if err != nil {
		s.logFailure("canceling appointment", err)
		return respondError(c, err, ResourceAppointment)
	}
	s.metrics.Appointment(metrics.OutcomeCanceled)

	resp, ok := toAppointmentResponse(canceled)
	if !ok {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, resp)
}

// ListPatientAppointments handles GET /api/v1/patients/:cpf/appointments.
func (s *Server) ListPatientAppointments(c echo.Context) error {
	query, err := queries.NewListPatientAppointmentsQuery(c.Param("cpf"))
	if err != nil {
		return badRequest(c, "Invalid patient CPF: "+err.Error())
	}

	list, err := s.handlers.ListPatientAppointments.Handle(c.Request().Context(), query)
	if err != nil {
		s.logFailure("listing appointments", err)
		return respondError(c, err, ResourceAppointment)
	}

	return c.JSON(http.StatusOK, toAppointmentResponses(list))
}

// logFailure logs unexpected use-case failures. Business errors are part of
// normal operation and are only visible in the request log.
func (s *Server) logFailure(operation string, err error) {
	if apperrors.IsUnexpected(err) || apperrors.KindOf(err) == apperrors.KindUnknown {
		s.logger.Error(operation, zap.Error(err))
	}
}
