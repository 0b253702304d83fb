package http

import (
	"net/http"

	"clinic/internal/core/application/usecases/commands"
	"clinic/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// RegisterPatient handles POST /api/v1/patients.
func (s *Server) RegisterPatient(c echo.Context) error {
	var req RegisterPatientRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	cmd, err := commands.NewRegisterPatientCommand(req.Name, req.CPF)
	if err != nil {
		return badRequest(c, "Invalid patient data: "+err.Error())
	}

	id, err := s.handlers.RegisterPatient.Handle(c.Request().Context(), cmd)
	if err != nil {
		s.logFailure("registering patient", err)
		return respondError(c, err, ResourcePatient)
	}

	return c.JSON(http.StatusOK, IDResponse{ID: id})
}

// FindPatient handles GET /api/v1/patients/:cpf.
func (s *Server) FindPatient(c echo.Context) error {
	query, err := queries.NewFindPatientByCPFQuery(c.Param("cpf"))
	if err != nil {
		return badRequest(c, "Invalid patient CPF: "+err.Error())
	}

	found, err := s.handlers.FindPatient.Handle(c.Request().Context(), query)
	if err != nil {
		s.logFailure("finding patient", err)
		return respondError(c, err, ResourcePatient)
	}

	resp, ok := toPatientResponse(found)
	if !ok {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, resp)
}

// UpdatePatient handles PUT /api/v1/patients/:cpf.
func (s *Server) UpdatePatient(c echo.Context) error {
	var req UpdatePatientRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	cmd, err := commands.NewUpdatePatientCommand(c.Param("cpf"), req.Name)
	if err != nil {
		return badRequest(c, "Invalid patient data: "+err.Error())
	}

	updated, err := s.handlers.UpdatePatient.Handle(c.Request().Context(), cmd)
	if err != nil {
		s.logFailure("updating patient", err)
		return respondError(c, err, ResourcePatient)
	}

	resp, ok := toPatientResponse(updated)
	if !ok {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, resp)
}

// DeletePatient handles DELETE /api/v1/patients/:cpf.
func (s *Server) DeletePatient(c echo.Context) error {
	cmd, err := commands.NewDeletePatientCommand(c.Param("cpf"))
	if err != nil {
		return badRequest(c, "Invalid patient CPF: "+err.Error())
	}

	if err = s.handlers.DeletePatient.Handle(c.Request().Context(), cmd); err != nil {
		s.logFailure("deleting patient", err)
		return respondError(c, err, ResourcePatient)
	}

	return c.NoContent(http.StatusNoContent)
}
