package http

import (
	"errors"
	"net/http"

	"clinic/internal/core/application/apperrors"

	"github.com/labstack/echo/v4"
)

// HTTPError is the body of every error response.
type HTTPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e HTTPError) Error() string {
	return e.Message
}

// Resource names the entity an error response is about.
type Resource string

const (
	ResourceAppointment Resource = "appointment"
	ResourcePatient     Resource = "patient"
)

// FromApplication maps a use-case error to its HTTP status and message:
//
//	Constraint      -> 422 "A constraint error occurred for the <resource>: ..."
//	Unexpected      -> 500 "An internal error occurred for the <resource>: ..."
//	NotFound        -> 404 "The <resource> could not be found: ..."
//	PatientNotFound -> 404 "The patient could not be found: <cpf>"
//	LoginFailed     -> 401 with the error message
//
// Errors outside the taxonomy are treated as Unexpected.
func FromApplication(err error, resource Resource) HTTPError {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		return HTTPError{
			Code:    http.StatusInternalServerError,
			Message: "An internal error occurred for the " + string(resource) + ": " + err.Error(),
		}
	}

	switch appErr.Kind {
	case apperrors.KindConstraint:
		return HTTPError{
			Code:    http.StatusUnprocessableEntity,
			Message: "A constraint error occurred for the " + string(resource) + ": " + appErr.Detail,
		}
	case apperrors.KindNotFound:
		return HTTPError{
			Code:    http.StatusNotFound,
			Message: "The " + string(resource) + " could not be found: " + appErr.Detail,
		}
	case apperrors.KindPatientNotFound:
		return HTTPError{
			Code:    http.StatusNotFound,
			Message: "The patient could not be found: " + appErr.Detail,
		}
	case apperrors.KindLoginFailed:
		return HTTPError{Code: http.StatusUnauthorized, Message: appErr.Error()}
	default:
		return HTTPError{
			Code:    http.StatusInternalServerError,
			Message: "An internal error occurred for the " + string(resource) + ": " + appErr.Detail,
		}
	}
}

func respondError(c echo.Context, err error, resource Resource) error {
	httpErr := FromApplication(err, resource)
	return c.JSON(httpErr.Code, httpErr)
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, HTTPError{Code: http.StatusBadRequest, Message: message})
}

// ErrorHandler renders errors that escape the handlers, such as unknown routes
// and rejected bearer tokens, with the same body as FromApplication.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	body := HTTPError{Code: http.StatusInternalServerError, Message: http.StatusText(http.StatusInternalServerError)}

	var httpErr HTTPError
	var echoErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		body = httpErr
	case errors.As(err, &echoErr):
		body.Code = echoErr.Code
		if msg, ok := echoErr.Message.(string); ok {
			body.Message = msg
		} else {
			body.Message = http.StatusText(echoErr.Code)
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(body.Code)
		return
	}
	_ = c.JSON(body.Code, body)
}
