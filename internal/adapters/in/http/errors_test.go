package http_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	clinichttp "clinic/internal/adapters/in/http"
	"clinic/internal/core/application/apperrors"

	"github.com/stretchr/testify/assert"
)

func TestFromApplication(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		resource clinichttp.Resource
		want     clinichttp.HTTPError
	}{
		{
			name:     "constraint",
			err:      apperrors.Constraint("slot taken"),
			resource: clinichttp.ResourceAppointment,
			want: clinichttp.HTTPError{
				Code:    http.StatusUnprocessableEntity,
				Message: "A constraint error occurred for the appointment: slot taken",
			},
		},
		{
			name:     "not found",
			err:      apperrors.NotFound("Patient not found by CPF: 1"),
			resource: clinichttp.ResourcePatient,
			want: clinichttp.HTTPError{
				Code:    http.StatusNotFound,
				Message: "The patient could not be found: Patient not found by CPF: 1",
			},
		},
		{
			name:     "patient not found on appointment route",
			err:      apperrors.PatientNotFound("00011122233"),
			resource: clinichttp.ResourceAppointment,
			want: clinichttp.HTTPError{
				Code:    http.StatusNotFound,
				Message: "The patient could not be found: 00011122233",
			},
		},
		{
			name:     "login failed",
			err:      apperrors.LoginFailed("Incorrect email or password"),
			resource: clinichttp.ResourcePatient,
			want:     clinichttp.HTTPError{Code: http.StatusUnauthorized, Message: "Incorrect email or password"},
		},
		{
			name:     "unexpected",
			err:      apperrors.Unexpected("db down").WithCause(errors.New("dial tcp")),
			resource: clinichttp.ResourceAppointment,
			want: clinichttp.HTTPError{
				Code:    http.StatusInternalServerError,
				Message: "An internal error occurred for the appointment: db down",
			},
		},
		{
			name:     "wrapped application error",
			err:      fmt.Errorf("handler: %w", apperrors.Constraint("slot taken")),
			resource: clinichttp.ResourceAppointment,
			want: clinichttp.HTTPError{
				Code:    http.StatusUnprocessableEntity,
				Message: "A constraint error occurred for the appointment: slot taken",
			},
		},
		{
			name:     "error outside the taxonomy",
			err:      errors.New("boom"),
			resource: clinichttp.ResourcePatient,
			want: clinichttp.HTTPError{
				Code:    http.StatusInternalServerError,
				Message: "An internal error occurred for the patient: boom",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clinichttp.FromApplication(tt.err, tt.resource))
		})
	}
}
