package http

import (
	"clinic/internal/core/domain/model/appointment"
	"clinic/internal/core/domain/model/patient"
)

// BookAppointmentRequest is the body of POST /api/v1/appointments.
type BookAppointmentRequest struct {
	PatientCPF    string  `json:"patient_cpf" validate:"required"`
	AppointmentAt string  `json:"appointment_at" validate:"required"`
	Specialty     string  `json:"specialty" validate:"required"`
	Notes         *string `json:"notes"`
}

// CancelAppointmentRequest is the body of PATCH /api/v1/appointments/cancellation.
type CancelAppointmentRequest struct {
	PatientCPF         string  `json:"patient_cpf" validate:"required"`
	AppointmentAt      string  `json:"appointment_at" validate:"required"`
	CancellationReason *string `json:"cancellation_reason"`
}

// AppointmentResponse renders an appointment with its timestamps as YYYY-MM-DD HH:MM:SS.
type AppointmentResponse struct {
	ID                 int32   `json:"id"`
	PatientID          int32   `json:"patient_id"`
	AppointmentAt      string  `json:"appointment_at"`
	Specialty          string  `json:"specialty"`
	Notes              *string `json:"notes"`
	Canceled           bool    `json:"canceled"`
	CanceledAt         *string `json:"canceled_at"`
	CancellationReason *string `json:"cancellation_reason"`
}

// RegisterPatientRequest is the body of POST /api/v1/patients.
type RegisterPatientRequest struct {
	Name string `json:"name" validate:"required"`
	CPF  string `json:"cpf" validate:"required,len=11,numeric"`
}

// UpdatePatientRequest is the body of PUT /api/v1/patients/:cpf. A missing name keeps the stored one.
type UpdatePatientRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1"`
}

// PatientResponse renders a patient.
type PatientResponse struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
	CPF  string `json:"cpf"`
}

// IDResponse carries the identifier of a created resource.
type IDResponse struct {
	ID int32 `json:"id"`
}

// LoginRequest is the body of POST /api/v1/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries a bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// toAppointmentResponse converts an appointment; ok is false for an appointment
// that was never persisted.
func toAppointmentResponse(a *appointment.Appointment) (AppointmentResponse, bool) {
	id, ok := a.ID().Value()
	if !ok {
		return AppointmentResponse{}, false
	}

	resp := AppointmentResponse{
		ID:                 id,
		PatientID:          a.PatientID(),
		AppointmentAt:      appointment.FormatTimestamp(a.AppointmentAt()),
		Specialty:          a.Specialty(),
		Notes:              a.Notes(),
		Canceled:           a.IsCanceled(),
		CancellationReason: a.CancellationReason(),
	}
	if at := a.CanceledAt(); at != nil {
		formatted := appointment.FormatTimestamp(*at)
		resp.CanceledAt = &formatted
	}
	return resp, true
}

func toAppointmentResponses(list []*appointment.Appointment) []AppointmentResponse {
	resp := make([]AppointmentResponse, 0, len(list))
	for _, a := range list {
		if item, ok := toAppointmentResponse(a); ok {
			resp = append(resp, item)
		}
	}
	return resp
}

func toPatientResponse(p *patient.Patient) (PatientResponse, bool) {
	id, ok := p.ID().Value()
	if !ok {
		return PatientResponse{}, false
	}
	return PatientResponse{ID: id, Name: p.Name(), CPF: p.CPF()}, true
}
