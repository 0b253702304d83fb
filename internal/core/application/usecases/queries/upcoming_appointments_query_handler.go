package queries

import (
	"context"
	"time"

	"clinic/internal/core/domain/model/appointment"

	"gorm.io/gorm"
)

// UpcomingAppointmentsQueryHandler reads upcoming appointments straight from the database.
type UpcomingAppointmentsQueryHandler struct {
	db *gorm.DB
}

// NewUpcomingAppointmentsQueryHandler creates the handler.
func NewUpcomingAppointmentsQueryHandler(db *gorm.DB) UpcomingAppointmentsQueryHandler {
	return UpcomingAppointmentsQueryHandler{db: db}
}

// Handle returns the active appointments in the window ordered by time, then by id.
func (h UpcomingAppointmentsQueryHandler) Handle(
	ctx context.Context,
	query UpcomingAppointmentsQuery,
) ([]UpcomingAppointmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	upcoming := make([]UpcomingAppointmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			p.name,
			p.cpf,
			a.appointment_at,
			a.specialty,
			a.notes
		FROM appointments a
		JOIN patients p ON p.id = a.patient_id
		WHERE a.canceled = false
			AND a.appointment_at >= ?
			AND a.appointment_at < ?
		ORDER BY a.appointment_at, a.id
	`, query.From(), query.To()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item UpcomingAppointmentsQueryResponse
		var at time.Time

		err = rows.Scan(
			&item.AppointmentID,
			&item.PatientName,
			&item.PatientCPF,
			&at,
			&item.Specialty,
			&item.Notes,
		)
		if err != nil {
			return nil, err
		}

		item.AppointmentAt = appointment.Naive(at)
		upcoming = append(upcoming, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return upcoming, nil
}
