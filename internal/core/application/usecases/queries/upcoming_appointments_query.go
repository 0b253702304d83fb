package queries

import (
	"errors"
	"time"

	"clinic/internal/core/domain/model/appointment"
	"clinic/internal/pkg/errs"
	"clinic/internal/pkg/guard"
)

var ErrUpcomingAppointmentsQueryIsNotConstructed = errors.New(
	"UpcomingAppointmentsQuery must be created via NewUpcomingAppointmentsQuery constructor",
)

// UpcomingAppointmentsQuery selects the active appointments with from <= appointment_at < to.
// Both bounds are naive timestamps.
//
// Example:
//
//	now := time.Now().UTC()
//	query, err := NewUpcomingAppointmentsQuery(now, now.Add(time.Hour))
type UpcomingAppointmentsQuery struct {
	from  time.Time
	to    time.Time
	guard guard.ConstructorGuard
}

// NewUpcomingAppointmentsQuery creates the query. The window must not be empty.
func NewUpcomingAppointmentsQuery(from, to time.Time) (UpcomingAppointmentsQuery, error) {
	from, to = appointment.Naive(from), appointment.Naive(to)
	if !to.After(from) {
		return UpcomingAppointmentsQuery{}, errs.NewValueIsOutOfRangeError(
			"window end", appointment.FormatTimestamp(to), appointment.FormatTimestamp(from), "unbounded")
	}
	return UpcomingAppointmentsQuery{from: from, to: to, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q UpcomingAppointmentsQuery) Validate() error {
	return q.guard.Validate(ErrUpcomingAppointmentsQueryIsNotConstructed)
}

func (q UpcomingAppointmentsQuery) From() time.Time { return q.from }
func (q UpcomingAppointmentsQuery) To() time.Time   { return q.to }

// UpcomingAppointmentsQueryResponse is the read model of one upcoming appointment,
// joined with the patient it belongs to.
type UpcomingAppointmentsQueryResponse struct {
	AppointmentID int32
	PatientName   string
	PatientCPF    string
	AppointmentAt time.Time
	Specialty     string
	Notes         *string
}
