package appointment

import (
	"fmt"

	"clinic/internal/pkg/errs"
)

// Status represents the lifecycle state of an appointment.
//
// State transitions:
//
//	Active ──> Canceled
//
// Canceled is terminal.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Active is the state of every freshly booked appointment.
	Active

	// Canceled appointments keep their row and their cancellation details.
	Canceled
)

func (s Status) String() string {
	switch s {
	case Active:
		return "Active"
	case Canceled:
		return "Canceled"
	default:
		return "Unknown"
	}
}

// Validate checks that s is Active or Canceled.
func (s Status) Validate() error {
	if s != Active && s != Canceled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// Cancel transitions the status to Canceled.
//
// Valid transitions:
//   - Active -> Canceled
//
// Returns (0, error) for any other starting state.
func (s Status) Cancel() (Status, error) {
	if s != Active {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return Canceled, nil
}
