// Package appointment contains the Appointment entity and its cancellation lifecycle.
//
// An appointment books a patient (referenced by ID, never by pointer) for a
// specialty at a naive timestamp. It starts Active and may be canceled exactly once:
//
//	Active ──> Canceled
//
// Once canceled, the cancellation time and reason are never cleared.
// The rule that a patient has at most one active appointment per timestamp is
// enforced by the booking use case and by a unique index in storage.
package appointment
