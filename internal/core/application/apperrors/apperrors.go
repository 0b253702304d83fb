// Package apperrors defines the error taxonomy returned by the clinic use cases
// and the functions that convert lower-layer failures into it.
//
// Every use case returns either nil or an *Error. Conversions are explicit:
//
//	repository failure      -> FromRepository -> Unexpected (Constraint for duplicates)
//	entity construction     -> FromEntity     -> Constraint
//	timestamp parse failure -> FromParse      -> Unexpected
//
// Callers branch on the kind with Is* helpers or errors.As:
//
//	var appErr *apperrors.Error
//	if errors.As(err, &appErr) && appErr.Kind == apperrors.KindConstraint {
//	    // business rule violated
//	}
package apperrors

import (
	"errors"

	"clinic/internal/pkg/errs"
)

// Kind classifies an application error for the transport layer.
type Kind int

const (
	// KindUnknown is never produced by this package.
	KindUnknown Kind = iota

	// KindConstraint is a business-rule violation: duplicate booking, duplicate CPF, invalid reference.
	KindConstraint

	// KindUnexpected is an infrastructure or parse failure.
	KindUnexpected

	// KindNotFound is a lookup miss on the resource the caller addressed.
	KindNotFound

	// KindPatientNotFound is a lookup miss on the patient an appointment operation refers to.
	KindPatientNotFound

	// KindLoginFailed is a rejected admin login.
	KindLoginFailed
)

func (k Kind) String() string {
	switch k {
	case KindConstraint:
		return "constraint"
	case KindUnexpected:
		return "unexpected"
	case KindNotFound:
		return "not_found"
	case KindPatientNotFound:
		return "patient_not_found"
	case KindLoginFailed:
		return "login_failed"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by use cases.
// Detail carries the caller-facing message (or the CPF for KindPatientNotFound);
// Cause keeps the underlying error for logging and errors.Is.
type Error struct {
	Kind   Kind
	Detail string
	Cause  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindUnexpected:
		return "An unexpected error occurred: " + e.Detail
	case KindPatientNotFound:
		return "A patient with the following CPF was not found: " + e.Detail
	default:
		return e.Detail
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Constraint returns a KindConstraint error with the given message.
func Constraint(detail string) *Error {
	return &Error{Kind: KindConstraint, Detail: detail}
}

// Unexpected returns a KindUnexpected error with the given message.
func Unexpected(detail string) *Error {
	return &Error{Kind: KindUnexpected, Detail: detail}
}

// NotFound returns a KindNotFound error with the given message.
func NotFound(detail string) *Error {
	return &Error{Kind: KindNotFound, Detail: detail}
}

// PatientNotFound returns a KindPatientNotFound error for the given CPF.
func PatientNotFound(cpf string) *Error {
	return &Error{Kind: KindPatientNotFound, Detail: cpf}
}

// LoginFailed returns a KindLoginFailed error with the given message.
func LoginFailed(detail string) *Error {
	return &Error{Kind: KindLoginFailed, Detail: detail}
}

// WithCause attaches the underlying error and returns e.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// FromRepository converts a storage failure. A uniqueness violation becomes a
// Constraint carrying conflictDetail; everything else becomes Unexpected.
// An *Error passes through unchanged.
func FromRepository(err error, conflictDetail string) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	if conflictDetail != "" && errors.Is(err, errs.ErrObjectAlreadyExists) {
		return Constraint(conflictDetail).WithCause(err)
	}
	return Unexpected(err.Error()).WithCause(err)
}

// FromEntity converts an entity construction failure into a Constraint with the
// entity's message.
func FromEntity(err error) *Error {
	if err == nil {
		return nil
	}
	return Constraint(err.Error()).WithCause(err)
}

// FromParse converts an input parse failure into Unexpected.
func FromParse(err error) *Error {
	if err == nil {
		return nil
	}
	return Unexpected(err.Error()).WithCause(err)
}

// Is* report whether err is an *Error of the given kind.
func IsConstraint(err error) bool      { return KindOf(err) == KindConstraint }
func IsUnexpected(err error) bool      { return KindOf(err) == KindUnexpected }
func IsNotFound(err error) bool        { return KindOf(err) == KindNotFound }
func IsPatientNotFound(err error) bool { return KindOf(err) == KindPatientNotFound }
func IsLoginFailed(err error) bool     { return KindOf(err) == KindLoginFailed }

// KindOf returns the kind of err, or KindUnknown when err is not an *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}
