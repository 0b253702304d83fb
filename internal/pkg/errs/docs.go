// Package errs defines the low-level errors raised by the domain model and the
// storage adapters. Each error has a sentinel (ErrObjectNotFound,
// ErrObjectAlreadyExists, ErrValueIsInvalid, ErrValueIsOutOfRange,
// ErrValueIsRequired) and a struct type carrying the offending parameter.
// The structs unwrap to their sentinel, so callers branch with errors.Is and
// read details with errors.As:
//
//	err := repo.DeleteByCPF(ctx, cpf)
//	if errors.Is(err, errs.ErrObjectAlreadyExists) {
//	    // the patient still has appointments
//	}
//
// The application layer converts these errors into apperrors values; they are
// never shown to HTTP clients as they are.
package errs
