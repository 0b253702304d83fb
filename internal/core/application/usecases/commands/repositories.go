// Package commands contains the use cases that change clinic state: booking and
// canceling appointments, registering, updating and deleting patients, and
// authenticating or creating admins.
// Every command follows the same pattern: a constructor-guarded command value,
// a handler that runs it inside a unit of work, and an *apperrors.Error on failure.
package commands

import (
	"context"

	"clinic/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PatientRepoFactory provides access to the patient repository within a transaction.
	PatientRepoFactory interface {
		PatientRepository() ports.PatientRepository
	}

	// AppointmentRepoFactory provides access to the appointment repository within a transaction.
	AppointmentRepoFactory interface {
		AppointmentRepository() ports.AppointmentRepository
	}

	// AdminRepoFactory provides access to the admin repository within a transaction.
	AdminRepoFactory interface {
		AdminRepository() ports.AdminRepository
	}

	// PatientUoW manages transactions for patient-only operations.
	PatientUoW interface {
		TxManager
		PatientRepoFactory
	}

	// PatientUoWFactory creates new patient unit of work instances.
	PatientUoWFactory interface {
		Create() PatientUoW
	}

	// AppointmentUoW manages transactions that read patients and write appointments.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   p, err := uow.PatientRepository().FindByCPF(ctx, cpf)
	//   saved, err := uow.AppointmentRepository().Save(ctx, a)
	//
	//   err = uow.Commit(ctx)
	AppointmentUoW interface {
		TxManager
		PatientRepoFactory
		AppointmentRepoFactory
	}

	// AppointmentUoWFactory creates new appointment unit of work instances.
	AppointmentUoWFactory interface {
		Create() AppointmentUoW
	}

	// AdminUoW manages transactions for admin-only operations.
	AdminUoW interface {
		TxManager
		AdminRepoFactory
	}

	// AdminUoWFactory creates new admin unit of work instances.
	AdminUoWFactory interface {
		Create() AdminUoW
	}
)
