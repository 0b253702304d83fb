// Package postgres provides the GORM connection, schema migration and the
// Unit of Work that hands transactional repositories to the use cases.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, logger)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	id, err := uow.PatientRepository().Save(ctx, p)
//	if err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork owns at most one transaction and must not be shared between goroutines.
package postgres

import (
	"context"

	"clinic/internal/adapters/out/postgres/adminrepo"
	"clinic/internal/adapters/out/postgres/appointmentrepo"
	"clinic/internal/adapters/out/postgres/patientrepo"
	"clinic/internal/core/ports"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances on a shared connection pool.
type GormUnitOfWorkFactory struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB, logger *zap.Logger) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, logger: logger}
}

// Create produces a fresh UnitOfWork with no open transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db, logger: f.logger}
}

// GormUnitOfWork coordinates a database transaction across the clinic repositories.
type GormUnitOfWork struct {
	db     *gorm.DB
	tx     *gorm.DB
	logger *zap.Logger
}

// Begin starts a transaction. Calling Begin twice keeps the first transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		uow.logger.Error("beginning transaction", zap.Error(tx.Error))
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes the transaction. Returns gorm.ErrInvalidTransaction without one.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.logger.Error("committing transaction", zap.Error(err))
	}
	return err
}

// Rollback discards the transaction. Returns gorm.ErrInvalidTransaction without one,
// which makes a deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// PatientRepository returns a patient repository bound to the current transaction,
// or to the pool when no transaction is open.
func (uow *GormUnitOfWork) PatientRepository() ports.PatientRepository {
	return patientrepo.NewGormPatientRepository(uow.conn(), uow.logger)
}

// AppointmentRepository returns an appointment repository bound like PatientRepository.
func (uow *GormUnitOfWork) AppointmentRepository() ports.AppointmentRepository {
	return appointmentrepo.NewGormAppointmentRepository(uow.conn(), uow.logger)
}

// AdminRepository returns an admin repository bound like PatientRepository.
func (uow *GormUnitOfWork) AdminRepository() ports.AdminRepository {
	return adminrepo.NewGormAdminRepository(uow.conn(), uow.logger)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
