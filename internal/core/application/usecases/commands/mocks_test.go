package commands_test

import (
	"context"
	"time"

	"clinic/internal/core/application/usecases/commands"
	"clinic/internal/core/domain/model/admin"
	"clinic/internal/core/domain/model/appointment"
	"clinic/internal/core/domain/model/patient"
	"clinic/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockPatientRepository struct{ mock.Mock }

func (m *MockPatientRepository) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	args := m.Called(ctx, cpf)
	return args.Bool(0), args.Error(1)
}

func (m *MockPatientRepository) Save(ctx context.Context, p *patient.Patient) (int32, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, id int32) (*patient.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*patient.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindByCPF(ctx context.Context, cpf string) (*patient.Patient, error) {
	args := m.Called(ctx, cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*patient.Patient), args.Error(1)
}

func (m *MockPatientRepository) Update(ctx context.Context, p *patient.Patient) (*patient.Patient, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*patient.Patient), args.Error(1)
}

func (m *MockPatientRepository) DeleteByCPF(ctx context.Context, cpf string) error {
	args := m.Called(ctx, cpf)
	return args.Error(0)
}

type MockAppointmentRepository struct{ mock.Mock }

func (m *MockAppointmentRepository) ExistsActiveByPatientAndTime(
	ctx context.Context,
	patientID int32,
	at time.Time,
) (bool, error) {
	args := m.Called(ctx, patientID, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockAppointmentRepository) Save(ctx context.Context, a *appointment.Appointment) (*appointment.Appointment, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appointment.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindActiveByPatientAndTime(
	ctx context.Context,
	patientID int32,
	at time.Time,
) (*appointment.Appointment, error) {
	args := m.Called(ctx, patientID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appointment.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) Update(ctx context.Context, a *appointment.Appointment) (*appointment.Appointment, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appointment.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByPatientID(ctx context.Context, patientID int32) ([]*appointment.Appointment, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*appointment.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindActiveBetween(ctx context.Context, from, to time.Time) ([]*appointment.Appointment, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*appointment.Appointment), args.Error(1)
}

type MockAdminRepository struct{ mock.Mock }

func (m *MockAdminRepository) FindByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admin.Admin), args.Error(1)
}

func (m *MockAdminRepository) Save(ctx context.Context, a *admin.Admin) (int32, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(int32), args.Error(1)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Verify(password, hash string) (bool, error) {
	args := m.Called(password, hash)
	return args.Bool(0), args.Error(1)
}

type MockTokenService struct{ mock.Mock }

func (m *MockTokenService) Issue(email string) (string, error) {
	args := m.Called(email)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Subject(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

// MockUoW satisfies every narrowed unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) PatientRepository() ports.PatientRepository {
	args := m.Called()
	return args.Get(0).(ports.PatientRepository)
}

func (m *MockUoW) AppointmentRepository() ports.AppointmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AppointmentRepository)
}

func (m *MockUoW) AdminRepository() ports.AdminRepository {
	args := m.Called()
	return args.Get(0).(ports.AdminRepository)
}

type MockAppointmentUoWFactory struct{ mock.Mock }

func (m *MockAppointmentUoWFactory) Create() commands.AppointmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AppointmentUoW)
}

type MockPatientUoWFactory struct{ mock.Mock }

func (m *MockPatientUoWFactory) Create() commands.PatientUoW {
	args := m.Called()
	return args.Get(0).(commands.PatientUoW)
}

type MockAdminUoWFactory struct{ mock.Mock }

func (m *MockAdminUoWFactory) Create() commands.AdminUoW {
	args := m.Called()
	return args.Get(0).(commands.AdminUoW)
}

func sameInstant(want time.Time) any {
	return mock.MatchedBy(func(got time.Time) bool { return got.Equal(want) })
}
