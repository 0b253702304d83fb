package queries_test

import (
	"context"
	"time"

	"clinic/internal/core/domain/model/appointment"
	"clinic/internal/core/domain/model/patient"

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
	return m.Called(ctx, cpf).Error(0)
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
