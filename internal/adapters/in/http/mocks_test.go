package http_test

import (
	"context"

	"clinic/internal/core/application/usecases/commands"
	"clinic/internal/core/application/usecases/queries"
	"clinic/internal/core/domain/model/appointment"
	"clinic/internal/core/domain/model/patient"

	"github.com/stretchr/testify/mock"
)

type MockBookAppointment struct{ mock.Mock }

func (m *MockBookAppointment) Handle(ctx context.Context, cmd commands.BookAppointmentCommand) (*appointment.Appointment, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appointment.Appointment), args.Error(1)
}

type MockCancelAppointment struct{ mock.Mock }

func (m *MockCancelAppointment) Handle(ctx context.Context, cmd commands.CancelAppointmentCommand) (*appointment.Appointment, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appointment.Appointment), args.Error(1)
}

type MockListPatientAppointments struct{ mock.Mock }

func (m *MockListPatientAppointments) Handle(
	ctx context.Context,
	query queries.ListPatientAppointmentsQuery,
) ([]*appointment.Appointment, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*appointment.Appointment), args.Error(1)
}

type MockRegisterPatient struct{ mock.Mock }

func (m *MockRegisterPatient) Handle(ctx context.Context, cmd commands.RegisterPatientCommand) (int32, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(int32), args.Error(1)
}

type MockFindPatient struct{ mock.Mock }

func (m *MockFindPatient) Handle(ctx context.Context, query queries.FindPatientByCPFQuery) (*patient.Patient, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*patient.Patient), args.Error(1)
}

type MockUpdatePatient struct{ mock.Mock }

func (m *MockUpdatePatient) Handle(ctx context.Context, cmd commands.UpdatePatientCommand) (*patient.Patient, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*patient.Patient), args.Error(1)
}

type MockDeletePatient struct{ mock.Mock }

func (m *MockDeletePatient) Handle(ctx context.Context, cmd commands.DeletePatientCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockLogin struct{ mock.Mock }

func (m *MockLogin) Handle(ctx context.Context, cmd commands.LoginCommand) (string, error) {
	args := m.Called(ctx, cmd)
	return args.String(0), args.Error(1)
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
