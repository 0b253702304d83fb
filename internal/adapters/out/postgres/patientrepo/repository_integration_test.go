package patientrepo_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "clinic/internal/adapters/out/postgres"
	"clinic/internal/adapters/out/postgres/patientrepo"
	"clinic/internal/core/domain/model/patient"
	"clinic/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type PatientRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *patientrepo.GormPatientRepository
}

func (suite *PatientRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), postgres_adapter.GormConfig())
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(ctx, db, zap.NewNop()))
}

func (suite *PatientRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE appointments, patients RESTART IDENTITY CASCADE").Error)
	suite.repository = patientrepo.NewGormPatientRepository(suite.db, zap.NewNop())
}

func (suite *PatientRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PatientRepositoryIntegrationTestSuite) TestSave_AssignsIdentifier() {
	ctx := context.Background()

	id, err := suite.repository.Save(ctx, patient.NewPatient("Maria Silva", "00011122233"))

	suite.Require().NoError(err)
	suite.Positive(id)

	stored, err := suite.repository.FindByID(ctx, id)
	suite.Require().NoError(err)
	suite.Equal("Maria Silva", stored.Name())
	suite.Equal("00011122233", stored.CPF())
	value, ok := stored.ID().Value()
	suite.True(ok)
	suite.Equal(id, value)
}

func (suite *PatientRepositoryIntegrationTestSuite) TestSave_DuplicateCPF_ReturnsAlreadyExists() {
	ctx := context.Background()
	_, err := suite.repository.Save(ctx, patient.NewPatient("Maria Silva", "00011122233"))
	suite.Require().NoError(err)

	_, err = suite.repository.Save(ctx, patient.NewPatient("Maria Souza", "00011122233"))

	suite.ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *PatientRepositoryIntegrationTestSuite) TestSave_UnconstructedPatient_Fails() {
	_, err := suite.repository.Save(context.Background(), &patient.Patient{})

	suite.ErrorIs(err, patient.ErrPatientIsNotConstructed)
}

func (suite *PatientRepositoryIntegrationTestSuite) TestExistsByCPF() {
	ctx := context.Background()

	exists, err := suite.repository.ExistsByCPF(ctx, "00011122233")
	suite.Require().NoError(err)
	suite.False(exists)

	_, err = suite.repository.Save(ctx, patient.NewPatient("Maria Silva", "00011122233"))
	suite.Require().NoError(err)

	exists, err = suite.repository.ExistsByCPF(ctx, "00011122233")
	suite.Require().NoError(err)
	suite.True(exists)
}

func (suite *PatientRepositoryIntegrationTestSuite) TestFind_Missing_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.FindByCPF(ctx, "99999999999")
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.FindByID(ctx, 12345)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PatientRepositoryIntegrationTestSuite) TestUpdate_RenamesPatient() {
	ctx := context.Background()
	_, err := suite.repository.Save(ctx, patient.NewPatient("Maria Silva", "00011122233"))
	suite.Require().NoError(err)

	stored, err := suite.repository.FindByCPF(ctx, "00011122233")
	suite.Require().NoError(err)
	stored.Rename("Maria Souza")

	updated, err := suite.repository.Update(ctx, stored)
	suite.Require().NoError(err)
	suite.Equal("Maria Souza", updated.Name())

	reloaded, err := suite.repository.FindByCPF(ctx, "00011122233")
	suite.Require().NoError(err)
	suite.Equal("Maria Souza", reloaded.Name())
}

func (suite *PatientRepositoryIntegrationTestSuite) TestUpdate_NotPersisted_ReturnsNotFound() {
	_, err := suite.repository.Update(context.Background(), patient.NewPatient("Maria Silva", "00011122233"))

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PatientRepositoryIntegrationTestSuite) TestUpdate_DeletedRow_ReturnsNotFound() {
	ghost, err := patient.RestorePatient(777, "Ghost", "00011122233")
	suite.Require().NoError(err)

	_, err = suite.repository.Update(context.Background(), ghost)

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PatientRepositoryIntegrationTestSuite) TestDeleteByCPF() {
	ctx := context.Background()
	_, err := suite.repository.Save(ctx, patient.NewPatient("Maria Silva", "00011122233"))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.DeleteByCPF(ctx, "00011122233"))

	exists, err := suite.repository.ExistsByCPF(ctx, "00011122233")
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *PatientRepositoryIntegrationTestSuite) TestDeleteByCPF_Missing_Succeeds() {
	suite.NoError(suite.repository.DeleteByCPF(context.Background(), "99999999999"))
}

func (suite *PatientRepositoryIntegrationTestSuite) TestFindByCPF_CanceledContext_Fails() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := suite.repository.FindByCPF(ctx, "00011122233")

	suite.Error(err)
	suite.NotErrorIs(err, errs.ErrObjectNotFound)
}

func TestPatientRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PatientRepositoryIntegrationTestSuite))
}
