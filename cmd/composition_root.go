package cmd

import (
	"fmt"

	clinichttp "clinic/internal/adapters/in/http"
	"clinic/internal/adapters/out/postgres"
	"clinic/internal/adapters/out/postgres/adminrepo"
	"clinic/internal/adapters/out/postgres/appointmentrepo"
	"clinic/internal/adapters/out/postgres/patientrepo"
	"clinic/internal/adapters/out/security"
	"clinic/internal/core/application/usecases/commands"
	"clinic/internal/core/application/usecases/queries"
	"clinic/internal/jobs"
	"clinic/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	hasher     *security.BcryptHasher
	tokens     *security.JWTService
	metrics    *metrics.Collector
	logger     *zap.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *zap.Logger) (CompositionRoot, error) {
	tokens, err := security.NewJWTService(cfg.Token())
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("creating token service: %w", err)
	}

	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		hasher:     security.NewBcryptHasher(bcrypt.DefaultCost),
		tokens:     tokens,
		metrics:    metrics.NewCollector("clinic"),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateBookAppointmentCommandHandler() commands.BookAppointmentCommandHandler {
	return commands.NewBookAppointmentCommandHandler(c.appointmentUoWFactory())
}

func (c *CompositionRoot) CreateCancelAppointmentCommandHandler() commands.CancelAppointmentCommandHandler {
	return commands.NewCancelAppointmentCommandHandler(c.appointmentUoWFactory())
}

func (c *CompositionRoot) CreateRegisterPatientCommandHandler() commands.RegisterPatientCommandHandler {
	return commands.NewRegisterPatientCommandHandler(c.patientUoWFactory())
}

func (c *CompositionRoot) CreateUpdatePatientCommandHandler() commands.UpdatePatientCommandHandler {
	return commands.NewUpdatePatientCommandHandler(c.patientUoWFactory())
}

func (c *CompositionRoot) CreateDeletePatientCommandHandler() commands.DeletePatientCommandHandler {
	return commands.NewDeletePatientCommandHandler(c.patientUoWFactory())
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(adminrepo.NewGormAdminRepository(c.gormDB, c.logger), c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateCreateAdminCommandHandler() commands.CreateAdminCommandHandler {
	var f commands.AdminUoWFactory = FuncAdminUoWFactory(func() commands.AdminUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAdminCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateListPatientAppointmentsQueryHandler() queries.ListPatientAppointmentsQueryHandler {
	return queries.NewListPatientAppointmentsQueryHandler(
		patientrepo.NewGormPatientRepository(c.gormDB, c.logger),
		appointmentrepo.NewGormAppointmentRepository(c.gormDB, c.logger),
	)
}

func (c *CompositionRoot) CreateFindPatientByCPFQueryHandler() queries.FindPatientByCPFQueryHandler {
	return queries.NewFindPatientByCPFQueryHandler(patientrepo.NewGormPatientRepository(c.gormDB, c.logger))
}

func (c *CompositionRoot) CreateUpcomingAppointmentsQueryHandler() queries.UpcomingAppointmentsQueryHandler {
	return queries.NewUpcomingAppointmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	reminder := jobs.NewAppointmentReminderJob(
		c.CreateUpcomingAppointmentsQueryHandler(),
		c.cfg.Reminder(),
		c.metrics,
		c.logger,
	)
	return jobs.NewJobManager(reminder)
}

func (c *CompositionRoot) CreateHTTPServer() *echo.Echo {
	server := clinichttp.NewServer(clinichttp.Handlers{
		BookAppointment:         c.CreateBookAppointmentCommandHandler(),
		CancelAppointment:       c.CreateCancelAppointmentCommandHandler(),
		ListPatientAppointments: c.CreateListPatientAppointmentsQueryHandler(),
		RegisterPatient:         c.CreateRegisterPatientCommandHandler(),
		FindPatient:             c.CreateFindPatientByCPFQueryHandler(),
		UpdatePatient:           c.CreateUpdatePatientCommandHandler(),
		DeletePatient:           c.CreateDeletePatientCommandHandler(),
		Login:                   c.CreateLoginCommandHandler(),
	}, c.metrics, c.logger)
	return clinichttp.NewRouter(server, c.tokens)
}

func (c *CompositionRoot) appointmentUoWFactory() commands.AppointmentUoWFactory {
	return FuncAppointmentUoWFactory(func() commands.AppointmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) patientUoWFactory() commands.PatientUoWFactory {
	return FuncPatientUoWFactory(func() commands.PatientUoW {
		return c.uowFactory.Create()
	})
}

type FuncAppointmentUoWFactory func() commands.AppointmentUoW

func (f FuncAppointmentUoWFactory) Create() commands.AppointmentUoW {
	return f()
}

type FuncPatientUoWFactory func() commands.PatientUoW

func (f FuncPatientUoWFactory) Create() commands.PatientUoW {
	return f()
}

type FuncAdminUoWFactory func() commands.AdminUoW

func (f FuncAdminUoWFactory) Create() commands.AdminUoW {
	return f()
}
