package jobs

import (
	"context"
	"sync"
	"time"

	"clinic/internal/core/application/usecases/queries"
	"clinic/internal/core/domain/model/appointment"
	"clinic/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultReminderSchedule runs the reminder job at the start of every minute.
const DefaultReminderSchedule = "* * * * *"

// UpcomingAppointmentsHandler reads the active appointments of a time window.
type UpcomingAppointmentsHandler interface {
	Handle(ctx context.Context, query queries.UpcomingAppointmentsQuery) ([]queries.UpcomingAppointmentsQueryResponse, error)
}

// ReminderConfig configures AppointmentReminderJob.
type ReminderConfig struct {
	// Schedule is a standard five-field cron expression or a descriptor such as "@every 5m".
	Schedule string
	// Window is how far ahead of now appointments are reminded.
	Window time.Duration
}

// AppointmentReminderJob periodically logs a reminder for every active appointment
// that enters the reminder window. Consecutive runs query adjacent windows, so
// an appointment is reminded once per process.
type AppointmentReminderJob struct {
	handler UpcomingAppointmentsHandler
	cfg     ReminderConfig
	cron    *cron.Cron
	metrics *metrics.Collector
	logger  *zap.Logger
	now     func() time.Time

	mu       sync.Mutex
	remindTo time.Time
}

// NewAppointmentReminderJob creates the reminder job.
func NewAppointmentReminderJob(
	handler UpcomingAppointmentsHandler,
	cfg ReminderConfig,
	collector *metrics.Collector,
	logger *zap.Logger,
) *AppointmentReminderJob {
	if cfg.Schedule == "" {
		cfg.Schedule = DefaultReminderSchedule
	}

	logger = logger.With(zap.String("component", "appointment_reminder_job"))
	cronLogger := cron.PrintfLogger(zap.NewStdLog(logger))

	return &AppointmentReminderJob{
		handler: handler,
		cfg:     cfg,
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		metrics: collector,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Start schedules the job. An invalid schedule is returned as an error.
func (j *AppointmentReminderJob) Start() error {
	_, err := j.cron.AddFunc(j.cfg.Schedule, func() {
		if _, err := j.Run(context.Background()); err != nil {
			j.logger.Error("Appointment reminder job failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Appointment reminder job started",
		zap.String("schedule", j.cfg.Schedule),
		zap.Duration("window", j.cfg.Window),
	)
	return nil
}

// Stop stops the scheduler and waits for a running reminder pass to finish or ctx to end.
func (j *AppointmentReminderJob) Stop(ctx context.Context) {
	select {
	case <-j.cron.Stop().Done():
	case <-ctx.Done():
	}
	j.logger.Info("Appointment reminder job stopped")
}

// Run performs one reminder pass and returns the number of reminders sent.
// A failed pass leaves the window untouched so the next run retries it.
func (j *AppointmentReminderJob) Run(ctx context.Context) (int, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.now()
	from := now
	if j.remindTo.After(from) {
		from = j.remindTo
	}
	to := now.Add(j.cfg.Window)
	if !to.After(from) {
		return 0, nil
	}

	query, err := queries.NewUpcomingAppointmentsQuery(from, to)
	if err != nil {
		return 0, err
	}

	upcoming, err := j.handler.Handle(ctx, query)
	if err != nil {
		return 0, err
	}

	for _, item := range upcoming {
		j.logger.Info("Appointment reminder",
			zap.Int32("appointment_id", item.AppointmentID),
			zap.String("patient_name", item.PatientName),
			zap.String("patient_cpf", item.PatientCPF),
			zap.String("appointment_at", appointment.FormatTimestamp(item.AppointmentAt)),
			zap.String("specialty", item.Specialty),
		)
		j.metrics.RemindersTotal.Inc()
	}

	j.remindTo = query.To()
	return len(upcoming), nil
}
