// Package jobs provides scheduled background tasks for the clinic service.
//
// Jobs run on github.com/robfig/cron/v3 in UTC. Cron's own messages and
// recovered panics are logged through zap.
//
// # Available Jobs
//
// AppointmentReminderJob runs on REMINDER_SCHEDULE (every minute by default) and
// logs one reminder per active appointment in [now, now+REMINDER_WINDOW).
// Each run starts where the previous window ended, so an appointment is reminded
// once while the process lives. Reminders are counted in clinic_reminders_total.
//
// # Usage
//
//	reminder := jobs.NewAppointmentReminderJob(upcomingHandler, jobs.ReminderConfig{
//		Schedule: "*/5 * * * *",
//		Window:   time.Hour,
//	}, collector, logger)
//	manager := jobs.NewJobManager(reminder)
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll(shutdownCtx)
package jobs
