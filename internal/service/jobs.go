package service

import (
	"context"

	"github.com/lshigami/quizmaster/config"
	"github.com/lshigami/quizmaster/internal/scheduler"
)

// RegisterJobs binds the notification batches to their cron specs.
func RegisterJobs(s *scheduler.Scheduler, cfg *config.Config, notifications NotificationService) error {
	if err := s.Register(scheduler.JobDailyReminder, cfg.Scheduler.DailyReminderCron, func(ctx context.Context) error {
		_, err := notifications.SendDailyReminders(ctx)
		return err
	}); err != nil {
		return err
	}
	return s.Register(scheduler.JobMonthlyReport, cfg.Scheduler.MonthlyReportCron, func(ctx context.Context) error {
		_, err := notifications.SendMonthlyReports(ctx)
		return err
	})
}
