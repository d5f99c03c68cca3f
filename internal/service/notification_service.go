package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/lshigami/quizmaster/internal/dto"
	"github.com/lshigami/quizmaster/internal/mailer"
	"github.com/lshigami/quizmaster/internal/repository"
	"github.com/lshigami/quizmaster/internal/scheduler"
	"github.com/rs/zerolog/log"
)

// JobReport summarises one batch of notification emails.
type JobReport struct {
	Job        string `json:"job"`
	Recipients int    `json:"recipients"`
	Sent       int    `json:"sent"`
	Failed     int    `json:"failed"`
}

type NotificationService interface {
	SendDailyReminders(ctx context.Context) (JobReport, error)
	SendMonthlyReports(ctx context.Context) (JobReport, error)
	// NotifyScore emails the attempt result in the background.
	NotifyScore(userID uint, quizName string, result dto.ScoreResult)
	// Shutdown stops accepting score emails and waits for those in flight.
	Shutdown(ctx context.Context) error
}

type notificationService struct {
	userRepo   repository.UserRepository
	reportRepo repository.ReportRepository
	mailer     mailer.Mailer
	dispatch   func(func())

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func NewNotificationService(userRepo repository.UserRepository, reportRepo repository.ReportRepository, m mailer.Mailer) NotificationService {
	return &notificationService{
		userRepo:   userRepo,
		reportRepo: reportRepo,
		mailer:     m,
		dispatch:   func(f func()) { go f() },
	}
}

func (s *notificationService) SendDailyReminders(ctx context.Context) (JobReport, error) {
	report := JobReport{Job: scheduler.JobDailyReminder}
	users, err := s.userRepo.FindAllWithEmail(ctx)
	if err != nil {
		return report, fmt.Errorf("loading reminder recipients: %w", err)
	}
	report.Recipients = len(users)

	for _, u := range users {
		if err := ctx.Err(); err != nil {
			return s.finish(report), err
		}
		msg := mailer.Message{
			To:      u.Email,
			Subject: "Your Daily Quiz Reminder!",
			Body:    fmt.Sprintf("Hello %s,\nDon't forget to attempt today's quiz!", u.FullName),
		}
		s.send(ctx, &report, u.ID, msg)
	}
	return s.finish(report), nil
}

func (s *notificationService) SendMonthlyReports(ctx context.Context) (JobReport, error) {
	report := JobReport{Job: scheduler.JobMonthlyReport}
	totals, err := s.reportRepo.UserScoreTotals(ctx)
	if err != nil {
		return report, fmt.Errorf("aggregating score totals: %w", err)
	}
	report.Recipients = len(totals)

	for _, t := range totals {
		if err := ctx.Err(); err != nil {
			return s.finish(report), err
		}
		msg := mailer.Message{
			To:      t.Email,
			Subject: "Your Monthly Report",
			Body: fmt.Sprintf("Hello %s,\nYour total score is %d across %d quiz attempt(s).",
				t.FullName, t.Total, t.Attempts),
		}
		s.send(ctx, &report, t.UserID, msg)
	}
	return s.finish(report), nil
}

func (s *notificationService) NotifyScore(userID uint, quizName string, result dto.ScoreResult) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		log.Warn().Uint("userID", userID).Uint("scoreID", result.ScoreID).Msg("Score email dropped: notifications shut down")
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()

	s.dispatch(func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), scoreMailTimeout)
		defer cancel()

		user, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			log.Error().Err(err).Uint("userID", userID).Msg("Score email skipped: user not loaded")
			return
		}
		if user.Email == "" {
			return
		}
		msg := mailer.Message{
			To:      user.Email,
			Subject: "Your Quiz Score",
			Body: fmt.Sprintf("Hello %s,\nYou scored %d out of %d (%.2f%%) on %s.",
				user.FullName, result.TotalScored, result.TotalPossible, result.Percentage, quizName),
		}
		if err := s.mailer.Send(ctx, msg); err != nil {
			log.Error().Err(err).Uint("userID", userID).Uint("scoreID", result.ScoreID).Msg("Failed to send score email")
		}
	})
}

func (s *notificationService) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// send never fails the batch; failures are logged and counted.
func (s *notificationService) send(ctx context.Context, report *JobReport, userID uint, msg mailer.Message) {
	if err := s.mailer.Send(ctx, msg); err != nil {
		report.Failed++
		log.Error().Err(err).Str("job", report.Job).Uint("userID", userID).Msg("Failed to send notification")
		return
	}
	report.Sent++
}

func (s *notificationService) finish(report JobReport) JobReport {
	log.Info().
		Str("job", report.Job).
		Int("recipients", report.Recipients).
		Int("sent", report.Sent).
		Int("failed", report.Failed).
		Msg("Notification batch finished")
	return report
}
