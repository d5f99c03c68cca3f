package service

import (
	"context"
	"testing"
	"time"

	"github.com/lshigami/quizmaster/internal/dto"
	"github.com/lshigami/quizmaster/internal/mailer"
	"github.com/lshigami/quizmaster/internal/model"
	"github.com/lshigami/quizmaster/internal/repository"
	"github.com/lshigami/quizmaster/internal/scheduler"
	"github.com/lshigami/quizmaster/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestNotificationService(db *gorm.DB, m *fakeMailer) *notificationService {
	svc := NewNotificationService(repository.NewUserRepository(db), repository.NewReportRepository(db), m).(*notificationService)
	svc.dispatch = func(f func()) { f() }
	return svc
}

func TestDailyReminderSurvivesRecipientFailure(t *testing.T) {
	db := testutil.DB(t)
	testutil.SeedUser(t, db, "a@example.com", "Ann", model.RoleUser)
	testutil.SeedUser(t, db, "broken@example.com", "Broken", model.RoleUser)
	testutil.SeedUser(t, db, "c@example.com", "Cal", model.RoleUser)

	m := &fakeMailer{failFor: map[string]bool{"broken@example.com": true}}
	report, err := newTestNotificationService(db, m).SendDailyReminders(context.Background())
	require.NoError(t, err)

	assert.Equal(t, JobReport{Job: scheduler.JobDailyReminder, Recipients: 3, Sent: 2, Failed: 1}, report)
	sent := m.messages()
	require.Len(t, sent, 2)
	assert.Equal(t, "a@example.com", sent[0].To)
	assert.Contains(t, sent[0].Body, "Hello Ann")
	assert.Equal(t, "c@example.com", sent[1].To)
}

func TestMonthlyReportSumsScores(t *testing.T) {
	db := testutil.DB(t)
	ann := testutil.SeedUser(t, db, "a@example.com", "Ann", model.RoleUser)
	testutil.SeedUser(t, db, "idle@example.com", "Idle", model.RoleUser)
	_, _, quiz := testutil.SeedCatalog(t, db, "m")
	now := time.Now()
	testutil.SeedScore(t, db, quiz.ID, ann.ID, 3, 5, now)
	testutil.SeedScore(t, db, quiz.ID, ann.ID, 4, 5, now)

	m := &fakeMailer{}
	report, err := newTestNotificationService(db, m).SendMonthlyReports(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Sent)
	assert.Zero(t, report.Failed)

	sent := m.messages()
	require.Len(t, sent, 2)
	assert.Contains(t, sent[0].Body, "Your total score is 7 across 2 quiz attempt(s).")
	assert.Contains(t, sent[1].Body, "Your total score is 0 across 0 quiz attempt(s).")
}

func TestBatchStopsOnCancelledContext(t *testing.T) {
	db := testutil.DB(t)
	testutil.SeedUser(t, db, "a@example.com", "Ann", model.RoleUser)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := &fakeMailer{}
	_, err := newTestNotificationService(db, m).SendDailyReminders(ctx)
	assert.Error(t, err)
	assert.Empty(t, m.messages())
}

func TestNotifyScoreSendsResult(t *testing.T) {
	db := testutil.DB(t)
	ann := testutil.SeedUser(t, db, "a@example.com", "Ann", model.RoleUser)

	m := &fakeMailer{}
	newTestNotificationService(db, m).NotifyScore(ann.ID, "Algebra", dto.ScoreResult{
		ScoreID: 1, TotalScored: 2, TotalPossible: 4, Percentage: 50,
	})

	sent := m.messages()
	require.Len(t, sent, 1)
	assert.Equal(t, "a@example.com", sent[0].To)
	assert.Contains(t, sent[0].Body, "You scored 2 out of 4 (50.00%) on Algebra.")
}

type slowMailer struct {
	fakeMailer
	delay time.Duration
}

func (m *slowMailer) Send(ctx context.Context, msg mailer.Message) error {
	time.Sleep(m.delay)
	return m.fakeMailer.Send(ctx, msg)
}

func TestShutdownWaitsForScoreEmails(t *testing.T) {
	db := testutil.DB(t)
	ann := testutil.SeedUser(t, db, "a@example.com", "Ann", model.RoleUser)

	m := &slowMailer{delay: 100 * time.Millisecond}
	svc := NewNotificationService(repository.NewUserRepository(db), repository.NewReportRepository(db), m)

	svc.NotifyScore(ann.ID, "Algebra", dto.ScoreResult{ScoreID: 1, TotalScored: 1, TotalPossible: 1, Percentage: 100})
	require.NoError(t, svc.Shutdown(context.Background()))
	assert.Len(t, m.messages(), 1)

	svc.NotifyScore(ann.ID, "Algebra", dto.ScoreResult{ScoreID: 2, TotalScored: 1, TotalPossible: 1, Percentage: 100})
	require.NoError(t, svc.Shutdown(context.Background()))
	assert.Len(t, m.messages(), 1)
}

func TestShutdownHonoursDeadline(t *testing.T) {
	db := testutil.DB(t)
	ann := testutil.SeedUser(t, db, "a@example.com", "Ann", model.RoleUser)

	m := &slowMailer{delay: 300 * time.Millisecond}
	svc := NewNotificationService(repository.NewUserRepository(db), repository.NewReportRepository(db), m)
	svc.NotifyScore(ann.ID, "Algebra", dto.ScoreResult{ScoreID: 1})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, svc.Shutdown(ctx), context.DeadlineExceeded)

	// Let the email finish before the database is closed.
	require.NoError(t, svc.Shutdown(context.Background()))
}
