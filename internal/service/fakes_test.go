package service

import (
	"context"
	"errors"
	"sync"

	"github.com/lshigami/quizmaster/internal/dto"
	"github.com/lshigami/quizmaster/internal/mailer"
)

type scoreNotice struct {
	userID   uint
	quizName string
	result   dto.ScoreResult
}

type fakeNotifier struct {
	mu      sync.Mutex
	notices []scoreNotice
}

func (f *fakeNotifier) SendDailyReminders(context.Context) (JobReport, error) {
	return JobReport{}, nil
}

func (f *fakeNotifier) SendMonthlyReports(context.Context) (JobReport, error) {
	return JobReport{}, nil
}

func (f *fakeNotifier) NotifyScore(userID uint, quizName string, result dto.ScoreResult) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices = append(f.notices, scoreNotice{userID: userID, quizName: quizName, result: result})
}

func (f *fakeNotifier) Shutdown(context.Context) error { return nil }

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.notices)
}

// fakeMailer records messages and fails for addresses listed in failFor.
type fakeMailer struct {
	mu      sync.Mutex
	sent    []mailer.Message
	failFor map[string]bool
}

func (f *fakeMailer) Send(_ context.Context, msg mailer.Message) error {
	if f.failFor[msg.To] {
		return errors.New("smtp: mailbox unavailable")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeMailer) messages() []mailer.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]mailer.Message(nil), f.sent...)
}

type fakeGenerator struct {
	out    string
	err    error
	prompt string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.out, f.err
}
