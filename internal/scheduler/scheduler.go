// Package scheduler fires the periodic notification jobs. Each scheduled
// slot runs at most once across processes: the first runner to claim the
// slot key in the SlotLocker wins and every other firing is skipped.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lshigami/quizmaster/config"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const (
	JobDailyReminder = "daily-reminder"
	JobMonthlyReport = "monthly-report"

	slotLockTTL = 2 * time.Hour
)

// ErrStopped is returned by Trigger once Stop has been called.
var ErrStopped = errors.New("scheduler is stopped")

type JobFunc func(ctx context.Context) error

// Scheduler wraps a cron runner with slot locking and manual triggers.
type Scheduler struct {
	cron    *cron.Cron
	locker  SlotLocker
	loc     *time.Location
	timeout time.Duration
	now     func() time.Time

	mu      sync.Mutex
	jobs    map[string]JobFunc
	entries map[string]cron.EntryID
	stopped bool
	wg      sync.WaitGroup
}

func New(cfg *config.Config, locker SlotLocker) (*Scheduler, error) {
	loc := time.UTC
	if cfg.Scheduler.Timezone != "" {
		l, err := time.LoadLocation(cfg.Scheduler.Timezone)
		if err != nil {
			return nil, fmt.Errorf("loading scheduler timezone %q: %w", cfg.Scheduler.Timezone, err)
		}
		loc = l
	}
	timeout := cfg.Scheduler.JobTimeout
	if timeout <= 0 {
		timeout = 30 * time.Minute
	}
	return &Scheduler{
		cron:    cron.New(cron.WithLocation(loc)),
		locker:  locker,
		loc:     loc,
		timeout: timeout,
		now:     time.Now,
		jobs:    make(map[string]JobFunc),
		entries: make(map[string]cron.EntryID),
	}, nil
}

// Register adds a named job on a standard five-field cron spec.
func (s *Scheduler) Register(name, spec string, job JobFunc) error {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return fmt.Errorf("scheduling %s with %q: %w", name, spec, err)
	}
	if err := s.schedule(name, schedule, job); err != nil {
		return err
	}
	log.Info().Str("job", name).Str("spec", spec).Str("tz", s.loc.String()).Msg("Job scheduled")
	return nil
}

func (s *Scheduler) schedule(name string, schedule cron.Schedule, job JobFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.jobs[name]; dup {
		return fmt.Errorf("job %q already registered", name)
	}
	s.jobs[name] = job
	s.entries[name] = s.cron.Schedule(schedule, cron.FuncJob(func() {
		s.runScheduled(name, s.firedAt(name), job)
	}))
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop rejects further triggers, halts new firings and waits for running
// jobs or ctx, whichever ends first. It may be called more than once.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()

	cronDone := s.cron.Stop()
	manualDone := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(manualDone)
	}()
	for _, done := range []<-chan struct{}{cronDone.Done(), manualDone} {
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// SlotKey identifies one scheduled firing of a job.
func (s *Scheduler) SlotKey(name string, at time.Time) string {
	return fmt.Sprintf("job:%s:%s", name, at.In(s.loc).Truncate(time.Minute).Format("200601021504"))
}

// firedAt returns the time cron scheduled the current run for, so a run that
// starts late still claims the slot it was fired for.
func (s *Scheduler) firedAt(name string) time.Time {
	s.mu.Lock()
	id, ok := s.entries[name]
	s.mu.Unlock()
	if ok {
		if prev := s.cron.Entry(id).Prev; !prev.IsZero() {
			return prev
		}
	}
	return s.now()
}

func (s *Scheduler) runScheduled(name string, at time.Time, job JobFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	key := s.SlotKey(name, at)
	acquired, err := s.locker.Acquire(ctx, key, slotLockTTL)
	if err != nil {
		log.Error().Err(err).Str("job", name).Str("slot", key).Msg("Could not claim job slot, skipping run")
		return
	}
	if !acquired {
		log.Info().Str("job", name).Str("slot", key).Msg("Job slot already claimed, skipping run")
		return
	}
	s.execute(ctx, name, job)
}

// Trigger runs a registered job in the background outside the schedule.
func (s *Scheduler) Trigger(name string) error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return ErrStopped
	}
	job, ok := s.jobs[name]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("unknown job %q", name)
	}
	// Added under mu so Stop, which sets stopped first, never waits before this Add.
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		s.execute(ctx, name, job)
	}()
	return nil
}

func (s *Scheduler) execute(ctx context.Context, name string, job JobFunc) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("job", name).Msg("Job panicked")
		}
	}()

	started := s.now()
	log.Info().Str("job", name).Msg("Job started")
	if err := job(ctx); err != nil {
		log.Error().Err(err).Str("job", name).Dur("took", time.Since(started)).Msg("Job failed")
		return
	}
	log.Info().Str("job", name).Dur("took", time.Since(started)).Msg("Job finished")
}
