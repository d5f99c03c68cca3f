package scheduler

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/lshigami/quizmaster/config"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler(t *testing.T, locker SlotLocker) *Scheduler {
	t.Helper()
	s, err := New(&config.Config{Scheduler: config.Scheduler{Timezone: "UTC", JobTimeout: time.Minute}}, locker)
	require.NoError(t, err)
	return s
}

func TestRunScheduledFiresOncePerSlot(t *testing.T) {
	locker := NewMemoryLocker()
	first := newTestScheduler(t, locker)
	second := newTestScheduler(t, locker)

	slot := time.Date(2026, 10, 1, 20, 0, 0, 0, time.UTC)

	var runs atomic.Int32
	job := func(ctx context.Context) error {
		runs.Add(1)
		return nil
	}

	first.runScheduled(JobDailyReminder, slot, job)
	second.runScheduled(JobDailyReminder, slot.Add(20*time.Second), job)
	first.runScheduled(JobDailyReminder, slot, job)
	assert.Equal(t, int32(1), runs.Load())

	first.runScheduled(JobDailyReminder, slot.Add(24*time.Hour), job)
	assert.Equal(t, int32(2), runs.Load())
}

type recordingLocker struct {
	mu   sync.Mutex
	keys []string
}

func (l *recordingLocker) Acquire(_ context.Context, key string, _ time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.keys = append(l.keys, key)
	return true, nil
}

func (l *recordingLocker) first() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.keys) == 0 {
		return ""
	}
	return l.keys[0]
}

func TestScheduledRunKeysSlotByFireTime(t *testing.T) {
	locker := &recordingLocker{}
	s := newTestScheduler(t, locker)
	// A clock far from the real fire time must not leak into the slot key.
	s.now = func() time.Time { return time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC) }

	ran := make(chan struct{}, 8)
	require.NoError(t, s.schedule("every-second", cron.Every(time.Second), func(ctx context.Context) error {
		ran <- struct{}{}
		return nil
	}))

	s.Start()
	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduled job did not run")
	}
	require.NoError(t, s.Stop(context.Background()))

	key := locker.first()
	require.True(t, strings.HasPrefix(key, "job:every-second:"), key)
	assert.NotContains(t, key, "203001010000")

	fired, err := time.ParseInLocation("200601021504", strings.TrimPrefix(key, "job:every-second:"), time.UTC)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), fired, 2*time.Minute)
}

func TestSlotKeyUsesSchedulerTimezone(t *testing.T) {
	s, err := New(&config.Config{Scheduler: config.Scheduler{Timezone: "Asia/Kolkata"}}, NewMemoryLocker())
	require.NoError(t, err)

	at := time.Date(2026, 10, 1, 14, 30, 59, 0, time.UTC)
	assert.Equal(t, "job:monthly-report:202610012000", s.SlotKey(JobMonthlyReport, at))
}

func TestRedisLockerIsShared(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	a := NewSlotLocker(client)
	b := NewSlotLocker(client)
	ctx := context.Background()

	ok, err := a.Acquire(ctx, "job:x:1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.Acquire(ctx, "job:x:1", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	mr.FastForward(2 * time.Minute)
	ok, err = b.Acquire(ctx, "job:x:1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegisterRejectsBadSpecAndDuplicates(t *testing.T) {
	s := newTestScheduler(t, NewMemoryLocker())
	noop := func(ctx context.Context) error { return nil }

	require.NoError(t, s.Register(JobDailyReminder, "0 20 * * *", noop))
	assert.Error(t, s.Register(JobDailyReminder, "0 20 * * *", noop))
	assert.Error(t, s.Register("broken", "not a spec", noop))
}

func TestTriggerRunsJobInBackground(t *testing.T) {
	s := newTestScheduler(t, NewMemoryLocker())
	done := make(chan struct{})
	require.NoError(t, s.Register(JobMonthlyReport, "0 3 1 * *", func(ctx context.Context) error {
		close(done)
		return nil
	}))

	require.NoError(t, s.Trigger(JobMonthlyReport))
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("triggered job did not run")
	}
	require.NoError(t, s.Stop(context.Background()))

	assert.Error(t, s.Trigger("unknown"))
}

func TestTriggerAfterStopIsRejected(t *testing.T) {
	s := newTestScheduler(t, NewMemoryLocker())
	var runs atomic.Int32
	require.NoError(t, s.Register(JobDailyReminder, "0 20 * * *", func(ctx context.Context) error {
		runs.Add(1)
		return nil
	}))

	s.Start()
	require.NoError(t, s.Stop(context.Background()))
	require.NoError(t, s.Stop(context.Background()))

	assert.ErrorIs(t, s.Trigger(JobDailyReminder), ErrStopped)
	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, runs.Load())
}
