package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_AddJobIgnoresNonPositiveInterval(t *testing.T) {
	s := NewScheduler()
	s.AddJob(Job{Name: "disabled", Interval: 0, Fn: func(context.Context) error { return nil }})
	s.AddJob(Job{Name: "enabled", Interval: time.Minute, Fn: func(context.Context) error { return nil }})

	jobs := s.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, "enabled", jobs[0].Name)
}

func TestScheduler_RunsImmediatelyAndStops(t *testing.T) {
	var runs atomic.Int32
	s := NewScheduler()
	s.AddJob(Job{Name: "tick", Interval: time.Hour, Fn: func(context.Context) error {
		runs.Add(1)
		return nil
	}})

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)

	s.Stop()
	assert.Equal(t, int32(1), runs.Load())
}

func TestScheduler_StopWithoutStart(t *testing.T) {
	s := NewScheduler()
	assert.NotPanics(t, s.Stop)
}

func TestScheduler_RunOnceCountsFailures(t *testing.T) {
	s := NewScheduler()
	s.AddJob(Job{Name: "ok", Interval: time.Minute, Fn: func(context.Context) error { return nil }})
	s.AddJob(Job{Name: "broken", Interval: time.Minute, Fn: func(context.Context) error { return errors.New("boom") }})

	assert.Equal(t, 1, s.RunOnce(context.Background()))
}

func TestScheduler_TimeoutBoundsRun(t *testing.T) {
	done := make(chan error, 1)
	s := NewScheduler()
	s.AddJob(Job{Name: "slow", Interval: time.Hour, Timeout: 20 * time.Millisecond, Fn: func(ctx context.Context) error {
		<-ctx.Done()
		done <- ctx.Err()
		return ctx.Err()
	}})

	s.Start(context.Background())
	defer s.Stop()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(time.Second):
		t.Fatal("job was not cancelled by its timeout")
	}
}
