package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSchedule_RunsTask(t *testing.T) {
	s := NewCronScheduler(nil, time.Second)
	defer s.Stop()

	ran := make(chan struct{}, 1)
	err := s.Schedule(context.Background(), "refresh", time.Second, func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})
	require.NoError(t, err)

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("task did not run")
	}
}

func TestSchedule_FailingTaskKeepsRunning(t *testing.T) {
	s := NewCronScheduler(nil, time.Second)
	defer s.Stop()

	var runs atomic.Int32
	require.NoError(t, s.Schedule(context.Background(), "flaky", time.Second, func(ctx context.Context) error {
		runs.Add(1)
		return errors.New("boom")
	}))

	require.Eventually(t, func() bool { return runs.Load() >= 2 }, 4*time.Second, 50*time.Millisecond)
}

func TestSchedule_DuplicateAndInvalid(t *testing.T) {
	s := NewCronScheduler(nil, 0)
	defer s.Stop()

	noop := func(ctx context.Context) error { return nil }
	require.NoError(t, s.Schedule(context.Background(), "a", time.Hour, noop))
	assert.Error(t, s.Schedule(context.Background(), "a", time.Hour, noop))
	assert.Error(t, s.Schedule(context.Background(), "b", 0, noop))
	assert.Equal(t, []string{"a"}, s.Jobs())
}

func TestSchedule_CancelledContextSkipsRuns(t *testing.T) {
	s := NewCronScheduler(nil, time.Second)
	defer s.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var runs atomic.Int32
	require.NoError(t, s.Schedule(ctx, "skipped", time.Second, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	}))

	time.Sleep(1500 * time.Millisecond)
	assert.Zero(t, runs.Load())
}

func TestStop_ClearsJobs(t *testing.T) {
	s := NewCronScheduler(nil, time.Second)
	require.NoError(t, s.Schedule(context.Background(), "a", time.Hour, func(ctx context.Context) error { return nil }))

	s.Stop()
	assert.Empty(t, s.Jobs())
}
