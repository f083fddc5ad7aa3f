package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jekabolt/merchant-report/internal/dependency/mocks"
	"github.com/jekabolt/merchant-report/internal/entity"
	gerr "github.com/jekabolt/merchant-report/internal/errors"
)

func TestConfigSchedule(t *testing.T) {
	from := time.Date(2024, 3, 15, 12, 0, 30, 0, time.UTC)

	s, err := Config{Mode: ModeInterval, Interval: time.Minute}.Schedule()
	require.NoError(t, err)
	assert.Equal(t, from.Add(time.Minute).Truncate(time.Second), s.Next(from))

	s, err = DefaultConfig().Schedule()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), s.Next(from))

	_, err = Config{Mode: ModeInterval, Interval: time.Millisecond}.Schedule()
	assert.ErrorIs(t, err, gerr.InvalidConfig)
	_, err = Config{Mode: ModeCron, Cron: "every day"}.Schedule()
	assert.ErrorIs(t, err, gerr.InvalidConfig)
	_, err = Config{Mode: "hourly"}.Schedule()
	assert.ErrorIs(t, err, gerr.InvalidConfig)
}

func TestRunOnStart(t *testing.T) {
	done := make(chan struct{})
	runner := mocks.NewRunner(t)
	runner.EXPECT().Run(mock.Anything).Run(func(ctx context.Context) {
		close(done)
	}).Return(&entity.RunResult{}, nil).Once()

	s, err := New(Config{Mode: ModeInterval, Interval: time.Hour, RunOnStart: true}, runner)
	require.NoError(t, err)
	require.NoError(t, s.Start(context.Background()))
	assert.Error(t, s.Start(context.Background()))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("report did not run on start")
	}
	require.NoError(t, s.Stop())
	assert.Error(t, s.Stop())
}

func TestSkipsOverlappingRuns(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	runner := mocks.NewRunner(t)
	runner.EXPECT().Run(mock.Anything).Run(func(ctx context.Context) {
		close(entered)
		<-release
	}).Return(nil, assert.AnError).Once()

	s, err := New(Config{Mode: ModeInterval, Interval: time.Hour}, runner)
	require.NoError(t, err)
	require.NoError(t, s.Start(context.Background()))

	finished := make(chan struct{})
	go func() {
		s.job.Run()
		close(finished)
	}()
	<-entered

	// the second trigger returns at once without calling the runner
	s.job.Run()

	close(release)
	<-finished
	require.NoError(t, s.Stop())
}

func TestRunErrorDoesNotStopScheduler(t *testing.T) {
	runner := mocks.NewRunner(t)
	runner.EXPECT().Run(mock.Anything).Return(nil, assert.AnError).Twice()

	s, err := New(Config{Mode: ModeInterval, Interval: time.Hour}, runner)
	require.NoError(t, err)
	require.NoError(t, s.Start(context.Background()))

	s.job.Run()
	s.job.Run()
	require.NoError(t, s.Stop())
}

func TestStopWaitsForRunOnStart(t *testing.T) {
	entered := make(chan struct{})
	var finished atomic.Bool
	runner := mocks.NewRunner(t)
	runner.EXPECT().Run(mock.Anything).Run(func(ctx context.Context) {
		close(entered)
		time.Sleep(200 * time.Millisecond)
		finished.Store(true)
	}).Return(&entity.RunResult{}, nil).Once()

	s, err := New(Config{Mode: ModeInterval, Interval: time.Hour, RunOnStart: true}, runner)
	require.NoError(t, err)
	require.NoError(t, s.Start(context.Background()))

	<-entered
	require.NoError(t, s.Stop())
	assert.True(t, finished.Load())
}

func TestRestartKeepsSingleEntry(t *testing.T) {
	s, err := New(Config{Mode: ModeInterval, Interval: time.Hour}, mocks.NewRunner(t))
	require.NoError(t, err)

	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.Stop())
	require.NoError(t, s.Start(context.Background()))
	assert.Len(t, s.cron.Entries(), 1)
	require.NoError(t, s.Stop())
}
