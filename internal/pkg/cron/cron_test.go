package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokenRepo struct {
	auth.RefreshTokenRepository
	before  time.Time
	removed int64
	err     error
}

func (f *fakeTokenRepo) DeleteExpiredRefreshTokens(_ context.Context, before time.Time) (int64, error) {
	f.before = before
	return f.removed, f.err
}

func TestTokenJobs_PruneUsesRetention(t *testing.T) {
	repo := &fakeTokenRepo{removed: 3}
	jobs := NewTokenJobs(repo, 24*time.Hour)
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	jobs.now = func() time.Time { return now }

	require.NoError(t, jobs.PruneExpiredRefreshTokens(context.Background()))
	assert.True(t, repo.before.Equal(now.Add(-24*time.Hour)))
}

func TestTokenJobs_PropagatesError(t *testing.T) {
	boom := errors.New("db down")
	jobs := NewTokenJobs(&fakeTokenRepo{err: boom}, time.Hour)

	assert.ErrorIs(t, jobs.PruneExpiredRefreshTokens(context.Background()), boom)
}

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler(nil)
	var calls atomic.Int32
	s.AddJob("ok", time.Hour, func(context.Context) error { calls.Add(1); return nil })
	s.AddJob("fails", time.Hour, func(context.Context) error { calls.Add(1); return errors.New("boom") })

	s.RunOnce(context.Background())
	assert.EqualValues(t, 2, calls.Load())
}

func TestScheduler_StartRunsImmediatelyAndStops(t *testing.T) {
	s := NewScheduler(nil)
	ran := make(chan struct{}, 1)
	s.AddJob("tick", time.Hour, func(context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start(context.Background())
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}
