package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/auth"
)

// TokenJobs keeps the refresh token table bounded.
type TokenJobs struct {
	refreshTokenRepo auth.RefreshTokenRepository
	retention        time.Duration
	now              func() time.Time
}

// NewTokenJobs prunes tokens once they have been expired for longer than retention.
func NewTokenJobs(refreshTokenRepo auth.RefreshTokenRepository, retention time.Duration) *TokenJobs {
	return &TokenJobs{
		refreshTokenRepo: refreshTokenRepo,
		retention:        retention,
		now:              time.Now,
	}
}

func (j *TokenJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("prune_expired_refresh_tokens", interval, j.PruneExpiredRefreshTokens)
}

// PruneExpiredRefreshTokens deletes refresh tokens past expiry plus retention.
func (j *TokenJobs) PruneExpiredRefreshTokens(ctx context.Context) error {
	removed, err := j.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx, j.now().Add(-j.retention))
	if err != nil {
		return err
	}
	if removed > 0 {
		slog.InfoContext(ctx, "Pruned expired refresh tokens", "count", removed)
	}
	return nil
}
