package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

type ExpiredSessionDeleter interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// StartSessionSweeper deletes expired sessions every interval until ctx is
// cancelled. The returned channel is closed once the sweeper has stopped.
func StartSessionSweeper(ctx context.Context, store ExpiredSessionDeleter, interval time.Duration, logger zerolog.Logger) <-chan struct{} {
	done := make(chan struct{})
	ticker := time.NewTicker(interval)
	go func() {
		defer close(done)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed, err := store.DeleteExpired(ctx, time.Now())
				if err != nil {
					logger.Error().Err(err).Msg("failed to sweep expired sessions")
					continue
				}
				if removed > 0 {
					logger.Info().Int64("removed", removed).Msg("swept expired sessions")
				}
			}
		}
	}()
	return done
}
