package service

import (
	"context"
	"time"

	"portfolio_backend/internal/repository"
)

// SweeperService periodically drops expired session rows so the sessions
// table does not grow without bound. Expired sessions are already invisible
// to reads; the sweeper is housekeeping only.
type SweeperService struct {
	sessions repository.Sessions
}

func NewSweeperService(sessions repository.Sessions) *SweeperService {
	return &SweeperService{sessions: sessions}
}

// Run ticks at the given interval until ctx is canceled. A failed sweep is
// skipped; the next tick tries again.
func (s *SweeperService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			_, _ = s.sessions.DeleteExpired(ctx, now.UTC())
		}
	}
}

// PurgeExpired runs one sweep immediately and reports how many sessions
// were removed.
func (s *SweeperService) PurgeExpired(ctx context.Context) (int64, error) {
	return s.sessions.DeleteExpired(ctx, time.Now().UTC())
}
