package workers

import (
	"context"
	"time"

	"github.com/rizzmaster/rizznova/internal/logger"
)

// expiredSessionDeleter is the slice of store.SessionRepository the cleaner
// actually needs.
type expiredSessionDeleter interface {
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// sessionCleaner periodically deletes expired session rows.
//
// Expired sessions are already invisible to lookups (the repository filters
// on expiry), so the cleaner only reclaims storage; correctness does not
// depend on how often it runs.
type sessionCleaner struct {
	ctx               context.Context
	sessionRepository expiredSessionDeleter
	interval          time.Duration
	logger            *logger.Logger
}

func newSessionCleaner(ctx context.Context, sessionRepository expiredSessionDeleter, interval time.Duration, logger *logger.Logger) *sessionCleaner {
	return &sessionCleaner{
		ctx:               ctx,
		sessionRepository: sessionRepository,
		interval:          interval,
		logger:            logger,
	}
}

// Run starts the cleanup loop in its own goroutine and returns immediately.
// The loop stops when the worker's context is cancelled.
func (s *sessionCleaner) Run() {
	go s.loop()
}

func (s *sessionCleaner) loop() {
	s.logger.Info().Dur("interval", s.interval).Msg("session cleaner started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			s.logger.Info().Msg("session cleaner stopped")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *sessionCleaner) sweep() {
	purged, err := s.sessionRepository.DeleteExpiredSessions(s.ctx, time.Now())
	if err != nil {
		s.logger.Err(err).Msg("expired session sweep failed")
		return
	}

	if purged > 0 {
		s.logger.Info().Int64("purged", purged).Msg("expired sessions removed")
	}
}
