package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rizzmaster/rizznova/internal/logger"
	"github.com/rizzmaster/rizznova/models"
)

// sessionRepository is the PostgreSQL-backed implementation of
// [SessionRepository]. Session rows carry an absolute expiry deadline;
// lookups exclude expired rows at the SQL level so a stale session is
// indistinguishable from a missing one.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession persists a new session row and returns the canonical
// database representation.
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateSessionQuery(session)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error: building insert query failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var created models.Session
	if err := row.Scan(&created.SessionID, &created.UserID, &created.CreatedAt, &created.ExpiresAt); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error: session insert failed")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindSession retrieves the session with the given id, provided its expiry
// deadline lies after now.
//
// Error handling:
//   - [sql.ErrNoRows] (absent or already expired) → [ErrSessionNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *sessionRepository) FindSession(ctx context.Context, sessionID string, now time.Time) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindSessionQuery(sessionID, now)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.FindSession").Msg("error: building select query failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var found models.Session
	if err := row.Scan(&found.SessionID, &found.UserID, &found.CreatedAt, &found.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}

		log.Err(err).Str("func", "*sessionRepository.FindSession").Msg("error: session lookup failed")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// DeleteSession removes the session row identified by sessionID. A missing
// row is not an error: logout is idempotent.
func (r *sessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSessionQuery(sessionID)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error: building delete query failed")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error: session delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// DeleteExpiredSessions removes every session whose deadline is at or before
// now and returns the number of purged rows. Invoked periodically by the
// session cleaner worker.
func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExpiredSessionsQuery(now)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("error: building sweep query failed")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("error: session sweep failed")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	purged, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return purged, nil
}
