package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/rizzmaster/rizznova/models"
)

const (
	createUser = `INSERT INTO users (email, password_hash, first_name, last_name)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, email, password_hash, first_name, last_name, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, first_name, last_name, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, password_hash, first_name, last_name, created_at
    FROM users
    WHERE user_id = $1;`
)

// psql is the shared squirrel builder configured for PostgreSQL
// ($1-style placeholders). Session queries are built dynamically with it
// because they all carry a time boundary argument.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildCreateSessionQuery builds the INSERT for a new session row.
func buildCreateSessionQuery(session models.Session) (string, []any, error) {
	return psql.
		Insert(session.TableName()).
		Columns("session_id", "user_id", "created_at", "expires_at").
		Values(session.SessionID, session.UserID, session.CreatedAt, session.ExpiresAt).
		Suffix("RETURNING session_id, user_id, created_at, expires_at").
		ToSql()
}

// buildFindSessionQuery builds the lookup of a live session: rows whose
// deadline has already passed are invisible to the query.
func buildFindSessionQuery(sessionID string, now time.Time) (string, []any, error) {
	return psql.
		Select("session_id", "user_id", "created_at", "expires_at").
		From(models.Session{}.TableName()).
		Where(sq.Eq{"session_id": sessionID}).
		Where(sq.Gt{"expires_at": now}).
		ToSql()
}

// buildDeleteSessionQuery builds the DELETE for a single session row.
func buildDeleteSessionQuery(sessionID string) (string, []any, error) {
	return psql.
		Delete(models.Session{}.TableName()).
		Where(sq.Eq{"session_id": sessionID}).
		ToSql()
}

// buildDeleteExpiredSessionsQuery builds the sweep DELETE used by the
// background cleaner.
func buildDeleteExpiredSessionsQuery(now time.Time) (string, []any, error) {
	return psql.
		Delete(models.Session{}.TableName()).
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
}
