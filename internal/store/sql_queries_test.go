package store

import (
	"testing"
	"time"

	"github.com/rizzmaster/rizznova/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCreateSessionQuery(t *testing.T) {
	now := time.Now()
	session := models.Session{
		SessionID: "sid-1",
		UserID:    7,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}

	query, args, err := buildCreateSessionQuery(session)

	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO sessions (session_id,user_id,created_at,expires_at) VALUES ($1,$2,$3,$4) RETURNING session_id, user_id, created_at, expires_at",
		query)
	assert.Equal(t, []any{"sid-1", int64(7), now, now.Add(time.Hour)}, args)
}

func TestBuildFindSessionQuery(t *testing.T) {
	now := time.Now()

	query, args, err := buildFindSessionQuery("sid-1", now)

	require.NoError(t, err)
	assert.Equal(t,
		"SELECT session_id, user_id, created_at, expires_at FROM sessions WHERE session_id = $1 AND expires_at > $2",
		query)
	assert.Equal(t, []any{"sid-1", now}, args)
}

func TestBuildDeleteSessionQuery(t *testing.T) {
	query, args, err := buildDeleteSessionQuery("sid-1")

	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM sessions WHERE session_id = $1", query)
	assert.Equal(t, []any{"sid-1"}, args)
}

func TestBuildDeleteExpiredSessionsQuery(t *testing.T) {
	now := time.Now()

	query, args, err := buildDeleteExpiredSessionsQuery(now)

	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM sessions WHERE expires_at <= $1", query)
	assert.Equal(t, []any{now}, args)
}
