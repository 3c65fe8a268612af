package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rizzmaster/rizznova/models"
)

func TestGetUserIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	userID, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(42), userID)
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "not-an-int")

	_, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)
}

func TestGetUserFromContext(t *testing.T) {
	user := models.User{UserID: 42, Email: "a@x.com"}
	ctx := context.WithValue(context.Background(), UserCtxKey, user)

	got, ok := GetUserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, user, got)
}

func TestGetUserFromContext_Missing(t *testing.T) {
	_, ok := GetUserFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetSessionIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionIDCtxKey, "abc123")

	sessionID, ok := GetSessionIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "abc123", sessionID)
}

func TestGetSessionIDFromContext_Missing(t *testing.T) {
	_, ok := GetSessionIDFromContext(context.Background())
	assert.False(t, ok)
}
