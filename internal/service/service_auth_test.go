package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rizzmaster/rizznova/internal/config"
	"github.com/rizzmaster/rizznova/internal/crypto"
	"github.com/rizzmaster/rizznova/internal/logger"
	"github.com/rizzmaster/rizznova/internal/service/mocks"
	"github.com/rizzmaster/rizznova/internal/store"
	"github.com/rizzmaster/rizznova/models"
)

const testSessionTTL = 7 * 24 * time.Hour

func newTestAuthService(t *testing.T) (AuthService, *mocks.MockUserRepository, *mocks.MockSessionRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	sessionRepo := mocks.NewMockSessionRepository(ctrl)

	storages := &store.Storages{
		UserRepository:    userRepo,
		SessionRepository: sessionRepo,
	}

	auth, err := NewAuthService(storages, config.App{SessionSecret: "test-secret", SessionTTL: testSessionTTL}, logger.Nop())
	require.NoError(t, err)

	return auth, userRepo, sessionRepo
}

func TestAuthService_RegisterUser(t *testing.T) {
	auth, userRepo, _ := newTestAuthService(t)
	ctx := context.Background()

	req := models.RegisterRequest{
		Email:     "new@example.com",
		Password:  "super-secret",
		FirstName: "New",
		LastName:  "User",
	}

	userRepo.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, req.Email, user.Email)
			assert.Equal(t, req.FirstName, user.FirstName)
			assert.Equal(t, req.LastName, user.LastName)

			// the stored credential must be a derived hash, never the
			// plaintext password
			assert.NotEqual(t, req.Password, user.PasswordHash)
			assert.True(t, strings.Contains(user.PasswordHash, "."))

			user.UserID = 1
			return user, nil
		})

	registered, err := auth.RegisterUser(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, int64(1), registered.UserID)
	assert.Equal(t, req.Email, registered.Email)
}

func TestAuthService_RegisterUser_InvalidData(t *testing.T) {
	auth, _, _ := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{name: "empty email", req: models.RegisterRequest{Password: "password"}},
		{name: "empty password", req: models.RegisterRequest{Email: "a@x.com"}},
		{name: "empty everything", req: models.RegisterRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.RegisterUser(ctx, tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	auth, userRepo, _ := newTestAuthService(t)
	ctx := context.Background()

	userRepo.EXPECT().
		CreateUser(ctx, gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := auth.RegisterUser(ctx, models.RegisterRequest{Email: "taken@example.com", Password: "password"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	auth, userRepo, _ := newTestAuthService(t)
	ctx := context.Background()

	passwordHash, err := crypto.NewPasswordHasher().Hash("correct horse")
	require.NoError(t, err)

	storedUser := models.User{
		UserID:       7,
		Email:        "a@x.com",
		PasswordHash: passwordHash,
	}

	userRepo.EXPECT().
		FindUserByEmail(ctx, "a@x.com").
		Return(storedUser, nil)

	loggedIn, err := auth.Login(ctx, models.LoginRequest{Email: "a@x.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, storedUser.UserID, loggedIn.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	auth, userRepo, _ := newTestAuthService(t)
	ctx := context.Background()

	passwordHash, err := crypto.NewPasswordHasher().Hash("correct horse")
	require.NoError(t, err)

	userRepo.EXPECT().
		FindUserByEmail(ctx, "a@x.com").
		Return(models.User{UserID: 7, Email: "a@x.com", PasswordHash: passwordHash}, nil)

	_, err = auth.Login(ctx, models.LoginRequest{Email: "a@x.com", Password: "battery staple"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	auth, userRepo, _ := newTestAuthService(t)
	ctx := context.Background()

	userRepo.EXPECT().
		FindUserByEmail(ctx, "nobody@example.com").
		Return(models.User{}, store.ErrNoUserWasFound)

	// an unknown email must be indistinguishable from a wrong password
	_, err := auth.Login(ctx, models.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_InvalidData(t *testing.T) {
	auth, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := auth.Login(ctx, models.LoginRequest{Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = auth.Login(ctx, models.LoginRequest{Password: "password"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_CreateSession(t *testing.T) {
	auth, _, sessionRepo := newTestAuthService(t)
	ctx := context.Background()

	sessionRepo.EXPECT().
		CreateSession(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, session models.Session) (models.Session, error) {
			assert.Equal(t, int64(7), session.UserID)
			assert.Len(t, session.SessionID, 64) // 32 random bytes, hex encoded
			assert.Equal(t, testSessionTTL, session.ExpiresAt.Sub(session.CreatedAt))
			return session, nil
		})

	session, err := auth.CreateSession(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), session.UserID)
}

func TestAuthService_CreateSession_UniqueIdentifiers(t *testing.T) {
	auth, _, sessionRepo := newTestAuthService(t)
	ctx := context.Background()

	sessionRepo.EXPECT().
		CreateSession(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, session models.Session) (models.Session, error) {
			return session, nil
		}).
		Times(2)

	first, err := auth.CreateSession(ctx, 7)
	require.NoError(t, err)
	second, err := auth.CreateSession(ctx, 7)
	require.NoError(t, err)

	assert.NotEqual(t, first.SessionID, second.SessionID)
}

func TestAuthService_ResolveSession(t *testing.T) {
	auth, userRepo, sessionRepo := newTestAuthService(t)
	ctx := context.Background()

	sessionRepo.EXPECT().
		FindSession(ctx, "session-id", gomock.Any()).
		Return(models.Session{SessionID: "session-id", UserID: 7}, nil)
	userRepo.EXPECT().
		FindUserByID(ctx, int64(7)).
		Return(models.User{UserID: 7, Email: "a@x.com"}, nil)

	user, err := auth.ResolveSession(ctx, "session-id")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
}

func TestAuthService_ResolveSession_NotFound(t *testing.T) {
	auth, _, sessionRepo := newTestAuthService(t)
	ctx := context.Background()

	sessionRepo.EXPECT().
		FindSession(ctx, "gone", gomock.Any()).
		Return(models.Session{}, store.ErrSessionNotFound)

	_, err := auth.ResolveSession(ctx, "gone")
	assert.ErrorIs(t, err, ErrSessionIsInvalid)
}

func TestAuthService_ResolveSession_OrphanedUser(t *testing.T) {
	auth, userRepo, sessionRepo := newTestAuthService(t)
	ctx := context.Background()

	sessionRepo.EXPECT().
		FindSession(ctx, "session-id", gomock.Any()).
		Return(models.Session{SessionID: "session-id", UserID: 42}, nil)
	userRepo.EXPECT().
		FindUserByID(ctx, int64(42)).
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := auth.ResolveSession(ctx, "session-id")
	assert.ErrorIs(t, err, ErrSessionIsInvalid)
}

func TestAuthService_Logout(t *testing.T) {
	auth, _, sessionRepo := newTestAuthService(t)
	ctx := context.Background()

	sessionRepo.EXPECT().
		DeleteSession(ctx, "session-id").
		Return(nil)

	assert.NoError(t, auth.Logout(ctx, "session-id"))
}

func TestAuthService_Logout_StorageError(t *testing.T) {
	auth, _, sessionRepo := newTestAuthService(t)
	ctx := context.Background()

	storageErr := errors.New("connection lost")
	sessionRepo.EXPECT().
		DeleteSession(ctx, "session-id").
		Return(storageErr)

	assert.ErrorIs(t, auth.Logout(ctx, "session-id"), storageErr)
}
