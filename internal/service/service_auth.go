package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rizzmaster/rizznova/internal/config"
	"github.com/rizzmaster/rizznova/internal/crypto"
	"github.com/rizzmaster/rizznova/internal/logger"
	"github.com/rizzmaster/rizznova/internal/store"
	"github.com/rizzmaster/rizznova/internal/utils"
	"github.com/rizzmaster/rizznova/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the session
// lifecycle using a UserRepository and SessionRepository for persistence
// and a scrypt-based PasswordHasher for credential derivation.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessionRepository is the data-access layer for server-side sessions.
	sessionRepository store.SessionRepository

	// hasher derives and verifies salted credential hashes.
	hasher crypto.PasswordHasher

	// tokens produces the opaque session identifiers handed to clients.
	tokens *utils.TokenGenerator

	// sessionTTL is the absolute lifetime of every issued session.
	sessionTTL time.Duration

	// referenceHash is a hash of a throwaway random value, verified against
	// on the unknown-email login path so that path costs one key derivation
	// just like the wrong-password path. Without it, response timing would
	// reveal whether an email is registered.
	referenceHash string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repositories
// and populated with session parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(storages *store.Storages, cfg config.App, logger *logger.Logger) (AuthService, error) {
	hasher := crypto.NewPasswordHasher()
	tokens := utils.NewTokenGenerator()

	throwaway, err := tokens.Generate()
	if err != nil {
		return nil, fmt.Errorf("error preparing reference credential: %w", err)
	}

	referenceHash, err := hasher.Hash(throwaway)
	if err != nil {
		return nil, fmt.Errorf("error preparing reference credential: %w", err)
	}

	return &authService{
		userRepository:    storages.UserRepository,
		sessionRepository: storages.SessionRepository,
		hasher:            hasher,
		tokens:            tokens,
		sessionTTL:        cfg.SessionTTL,
		referenceHash:     referenceHash,
		logger:            logger,
	}, nil
}

// RegisterUser creates a new user account.
//
// It validates that both Email and Password are non-empty, hashes the
// password with a fresh random salt, and delegates persistence to the
// UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken — see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        req.Email,
		PasswordHash: passwordHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It validates that both Email and Password are non-empty, looks up the
// account by email, and verifies the candidate password against the stored
// hash in constant time.
//
// An unknown email and a wrong password are indistinguishable to the
// caller: both return ErrWrongPassword, and the unknown-email path still
// burns one key derivation against the reference hash so the two failure
// modes cost the same.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			a.hasher.Verify(req.Password, a.referenceHash)
			log.Debug().Str("email", req.Email).Msg("login attempt for unknown email")
			return models.User{}, ErrWrongPassword
		}

		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(req.Password, foundUser.PasswordHash) {
		log.Debug().Int64("id", foundUser.UserID).Str("email", foundUser.Email).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateSession establishes a new session bound to userID. The session
// identifier is a fresh random token and the expiry is absolute: the
// deadline is fixed at creation time and never extended.
func (a *authService) CreateSession(ctx context.Context, userID int64) (models.Session, error) {
	log := logger.FromContext(ctx)

	sessionID, err := a.tokens.Generate()
	if err != nil {
		log.Err(err).Msg("session token generation failed")
		return models.Session{}, fmt.Errorf("session token generation failed: %w", err)
	}

	now := time.Now()
	session, err := a.sessionRepository.CreateSession(ctx, models.Session{
		SessionID: sessionID,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(a.sessionTTL),
	})
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("session creation ended with error")
		return models.Session{}, fmt.Errorf("session creation ended with error: %w", err)
	}

	return session, nil
}

// ResolveSession maps a session identifier to its user record.
//
// Any lookup failure that means "this credential no longer authenticates
// anyone" — a missing or expired session, or a session pointing at a
// deleted user — is normalised to ErrSessionIsInvalid so that callers do
// not need to inspect storage-level errors.
func (a *authService) ResolveSession(ctx context.Context, sessionID string) (models.User, error) {
	log := logger.FromContext(ctx)

	session, err := a.sessionRepository.FindSession(ctx, sessionID, time.Now())
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.User{}, ErrSessionIsInvalid
		}

		log.Err(err).Msg("session lookup failed")
		return models.User{}, fmt.Errorf("session lookup failed: %w", err)
	}

	user, err := a.userRepository.FindUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Int64("userID", session.UserID).Msg("session points at a missing user")
			return models.User{}, ErrSessionIsInvalid
		}

		log.Err(err).Int64("userID", session.UserID).Msg("session user lookup failed")
		return models.User{}, fmt.Errorf("session user lookup failed: %w", err)
	}

	return user, nil
}

// Logout destroys the session record identified by sessionID. The operation
// is idempotent: destroying an already destroyed session succeeds.
func (a *authService) Logout(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	if err := a.sessionRepository.DeleteSession(ctx, sessionID); err != nil {
		log.Err(err).Msg("session deletion ended with error")
		return fmt.Errorf("session deletion ended with error: %w", err)
	}

	return nil
}
