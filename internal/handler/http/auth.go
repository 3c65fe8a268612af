package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rizzmaster/rizznova/internal/logger"
	"github.com/rizzmaster/rizznova/internal/service"
	"github.com/rizzmaster/rizznova/internal/store"
	"github.com/rizzmaster/rizznova/internal/utils"
	"github.com/rizzmaster/rizznova/models"
)

// invalidCredentialsMessage is the single body returned for every failed
// login. An unknown email and a wrong password must read the same, otherwise
// the endpoint can be used to enumerate registered accounts.
const invalidCredentialsMessage = "Invalid email or password"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "Email and password are required", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			http.Error(w, "User already exists", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	// registration implies login: the fresh account gets a session right away
	session, err := h.services.AuthService.CreateSession(ctx, registeredUser.UserID)
	if err != nil {
		log.Err(err).Msg("creation of session failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, session)
	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "Email and password are required", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("failed login attempt")
			http.Error(w, invalidCredentialsMessage, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	session, err := h.services.AuthService.CreateSession(ctx, foundUser.UserID)
	if err != nil {
		log.Err(err).Msg("creation of session failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, session)
	utils.WriteJSON(w, foundUser, http.StatusOK)
}

// logout destroys the caller's session, if any, and clears the cookie.
//
// The endpoint is deliberately lenient: a missing, malformed, or forged
// cookie still yields 200 and a cleared cookie, because the end state the
// client asked for ("I am logged out") already holds.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		sessionID, err := h.decodeSessionCookie(cookie.Value)
		if err != nil {
			log.Debug().Err(err).Msg("logout with an unusable session cookie")
		} else if err := h.services.AuthService.Logout(ctx, sessionID); err != nil {
			log.Err(err).Msg("session deletion ended with error")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	h.clearSessionCookie(w)
	utils.WriteJSON(w, map[string]string{"message": "Logged out successfully"}, http.StatusOK)
}

// currentUser returns the authenticated user's own record. The session
// middleware has already resolved the session and put the user into the
// request context.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user in context: session middleware did not run")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
