// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Session authentication, logging, and tracing concerns
// are all handled at this layer before requests are forwarded to the
// service layer.
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/rizzmaster/rizznova/internal/logger"
	"github.com/rizzmaster/rizznova/internal/service"
	"github.com/rizzmaster/rizznova/internal/utils"
)

// sessionAuth is an HTTP middleware that enforces cookie-based session
// authentication.
//
// It reads the session cookie, checks the value's HMAC signature with the
// configured session secret, resolves the embedded session identifier via
// [service.AuthService.ResolveSession], and — on success — stores the
// authenticated user in the request context under [utils.UserCtxKey]
// (plus [utils.UserIDCtxKey] and [utils.SessionIDCtxKey]) before delegating
// to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the
// following cases:
//   - The session cookie is absent ([ErrNoSessionCookie]).
//   - The cookie value cannot be split into an identifier and a signature
//     ([ErrMalformedSessionCookie]).
//   - The signature does not verify ([ErrBadCookieSignature]); such cookies
//     never reach the database.
//   - The session is missing, expired, or points at a deleted user
//     ([service.ErrSessionIsInvalid]).
//
// The response body is identical for every rejection so that the endpoint
// leaks nothing about which check failed.
func (h *Handler) sessionAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			log.Debug().Err(ErrNoSessionCookie).Send()
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		sessionID, err := h.decodeSessionCookie(cookie.Value)
		if err != nil {
			log.Debug().Err(err).Send()
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.ResolveSession(ctx, sessionID)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrSessionIsInvalid):
				log.Debug().Err(err).Msg("session expired or invalid")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during session resolution")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
		}

		// Store the authenticated user in the context so that downstream
		// handlers can serve it without another session lookup.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, user.UserID)
		ctx = context.WithValue(ctx, utils.SessionIDCtxKey, sessionID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
