package backend

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	apperr "roomieflow/cli/internal/errors"
)

// HeaderRequestID carries a per-request id for correlating CLI and server logs.
const HeaderRequestID = "X-Request-ID"

// BearerToken attaches "Authorization: Bearer <token>" when sess holds a token.
func BearerToken(sess Session) RequestInterceptor {
	return func(req *http.Request) error {
		if token := sess.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		return nil
	}
}

// RequestID sets a fresh X-Request-ID unless the caller already set one.
func RequestID() RequestInterceptor {
	return func(req *http.Request) error {
		if req.Header.Get(HeaderRequestID) == "" {
			req.Header.Set(HeaderRequestID, uuid.NewString())
		}
		return nil
	}
}

// LogoutOnUnauthorized clears sess when a call fails with exactly 401 while
// the session is authenticated. The error is always returned unchanged.
func LogoutOnUnauthorized(sess Session, log *slog.Logger) ErrorInterceptor {
	return func(err error) error {
		if apperr.StatusOf(err) == http.StatusUnauthorized && sess.IsAuthenticated() {
			log.Info("session expired, signing out")
			sess.Clear()
		}
		return err
	}
}
