package middleware

import (
	"context"
	"errors"
	"net/http"

	"jobboard/internal/common"
	"jobboard/internal/common/security"

	"github.com/rs/zerolog/log"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "token"

type contextKey string

const UserIDCtxKey contextKey = "userID"

// Authenticator guards routes behind the session cookie. On success the
// resolved user identifier is injected into the request context; it
// never crosses requests.
type Authenticator struct {
	tokens *security.TokenManager
}

func NewAuthenticator(tokens *security.TokenManager) *Authenticator {
	return &Authenticator{tokens: tokens}
}

func (a *Authenticator) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			common.RespondWithError(w, common.HTTPStatusFromError(common.ErrMissingToken), "Please login first")
			return
		}

		userID, err := a.tokens.Verify(cookie.Value)
		if err != nil {
			if errors.Is(err, common.ErrConfig) {
				// Operator problem, not the client's. Log the detail,
				// return a generic message.
				log.Error().Err(err).Msg("Session verification failed: signing secret is not set")
				common.RespondWithError(w, http.StatusInternalServerError, "Server configuration error")
				return
			}
			common.RespondWithError(w, common.HTTPStatusFromError(err), "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDCtxKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext returns the identity resolved by RequireAuth.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok
}
