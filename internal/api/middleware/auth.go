package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/api/response"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// ActorIDKey is the context key for storing the authenticated actor ID.
const ActorIDKey contextKey = "actor_id"

// GetActorID extracts the authenticated actor ID from the context.
// Returns empty string if not found.
func GetActorID(ctx context.Context) string {
	actorID, _ := ctx.Value(ActorIDKey).(string)
	return actorID
}

// RequireAuth returns a middleware that validates JWT bearer tokens and adds
// the actor ID to the request context. Mutating routes use this so every
// audit event carries the operator identity.
func RequireAuth(jwtManager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.RespondError(w, http.StatusUnauthorized, "unauthorized", auth.ErrMissingToken.Error())
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				response.RespondError(w, http.StatusUnauthorized, "unauthorized", auth.ErrInvalidToken.Error())
				return
			}

			claims, err := jwtManager.Validate(parts[1])
			if err != nil {
				response.RespondError(w, http.StatusUnauthorized, "unauthorized", err.Error())
				return
			}

			ctx := context.WithValue(r.Context(), ActorIDKey, claims.ActorID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
