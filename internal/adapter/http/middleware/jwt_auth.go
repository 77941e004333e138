package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/apexbank/apexbank-api/internal/commons"
	"github.com/apexbank/apexbank-api/internal/domain"
	"github.com/apexbank/apexbank-api/internal/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const actorContextKey contextKey = "actor"

// JWTAuth verifies the bearer token and injects the authenticated actor
// into the request context. Handlers downstream read it with ActorFrom.
func JWTAuth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := actorFromRequest(r, secret)
			if err != nil {
				logger.Info("auth middleware unauthorized request", logger.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
					"reason": err.Error(),
				})
				writeAuthError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

// RequireAdmin rejects requests whose actor does not carry the admin role.
// It must run after JWTAuth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFrom(r.Context())
		if !ok {
			writeAuthError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		if !actor.IsAdmin() {
			writeAuthError(w, http.StatusForbidden, commons.ErrForbidden.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}

func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorContextKey, actor)
}

func ActorFrom(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey).(domain.Actor)
	return actor, ok
}

func actorFromRequest(r *http.Request, secret []byte) (domain.Actor, error) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return domain.Actor{}, fmt.Errorf("missing bearer token")
	}

	token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return secret, nil
	})
	if err != nil {
		return domain.Actor{}, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Actor{}, fmt.Errorf("unexpected claims type")
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return domain.Actor{}, fmt.Errorf("missing subject claim")
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("subject claim is not a valid id")
	}

	role, _ := claims["role"].(string)
	if role != string(domain.RoleAdmin) {
		role = string(domain.RoleUser)
	}

	return domain.Actor{UserID: userID, Role: domain.Role(role)}, nil
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"success":false,"message":%q}`, message)
}
