package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SurfShopService/internal/api/handlers"
	"github.com/m04kA/SMC-SurfShopService/pkg/jwtauth"
)

type contextKey string

const (
	operatorIDKey   contextKey = "operatorID"
	operatorNameKey contextKey = "operatorName"
)

// TokenValidator проверяет Bearer токен оператора
type TokenValidator interface {
	Validate(token string) (*jwtauth.Claims, error)
}

// Auth пропускает запрос только с валидным "Authorization: Bearer <jwt>".
// ID и имя оператора кладутся в контекст.
func Auth(tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
				handlers.RespondUnauthorized(w)
				return
			}

			claims, err := tokens.Validate(strings.TrimSpace(parts[1]))
			if err != nil {
				handlers.RespondUnauthorized(w)
				return
			}

			operatorID, err := uuid.Parse(claims.Subject)
			if err != nil {
				handlers.RespondUnauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), operatorIDKey, operatorID)
			ctx = context.WithValue(ctx, operatorNameKey, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetOperatorID возвращает ID оператора из контекста запроса
func GetOperatorID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(operatorIDKey).(uuid.UUID)
	return id, ok
}

// GetOperatorName возвращает имя оператора из контекста запроса
func GetOperatorName(ctx context.Context) string {
	name, _ := ctx.Value(operatorNameKey).(string)
	return name
}
