package security

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"health-tracker-server/internal/apperror"
	"health-tracker-server/internal/model/requestresponse"
)

type contextKey string

const (
	UserContextKey  contextKey = "user"
	TokenContextKey contextKey = "access_token"
)

// Authenticator : проверка access токена вместе с denylist
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*AccessClaims, error)
}

// JWTMiddleware : пропускает только запросы с валидным Bearer токеном
func JWTMiddleware(authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token, ok := BearerToken(request)
			if !ok {
				writeAuthError(writer, http.StatusUnauthorized, "unauthorized")
				return
			}
			authenticate(writer, request, authenticator, token, next)
		})
	}
}

// OptionalJWTMiddleware : запрос без заголовка проходит анонимно, битый токен всё равно отклоняется
func OptionalJWTMiddleware(authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.Header.Get("Authorization") == "" {
				next.ServeHTTP(writer, request)
				return
			}
			token, ok := BearerToken(request)
			if !ok {
				writeAuthError(writer, http.StatusUnauthorized, "unauthorized")
				return
			}
			authenticate(writer, request, authenticator, token, next)
		})
	}
}

func authenticate(writer http.ResponseWriter, request *http.Request, authenticator Authenticator, token string, next http.Handler) {
	claims, err := authenticator.Authenticate(request.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, apperror.ErrTokenExpired):
			writeAuthError(writer, http.StatusUnauthorized, "token expired")
		case apperror.IsUnavailable(err):
			writeAuthError(writer, http.StatusServiceUnavailable, "service unavailable")
		case errors.Is(err, apperror.ErrTokenRequired), errors.Is(err, apperror.ErrInvalidToken):
			writeAuthError(writer, http.StatusUnauthorized, "invalid token")
		default:
			writeAuthError(writer, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	ctx := context.WithValue(request.Context(), UserContextKey, claims)
	ctx = context.WithValue(ctx, TokenContextKey, token)
	next.ServeHTTP(writer, request.WithContext(ctx))
}

// BearerToken : токен из заголовка Authorization
func BearerToken(request *http.Request) (string, bool) {
	header := request.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}

func GetClaimsFromContext(ctx context.Context) (*AccessClaims, error) {
	claims, ok := ctx.Value(UserContextKey).(*AccessClaims)
	if !ok || claims == nil {
		return nil, fmt.Errorf("%w: пользователь не авторизован", apperror.ErrTokenRequired)
	}
	return claims, nil
}

// GetTokenFromContext : исходная строка токена, положенная middleware
func GetTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(TokenContextKey).(string)
	return token
}

func writeAuthError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(requestresponse.ErrorResponse{
		Error: requestresponse.ErrorDetail{
			Code: statusCode,
			Text: message,
		},
	})
}
