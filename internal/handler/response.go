package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"health-tracker-server/internal/apperror"
	"health-tracker-server/internal/model/requestresponse"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeAndValidate : разбирает JSON тело и проверяет теги validate, при ошибке сам пишет 400
func decodeAndValidate(w http.ResponseWriter, r *http.Request, target interface{}) bool {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(target); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	if err := validate.Struct(target); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "invalid request body"
	}

	parts := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func writeResponse(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Warn("[Handler] ошибка кодирования ответа", zap.Error(err))
	}
}

func sendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	writeResponse(w, statusCode, requestresponse.ErrorResponse{
		Error: requestresponse.ErrorDetail{
			Code: statusCode,
			Text: message,
		},
	})
}

// statusFromError : сопоставление типизированных ошибок с HTTP статусом и текстом для клиента
func statusFromError(err error) (int, string) {
	switch {
	case apperror.IsValidation(err):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, apperror.ErrEmailAlreadyExists):
		return http.StatusConflict, "email already registered"
	case errors.Is(err, apperror.ErrUsernameAlreadyExists):
		return http.StatusConflict, "username already taken"
	case errors.Is(err, apperror.ErrDuplicateUser):
		return http.StatusConflict, "user already exists"
	case errors.Is(err, apperror.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, apperror.ErrTokenExpired):
		return http.StatusUnauthorized, "token expired"
	case errors.Is(err, apperror.ErrInvalidRefreshToken):
		return http.StatusUnauthorized, "invalid refresh token"
	case errors.Is(err, apperror.ErrTokenRequired), errors.Is(err, apperror.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid token"
	case errors.Is(err, apperror.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, apperror.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound, "not found"
	case apperror.IsUnavailable(err):
		return http.StatusServiceUnavailable, "service unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// handleServiceError : неожиданные ошибки логируются, клиент видит только общий текст
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode, message := statusFromError(err)
	if statusCode >= http.StatusInternalServerError {
		zap.L().Error("[Handler] ошибка обработки запроса",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", statusCode),
			zap.Error(err))
	}
	sendErrorResponse(w, statusCode, message)
}

// withQueryTimeout : ограничивает время обращений к хранилищам в рамках запроса
func withQueryTimeout(r *http.Request, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), timeout)
}

// pathID : id ресурса из URL, не-UUID сразу даёт 404
func pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		sendErrorResponse(w, http.StatusNotFound, "not found")
		return "", false
	}
	return id, true
}

// pageParams : cursor и limit из query, limit <= 0 означает размер по умолчанию
func pageParams(w http.ResponseWriter, r *http.Request) (string, int, bool) {
	query := r.URL.Query()
	limit := 0
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			sendErrorResponse(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return "", 0, false
		}
		limit = parsed
	}
	return query.Get("cursor"), limit, true
}
