// Package apperror : типизированные ошибки, которые сервисы возвращают хендлерам.
// Хендлеры сопоставляют их с HTTP статусами через errors.Is.
package apperror

import (
	"errors"
	"fmt"
)

var (
	// ошибки входных данных
	ErrValidation = errors.New("validation error")

	// ошибки пользователей
	ErrDuplicateUser         = errors.New("user already exists")
	ErrEmailAlreadyExists    = fmt.Errorf("%w: email already registered", ErrDuplicateUser)
	ErrUsernameAlreadyExists = fmt.Errorf("%w: username already taken", ErrDuplicateUser)
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")

	// ошибки токенов
	ErrTokenRequired       = errors.New("token required")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ошибки доступа к ресурсам
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")

	// инфраструктурные ошибки
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrHashing            = errors.New("hashing error")
	ErrComparison         = errors.New("comparison error")
	ErrConfiguration      = errors.New("configuration error")
	ErrInternal           = errors.New("internal error")
)

func NewValidation(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// WrapInternal скрывает исходную ошибку от errors.Is/As, оставляя её только в тексте
func WrapInternal(err error, op string) error {
	return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
}

// WrapUnavailable сохраняет исходную ошибку в цепочке
func WrapUnavailable(err error, op string) error {
	return fmt.Errorf("%w: %s: %w", ErrServiceUnavailable, op, err)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsUnavailable(err error) bool {
	return errors.Is(err, ErrServiceUnavailable)
}
