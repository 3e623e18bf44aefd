package security

import (
	"errors"
	"fmt"

	"health-tracker-server/internal/apperror"

	"golang.org/x/crypto/bcrypt"
)

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%w: пустой пароль", apperror.ErrHashing)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperror.ErrHashing, err)
	}

	return string(hash), nil
}

// Verify : несовпадение пароля это (false, nil), ошибка только для пустых аргументов и битого хэша
func (h *BcryptHasher) Verify(password, hash string) (bool, error) {
	if password == "" || hash == "" {
		return false, fmt.Errorf("%w: пустой пароль или хэш", apperror.ErrComparison)
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", apperror.ErrComparison, err)
	}
}
