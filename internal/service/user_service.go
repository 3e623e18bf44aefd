package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"health-tracker-server/internal/apperror"
	"health-tracker-server/internal/model"
	"health-tracker-server/internal/ports"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type UserService struct {
	db     ports.Database
	users  ports.UserRepository
	tokens ports.RefreshTokenRepository
	hasher ports.PasswordHasher
}

func NewUserService(
	db ports.Database,
	users ports.UserRepository,
	tokens ports.RefreshTokenRepository,
	hasher ports.PasswordHasher,
) *UserService {
	return &UserService{
		db:     db,
		users:  users,
		tokens: tokens,
		hasher: hasher,
	}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*model.PublicUser, error) {
	if userID == "" {
		return nil, apperror.NewValidation("user id обязателен")
	}

	user, err := s.users.FindByID(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

// UpdateProfile : смена email и username проверяется на занятость так же, как при регистрации
func (s *UserService) UpdateProfile(ctx context.Context, userID string, update model.ProfileUpdate) (*model.PublicUser, error) {
	if userID == "" {
		return nil, apperror.NewValidation("user id обязателен")
	}

	user, err := s.users.FindByID(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}

	if update.Email != nil {
		email := normalizeEmail(*update.Email)
		if email == "" {
			return nil, apperror.NewValidation("email не может быть пустым")
		}
		if email != user.Email {
			if err := s.checkFree(ctx, s.users.FindByEmail, email, apperror.ErrEmailAlreadyExists); err != nil {
				return nil, err
			}
		}
		update.Email = &email
	}

	if update.Username != nil {
		username := strings.TrimSpace(*update.Username)
		if username == "" {
			return nil, apperror.NewValidation("username не может быть пустым")
		}
		if username != user.Username {
			if err := s.checkFree(ctx, s.users.FindByUsername, username, apperror.ErrUsernameAlreadyExists); err != nil {
				return nil, err
			}
		}
		update.Username = &username
	}

	update.Apply(user)

	updated, err := s.users.UpdateProfile(ctx, s.db, user)
	if err != nil {
		return nil, err
	}
	return updated.Public(), nil
}

// ChangePassword : новый хэш и удаление всех refresh токенов в одной транзакции,
// после смены пароля пользователь заново входит на всех устройствах
func (s *UserService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if userID == "" || currentPassword == "" || newPassword == "" {
		return apperror.NewValidation("текущий и новый пароль обязательны")
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	user, err := s.users.FindByID(ctx, s.db, userID)
	if err != nil {
		return err
	}

	ok, err := s.hasher.Verify(currentPassword, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("[UserService] ошибка проверки пароля: %w", err)
	}
	if !ok {
		return apperror.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("[UserService] не удалось создать хэш пароля: %w", err)
	}

	var revoked int64
	err = s.db.WithTx(ctx, func(ctx context.Context, tx sqlx.ExtContext) error {
		if err := s.users.UpdatePassword(ctx, tx, userID, hash); err != nil {
			return err
		}
		revoked, err = s.tokens.DeleteAllForUser(ctx, tx, userID)
		return err
	})
	if err != nil {
		return err
	}

	zap.L().Info("[UserService] пароль изменён", zap.String("user_id", userID), zap.Int64("revoked_sessions", revoked))
	return nil
}

type findUserFunc func(ctx context.Context, exec sqlx.ExtContext, value string) (*model.User, error)

func (s *UserService) checkFree(ctx context.Context, find findUserFunc, value string, taken error) error {
	_, err := find(ctx, s.db, value)
	switch {
	case err == nil:
		return taken
	case errors.Is(err, apperror.ErrUserNotFound):
		return nil
	default:
		return err
	}
}
