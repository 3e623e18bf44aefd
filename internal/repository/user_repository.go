package repository

import (
	"context"

	"health-tracker-server/internal/apperror"
	"health-tracker-server/internal/model"

	"github.com/jmoiron/sqlx"
)

const userColumns = `id, username, email, password_hash, full_name, date_of_birth, gender, height_cm, weight_kg, created_at, updated_at`

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// CreateUser : сохраняет нового пользователя, нарушение уникальности email/username возвращается как apperror
func (r *UserRepository) CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error) {
	query := `
	INSERT INTO users (id, username, email, password_hash, full_name, date_of_birth, gender, height_cm, weight_kg)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING ` + userColumns

	var created model.User
	err := sqlx.GetContext(ctx, exec, &created, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.FullName,
		user.DateOfBirth,
		user.Gender,
		user.HeightCM,
		user.WeightKG,
	)
	if err != nil {
		return nil, dbError("[UserRepo] ошибка вставки данных в БД", err, nil)
	}

	return &created, nil
}

// FindByID : ищет пользователя по id
func (r *UserRepository) FindByID(ctx context.Context, exec sqlx.ExtContext, id string) (*model.User, error) {
	return r.findOne(ctx, exec, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// FindByEmail : email ожидается уже нормализованным
func (r *UserRepository) FindByEmail(ctx context.Context, exec sqlx.ExtContext, email string) (*model.User, error) {
	return r.findOne(ctx, exec, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepository) FindByUsername(ctx context.Context, exec sqlx.ExtContext, username string) (*model.User, error) {
	return r.findOne(ctx, exec, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (r *UserRepository) findOne(ctx context.Context, exec sqlx.ExtContext, query, arg string) (*model.User, error) {
	var user model.User
	if err := sqlx.GetContext(ctx, exec, &user, query, arg); err != nil {
		return nil, dbError("[UserRepo] не удалось найти пользователя в БД", err, apperror.ErrUserNotFound)
	}
	return &user, nil
}

// UpdateProfile : перезаписывает username, email и поля профиля
func (r *UserRepository) UpdateProfile(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error) {
	query := `
		UPDATE users
		SET username = $2, email = $3, full_name = $4, date_of_birth = $5,
		    gender = $6, height_cm = $7, weight_kg = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	var updated model.User
	err := sqlx.GetContext(ctx, exec, &updated, query,
		user.ID,
		user.Username,
		user.Email,
		user.FullName,
		user.DateOfBirth,
		user.Gender,
		user.HeightCM,
		user.WeightKG,
	)
	if err != nil {
		return nil, dbError("[UserRepo] не удалось обновить пользователя", err, apperror.ErrUserNotFound)
	}

	return &updated, nil
}

// UpdatePassword : меняет пароль пользователя
func (r *UserRepository) UpdatePassword(ctx context.Context, exec sqlx.ExtContext, id, newPasswordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`

	result, err := exec.ExecContext(ctx, query, id, newPasswordHash)
	if err != nil {
		return dbError("[UserRepo] не удалось обновить пароль", err, nil)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return dbError("[UserRepo] не удалось проверить обновление пароля", err, nil)
	}
	if rowsAffected == 0 {
		return apperror.ErrUserNotFound
	}

	return nil
}
