package repository

import (
	"context"
	"time"

	"health-tracker-server/internal/apperror"
	"health-tracker-server/internal/model"
	"health-tracker-server/internal/util"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// RefreshTokenRepository : в колонке token лежит SHA-256 от выданного значения
type RefreshTokenRepository struct{}

func NewRefreshTokenRepository() *RefreshTokenRepository {
	return &RefreshTokenRepository{}
}

// Store сохраняет refresh-токен пользователя
func (r *RefreshTokenRepository) Store(ctx context.Context, exec sqlx.ExtContext, userID, token string, expiresAt time.Time) error {
	query := `INSERT INTO refresh_tokens (id, user_id, token, expires_at) VALUES ($1, $2, $3, $4)`

	_, err := exec.ExecContext(ctx, query, uuid.NewString(), userID, util.HashToken(token), expiresAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperror.ErrUserNotFound
		}
		return dbError("[RefreshTokenRepo] ошибка вставки данных в БД", err, nil)
	}

	return nil
}

// Find возвращает живой токен, отсутствующий и просроченный одинаково дают ErrInvalidRefreshToken
func (r *RefreshTokenRepository) Find(ctx context.Context, exec sqlx.ExtContext, token string, now time.Time) (*model.RefreshToken, error) {
	query := `
		SELECT id, user_id, token, expires_at, created_at
		FROM refresh_tokens
		WHERE token = $1 AND expires_at > $2
	`

	var refreshToken model.RefreshToken
	if err := sqlx.GetContext(ctx, exec, &refreshToken, query, util.HashToken(token), now); err != nil {
		return nil, dbError("[RefreshTokenRepo] ошибка поиска токена", err, apperror.ErrInvalidRefreshToken)
	}

	return &refreshToken, nil
}

// Replace атомарно удаляет старый токен и вставляет новый одним запросом.
// Если старый уже удалён параллельным запросом или истёк, вставка не происходит.
func (r *RefreshTokenRepository) Replace(ctx context.Context, exec sqlx.ExtContext, userID, oldToken, newToken string, expiresAt, now time.Time) error {
	query := `
		WITH consumed AS (
			DELETE FROM refresh_tokens
			WHERE token = $1 AND user_id = $2 AND expires_at > $3
			RETURNING user_id
		)
		INSERT INTO refresh_tokens (id, user_id, token, expires_at)
		SELECT $4, user_id, $5, $6 FROM consumed
	`

	result, err := exec.ExecContext(ctx, query,
		util.HashToken(oldToken),
		userID,
		now,
		uuid.NewString(),
		util.HashToken(newToken),
		expiresAt,
	)
	if err != nil {
		return dbError("[RefreshTokenRepo] не удалось заменить токен", err, nil)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return dbError("[RefreshTokenRepo] не удалось проверить замену токена", err, nil)
	}
	if rowsAffected == 0 {
		return apperror.ErrInvalidRefreshToken
	}

	return nil
}

// Delete удаляет токен, повторное удаление даёт ErrInvalidRefreshToken
func (r *RefreshTokenRepository) Delete(ctx context.Context, exec sqlx.ExtContext, token string) error {
	result, err := exec.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE token = $1`, util.HashToken(token))
	if err != nil {
		return dbError("[RefreshTokenRepo] не удалось удалить токен", err, nil)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return dbError("[RefreshTokenRepo] не удалось проверить удаление токена", err, nil)
	}
	if rowsAffected == 0 {
		return apperror.ErrInvalidRefreshToken
	}

	return nil
}

func (r *RefreshTokenRepository) DeleteAllForUser(ctx context.Context, exec sqlx.ExtContext, userID string) (int64, error) {
	return r.deleteWhere(ctx, exec, "[RefreshTokenRepo] не удалось удалить токены пользователя",
		`DELETE FROM refresh_tokens WHERE user_id = $1`, userID)
}

func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context, exec sqlx.ExtContext, now time.Time) (int64, error) {
	return r.deleteWhere(ctx, exec, "[RefreshTokenRepo] не удалось удалить просроченные токены",
		`DELETE FROM refresh_tokens WHERE expires_at <= $1`, now)
}

func (r *RefreshTokenRepository) deleteWhere(ctx context.Context, exec sqlx.ExtContext, op, query string, arg interface{}) (int64, error) {
	result, err := exec.ExecContext(ctx, query, arg)
	if err != nil {
		return 0, dbError(op, err, nil)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, dbError(op, err, nil)
	}

	return rowsAffected, nil
}
