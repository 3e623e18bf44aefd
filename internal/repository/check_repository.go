package repository

import (
	"context"
	"time"

	"health-tracker-server/internal/apperror"
	"health-tracker-server/internal/model"

	"github.com/jmoiron/sqlx"
)

const checkColumns = `id, user_id, pregnancies, glucose, blood_pressure, skin_thickness, insulin, bmi,
	diabetes_pedigree, age, risk_score, risk_label, created_at`

type CheckRepository struct{}

func NewCheckRepository() *CheckRepository {
	return &CheckRepository{}
}

func (r *CheckRepository) Create(ctx context.Context, exec sqlx.ExtContext, check *model.Check) (*model.Check, error) {
	query := `
	INSERT INTO checks (id, user_id, pregnancies, glucose, blood_pressure, skin_thickness, insulin, bmi,
		diabetes_pedigree, age, risk_score, risk_label)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	RETURNING ` + checkColumns

	var created model.Check
	err := sqlx.GetContext(ctx, exec, &created, query,
		check.ID,
		check.UserID,
		check.Pregnancies,
		check.Glucose,
		check.BloodPressure,
		check.SkinThickness,
		check.Insulin,
		check.BMI,
		check.DiabetesPedigree,
		check.Age,
		check.RiskScore,
		check.RiskLabel,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperror.ErrUserNotFound
		}
		return nil, dbError("[CheckRepo] ошибка вставки записи", err, nil)
	}

	return &created, nil
}

// FindByID : чужая запись неотличима от отсутствующей
func (r *CheckRepository) FindByID(ctx context.Context, exec sqlx.ExtContext, userID, id string) (*model.Check, error) {
	var check model.Check
	err := sqlx.GetContext(ctx, exec, &check,
		`SELECT `+checkColumns+` FROM checks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return nil, dbError("[CheckRepo] не удалось найти запись", err, apperror.ErrNotFound)
	}
	return &check, nil
}

func (r *CheckRepository) ListByUser(ctx context.Context, exec sqlx.ExtContext, userID, cursor string, limit int) ([]*model.Check, string, error) {
	query := `
        SELECT ` + checkColumns + `
        FROM checks
        WHERE user_id = $1 AND ($2::timestamptz IS NULL OR created_at < $2)
        ORDER BY created_at DESC, id DESC
        LIMIT $3
    `

	cursorTime, err := parseCursor(cursor)
	if err != nil {
		return nil, "", err
	}
	limit = normalizeLimit(limit)

	checks := []*model.Check{}
	if err := sqlx.SelectContext(ctx, exec, &checks, query, userID, cursorTime, limit+1); err != nil {
		return nil, "", dbError("[CheckRepo] не удалось получить список записей", err, nil)
	}

	checks, next := page(checks, limit, func(c *model.Check) time.Time { return c.CreatedAt })
	return checks, next, nil
}

func (r *CheckRepository) Delete(ctx context.Context, exec sqlx.ExtContext, userID, id string) error {
	result, err := exec.ExecContext(ctx, `DELETE FROM checks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return dbError("[CheckRepo] не удалось удалить запись", err, nil)
	}
	return expectAffected(result, "[CheckRepo] не удалось проверить удаление записи")
}
