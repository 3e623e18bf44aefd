package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"health-tracker-server/internal/apperror"
	"health-tracker-server/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var checkRowColumns = []string{"id", "user_id", "pregnancies", "glucose", "blood_pressure", "skin_thickness",
	"insulin", "bmi", "diabetes_pedigree", "age", "risk_score", "risk_label", "created_at"}

func TestCheckRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCheckRepository()
	score, label := 0.72, "high"
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO checks")).
		WithArgs("c-1", "u-1", 2, 138.0, 62.0, 35.0, 0.0, 33.6, 0.127, 47, &score, &label).
		WillReturnRows(sqlmock.NewRows(checkRowColumns).
			AddRow("c-1", "u-1", 2, 138.0, 62.0, 35.0, 0.0, 33.6, 0.127, 47, score, label, now))

	created, err := repo.Create(context.Background(), db, &model.Check{
		ID:     "c-1",
		UserID: "u-1",
		CheckInput: model.CheckInput{
			Pregnancies: 2, Glucose: 138, BloodPressure: 62, SkinThickness: 35,
			BMI: 33.6, DiabetesPedigree: 0.127, Age: 47,
		},
		RiskScore: &score,
		RiskLabel: &label,
	})

	require.NoError(t, err)
	assert.Equal(t, 47, created.Age)
	assert.Equal(t, 33.6, created.BMI)
	require.NotNil(t, created.RiskScore)
	assert.Equal(t, 0.72, *created.RiskScore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckRepository_OwnerScoped(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCheckRepository()
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("FROM checks WHERE id = $1 AND user_id = $2")).
		WithArgs("c-1", "intruder").
		WillReturnRows(sqlmock.NewRows(checkRowColumns))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM checks WHERE id = $1 AND user_id = $2")).
		WithArgs("c-1", "intruder").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.FindByID(ctx, db, "intruder", "c-1")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, db, "intruder", "c-1"), apperror.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckRepository_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCheckRepository()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("FROM checks")).
		WithArgs("u-1", nil, 11).
		WillReturnRows(sqlmock.NewRows(checkRowColumns).
			AddRow("c-1", "u-1", 0, 90.0, 70.0, 20.0, 80.0, 22.0, 0.3, 30, nil, nil, now))

	checks, next, err := repo.ListByUser(context.Background(), db, "u-1", "", 10)

	require.NoError(t, err)
	require.Len(t, checks, 1)
	assert.Nil(t, checks[0].RiskScore)
	assert.Empty(t, next)
	assert.NoError(t, mock.ExpectationsWereMet())
}
