package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"health-tracker-server/internal/apperror"
	"health-tracker-server/internal/model"
	srv "health-tracker-server/internal/service"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCheckRepository struct {
	mock.Mock
}

func (m *MockCheckRepository) Create(ctx context.Context, exec sqlx.ExtContext, check *model.Check) (*model.Check, error) {
	args := m.Called(ctx, exec, check)
	if fn, ok := args.Get(0).(func(*model.Check) *model.Check); ok {
		return fn(check), args.Error(1)
	}
	if c, ok := args.Get(0).(*model.Check); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCheckRepository) FindByID(ctx context.Context, exec sqlx.ExtContext, userID, id string) (*model.Check, error) {
	args := m.Called(ctx, exec, userID, id)
	if c, ok := args.Get(0).(*model.Check); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCheckRepository) ListByUser(ctx context.Context, exec sqlx.ExtContext, userID, cursor string, limit int) ([]*model.Check, string, error) {
	args := m.Called(ctx, exec, userID, cursor, limit)
	checks, _ := args.Get(0).([]*model.Check)
	return checks, args.String(1), args.Error(2)
}

func (m *MockCheckRepository) Delete(ctx context.Context, exec sqlx.ExtContext, userID, id string) error {
	return m.Called(ctx, exec, userID, id).Error(0)
}

type MockInferenceClient struct {
	mock.Mock
}

func (m *MockInferenceClient) Predict(ctx context.Context, input model.CheckInput) (*model.Prediction, error) {
	args := m.Called(ctx, input)
	if p, ok := args.Get(0).(*model.Prediction); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func echoCreate(repo *MockCheckRepository) {
	repo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Check")).
		Return(func(check *model.Check) *model.Check {
			check.CreatedAt = time.Now()
			return check
		}, nil)
}

func TestCheckService_CreateCheck(t *testing.T) {
	ctx := context.Background()
	input := model.CheckInput{Pregnancies: 2, Glucose: 138, BloodPressure: 62, SkinThickness: 35, BMI: 33.6, DiabetesPedigree: 0.127, Age: 47}

	tests := []struct {
		name          string
		withInference bool
		prediction    *model.Prediction
		predictErr    error
		expectScore   bool
	}{
		{name: "scored", withInference: true, prediction: &model.Prediction{Probability: 0.72, Label: "high"}, expectScore: true},
		{name: "inference failure stores unscored check", withInference: true, predictErr: errors.New("timeout")},
		{name: "inference disabled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockCheckRepository)
			echoCreate(repo)

			var svc *srv.CheckService
			inference := new(MockInferenceClient)
			if tt.withInference {
				inference.On("Predict", mock.Anything, input).Return(tt.prediction, tt.predictErr)
				svc = srv.NewCheckService(&fakeDB{}, repo, inference)
			} else {
				svc = srv.NewCheckService(&fakeDB{}, repo, nil)
			}

			check, err := svc.CreateCheck(ctx, "user-1", input)
			require.NoError(t, err)
			assert.NotEmpty(t, check.ID)
			assert.Equal(t, "user-1", check.UserID)
			assert.Equal(t, input, check.CheckInput)

			if tt.expectScore {
				require.NotNil(t, check.RiskScore)
				assert.Equal(t, 0.72, *check.RiskScore)
				assert.Equal(t, "high", *check.RiskLabel)
			} else {
				assert.Nil(t, check.RiskScore)
				assert.Nil(t, check.RiskLabel)
			}

			repo.AssertExpectations(t)
			inference.AssertExpectations(t)
		})
	}
}

func TestCheckService_ScopedByUser(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCheckRepository)
	svc := srv.NewCheckService(&fakeDB{}, repo, nil)

	repo.On("FindByID", mock.Anything, mock.Anything, "user-2", "check-1").Return(nil, apperror.ErrNotFound)
	_, err := svc.GetCheck(ctx, "user-2", "check-1")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	repo.On("Delete", mock.Anything, mock.Anything, "user-2", "check-1").Return(apperror.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteCheck(ctx, "user-2", "check-1"), apperror.ErrNotFound)

	repo.On("ListByUser", mock.Anything, mock.Anything, "user-1", "", 20).
		Return([]*model.Check{{ID: "check-1", UserID: "user-1"}}, "cursor-1", nil)
	checks, next, err := svc.ListChecks(ctx, "user-1", "", 20)
	require.NoError(t, err)
	assert.Len(t, checks, 1)
	assert.Equal(t, "cursor-1", next)

	_, _, err = svc.ListChecks(ctx, "", "", 20)
	assert.ErrorIs(t, err, apperror.ErrValidation)

	repo.AssertExpectations(t)
}
