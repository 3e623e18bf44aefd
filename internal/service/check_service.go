package service

import (
	"context"

	"health-tracker-server/internal/apperror"
	"health-tracker-server/internal/model"
	"health-tracker-server/internal/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CheckService struct {
	db        ports.Database
	checks    ports.CheckRepository
	inference ports.InferenceClient
}

// NewCheckService : inference может быть nil, тогда записи сохраняются без оценки
func NewCheckService(db ports.Database, checks ports.CheckRepository, inference ports.InferenceClient) *CheckService {
	return &CheckService{
		db:        db,
		checks:    checks,
		inference: inference,
	}
}

// CreateCheck : сбой сервиса оценки не мешает сохранить запись
func (s *CheckService) CreateCheck(ctx context.Context, userID string, input model.CheckInput) (*model.Check, error) {
	if userID == "" {
		return nil, apperror.NewValidation("user id обязателен")
	}

	check := &model.Check{
		ID:         uuid.NewString(),
		UserID:     userID,
		CheckInput: input,
	}

	if s.inference != nil {
		prediction, err := s.inference.Predict(ctx, input)
		if err != nil {
			zap.L().Warn("[CheckService] оценка риска недоступна, запись сохраняется без неё",
				zap.String("user_id", userID), zap.Error(err))
		} else {
			check.RiskScore = &prediction.Probability
			check.RiskLabel = &prediction.Label
		}
	}

	return s.checks.Create(ctx, s.db, check)
}

func (s *CheckService) ListChecks(ctx context.Context, userID, cursor string, limit int) ([]*model.Check, string, error) {
	if userID == "" {
		return nil, "", apperror.NewValidation("user id обязателен")
	}
	return s.checks.ListByUser(ctx, s.db, userID, cursor, limit)
}

func (s *CheckService) GetCheck(ctx context.Context, userID, id string) (*model.Check, error) {
	if userID == "" {
		return nil, apperror.NewValidation("user id обязателен")
	}
	return s.checks.FindByID(ctx, s.db, userID, id)
}

func (s *CheckService) DeleteCheck(ctx context.Context, userID, id string) error {
	if userID == "" {
		return apperror.NewValidation("user id обязателен")
	}
	return s.checks.Delete(ctx, s.db, userID, id)
}
