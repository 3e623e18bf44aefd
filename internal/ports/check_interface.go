package ports

import (
	"context"

	"health-tracker-server/internal/model"

	"github.com/jmoiron/sqlx"
)

type CheckRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, check *model.Check) (*model.Check, error)
	FindByID(ctx context.Context, exec sqlx.ExtContext, userID, id string) (*model.Check, error)
	ListByUser(ctx context.Context, exec sqlx.ExtContext, userID, cursor string, limit int) ([]*model.Check, string, error)
	Delete(ctx context.Context, exec sqlx.ExtContext, userID, id string) error
}

// InferenceClient : внешний сервис оценки риска
type InferenceClient interface {
	Predict(ctx context.Context, input model.CheckInput) (*model.Prediction, error)
}

type CheckService interface {
	CreateCheck(ctx context.Context, userID string, input model.CheckInput) (*model.Check, error)
	ListChecks(ctx context.Context, userID, cursor string, limit int) ([]*model.Check, string, error)
	GetCheck(ctx context.Context, userID, id string) (*model.Check, error)
	DeleteCheck(ctx context.Context, userID, id string) error
}
