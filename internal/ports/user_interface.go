package ports

import (
	"context"

	"health-tracker-server/internal/model"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error)
	FindByID(ctx context.Context, exec sqlx.ExtContext, id string) (*model.User, error)
	FindByEmail(ctx context.Context, exec sqlx.ExtContext, email string) (*model.User, error)
	FindByUsername(ctx context.Context, exec sqlx.ExtContext, username string) (*model.User, error)
	UpdateProfile(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error)
	UpdatePassword(ctx context.Context, exec sqlx.ExtContext, id, newPasswordHash string) error
}

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*model.PublicUser, error)
	UpdateProfile(ctx context.Context, userID string, update model.ProfileUpdate) (*model.PublicUser, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}
