package ports

import (
	"context"

	"health-tracker-server/internal/model"
	"health-tracker-server/internal/security"
)

type AuthenticationService interface {
	Register(ctx context.Context, input model.RegisterInput) (*model.PublicUser, error)
	Login(ctx context.Context, input model.LoginInput) (*model.LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*model.RefreshResult, error)
	Logout(ctx context.Context, refreshToken, accessToken string) error
	LogoutAllDevices(ctx context.Context, userID, accessToken string) (int64, error)
	Authenticate(ctx context.Context, token string) (*security.AccessClaims, error)
}
