package ports

import (
	"context"
	"time"

	"health-tracker-server/internal/model"
	"health-tracker-server/internal/security"

	"github.com/jmoiron/sqlx"
)

type TokenIssuer interface {
	IssueAccessToken(subject model.TokenSubject) (string, error)
	IssueRefreshToken() (string, error)
	VerifyAccessToken(token string) (*security.AccessClaims, error)
	RemainingLifetime(claims *security.AccessClaims) time.Duration
	AccessTokenTTL() time.Duration
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) (bool, error)
}

// RefreshTokenRepository : принимает и возвращает исходные значения токенов, хэширование внутри
type RefreshTokenRepository interface {
	Store(ctx context.Context, exec sqlx.ExtContext, userID, token string, expiresAt time.Time) error
	Find(ctx context.Context, exec sqlx.ExtContext, token string, now time.Time) (*model.RefreshToken, error)
	Replace(ctx context.Context, exec sqlx.ExtContext, userID, oldToken, newToken string, expiresAt, now time.Time) error
	Delete(ctx context.Context, exec sqlx.ExtContext, token string) error
	DeleteAllForUser(ctx context.Context, exec sqlx.ExtContext, userID string) (int64, error)
	DeleteExpired(ctx context.Context, exec sqlx.ExtContext, now time.Time) (int64, error)
}

// TokenDenylist : отозванные до истечения срока access токены
type TokenDenylist interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
