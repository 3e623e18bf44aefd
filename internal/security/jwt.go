package security

import (
	"errors"
	"fmt"
	"time"

	"health-tracker-server/config"
	"health-tracker-server/internal/apperror"
	"health-tracker-server/internal/model"
	"health-tracker-server/internal/util"

	"github.com/golang-jwt/jwt/v5"
)

const (
	accessTokenType    = "access"
	refreshTokenLength = 64
)

type AccessClaims struct {
	UserID   string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Type     string `json:"type"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret      []byte
	issuer      string
	audience    string
	accessTTL   time.Duration
	leeway      time.Duration
	maxTokenAge time.Duration
	now         func() time.Time
}

func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{
		secret:      []byte(cfg.SecretKey),
		issuer:      cfg.Issuer,
		audience:    cfg.Audience,
		accessTTL:   cfg.AccessTokenTTL,
		leeway:      cfg.ClockSkew,
		maxTokenAge: cfg.MaxTokenAge,
		now:         time.Now,
	}
}

// WithClock : подменяет источник времени, используется в тестах
func (s *JWTService) WithClock(now func() time.Time) *JWTService {
	s.now = now
	return s
}

func (s *JWTService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}

// IssueAccessToken : подписывает HS512 токен, при одинаковых данных в пределах секунды результат одинаковый
func (s *JWTService) IssueAccessToken(subject model.TokenSubject) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("%w: не задан секрет подписи токенов", apperror.ErrConfiguration)
	}
	if subject.ID == "" || subject.Email == "" {
		return "", apperror.NewValidation("для выпуска токена нужны id и email")
	}

	now := s.now()
	claims := AccessClaims{
		UserID:   subject.ID,
		Email:    subject.Email,
		Username: subject.Username,
		Type:     accessTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(s.secret)
	if err != nil {
		return "", apperror.WrapInternal(err, "подпись access токена")
	}

	return token, nil
}

// IssueRefreshToken : непрозрачный токен, 64 случайных байта в hex
func (s *JWTService) IssueRefreshToken() (string, error) {
	token, err := util.GenerateRandomHex(refreshTokenLength)
	if err != nil {
		return "", apperror.WrapInternal(err, "генерация refresh токена")
	}
	return token, nil
}

func (s *JWTService) VerifyAccessToken(tokenStr string) (*AccessClaims, error) {
	if tokenStr == "" {
		return nil, apperror.ErrTokenRequired
	}
	if len(s.secret) == 0 {
		return nil, fmt.Errorf("%w: не задан секрет подписи токенов", apperror.ErrConfiguration)
	}

	claims := &AccessClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithLeeway(s.leeway),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", apperror.ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", apperror.ErrInvalidToken, err)
	}

	if claims.Type != accessTokenType {
		return nil, fmt.Errorf("%w: неверный тип токена %q", apperror.ErrInvalidToken, claims.Type)
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: в токене нет id пользователя", apperror.ErrInvalidToken)
	}
	if s.maxTokenAge > 0 && claims.IssuedAt != nil && s.now().Sub(claims.IssuedAt.Time) > s.maxTokenAge {
		return nil, fmt.Errorf("%w: превышен максимальный возраст токена", apperror.ErrTokenExpired)
	}

	return claims, nil
}

// RemainingLifetime : сколько токену осталось жить, 0 если уже истёк
func (s *JWTService) RemainingLifetime(claims *AccessClaims) time.Duration {
	if claims == nil || claims.ExpiresAt == nil {
		return 0
	}
	remaining := claims.ExpiresAt.Sub(s.now())
	if remaining < 0 {
		return 0
	}
	return remaining
}
