package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"health-tracker-server/internal/apperror"
	"health-tracker-server/internal/model"
	"health-tracker-server/internal/ports"
	"health-tracker-server/internal/security"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	minPasswordLength = 8
	// maxPasswordBytes : bcrypt не принимает пароли длиннее 72 байт
	maxPasswordBytes = 72
)

// dummyPassword : хэшируется один раз при старте, сравнение с ним выравнивает время ответа для неизвестного email
const dummyPassword = "health-tracker-timing-equalizer"

type AuthenticationService struct {
	db         ports.Database
	users      ports.UserRepository
	tokens     ports.RefreshTokenRepository
	issuer     ports.TokenIssuer
	hasher     ports.PasswordHasher
	denylist   ports.TokenDenylist
	refreshTTL time.Duration
	dummyHash  string
	now        func() time.Time
}

type AuthOption func(*AuthenticationService)

// WithDenylist : включает отзыв access токенов при logout
func WithDenylist(denylist ports.TokenDenylist) AuthOption {
	return func(s *AuthenticationService) {
		s.denylist = denylist
	}
}

func WithClock(now func() time.Time) AuthOption {
	return func(s *AuthenticationService) {
		s.now = now
	}
}

func NewAuthenticationService(
	db ports.Database,
	users ports.UserRepository,
	tokens ports.RefreshTokenRepository,
	issuer ports.TokenIssuer,
	hasher ports.PasswordHasher,
	refreshTTL time.Duration,
	opts ...AuthOption,
) (*AuthenticationService, error) {
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("[AuthService] не удалось подготовить хэш: %w", err)
	}

	s := &AuthenticationService{
		db:         db,
		users:      users,
		tokens:     tokens,
		issuer:     issuer,
		hasher:     hasher,
		refreshTTL: refreshTTL,
		dummyHash:  dummyHash,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Register : создаёт пользователя. Предварительные проверки дают понятную ошибку,
// но окончательно дубликат определяет уникальный индекс при вставке.
func (s *AuthenticationService) Register(ctx context.Context, input model.RegisterInput) (*model.PublicUser, error) {
	username := strings.TrimSpace(input.Username)
	email := normalizeEmail(input.Email)

	if username == "" || email == "" || input.Password == "" {
		return nil, apperror.NewValidation("username, email и password обязательны")
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	if err := s.ensureEmailFree(ctx, email); err != nil {
		return nil, err
	}
	if err := s.ensureUsernameFree(ctx, username); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("[AuthService] не удалось создать хэш пароля: %w", err)
	}

	created, err := s.users.CreateUser(ctx, s.db, &model.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("[AuthService] зарегистрирован пользователь", zap.String("user_id", created.ID))
	return created.Public(), nil
}

func (s *AuthenticationService) Login(ctx context.Context, input model.LoginInput) (*model.LoginResult, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, apperror.NewValidation("email и password обязательны")
	}

	user, err := s.users.FindByEmail(ctx, s.db, email)
	if err != nil {
		if errors.Is(err, apperror.ErrUserNotFound) {
			_, _ = s.hasher.Verify(input.Password, s.dummyHash)
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("[AuthService] ошибка проверки пароля: %w", err)
	}
	if !ok {
		return nil, apperror.ErrInvalidCredentials
	}

	accessToken, err := s.issuer.IssueAccessToken(subjectOf(user))
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.issuer.IssueRefreshToken()
	if err != nil {
		return nil, err
	}

	if err := s.tokens.Store(ctx, s.db, user.ID, refreshToken, s.now().Add(s.refreshTTL)); err != nil {
		return nil, err
	}

	return &model.LoginResult{
		User:         user.Public(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    s.expiresIn(),
	}, nil
}

// Refresh : ротация refresh токена. Старый токен удаляется и новый вставляется одним запросом,
// поэтому из двух параллельных запросов с одним токеном успешен только один.
func (s *AuthenticationService) Refresh(ctx context.Context, refreshToken string) (*model.RefreshResult, error) {
	if refreshToken == "" {
		return nil, apperror.NewValidation("refresh_token обязателен")
	}

	now := s.now()
	stored, err := s.tokens.Find(ctx, s.db, refreshToken, now)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, s.db, stored.UserID)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.issuer.IssueAccessToken(subjectOf(user))
	if err != nil {
		return nil, err
	}
	newRefreshToken, err := s.issuer.IssueRefreshToken()
	if err != nil {
		return nil, err
	}

	if err := s.tokens.Replace(ctx, s.db, user.ID, refreshToken, newRefreshToken, now.Add(s.refreshTTL), now); err != nil {
		return nil, err
	}

	return &model.RefreshResult{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		ExpiresIn:    s.expiresIn(),
	}, nil
}

// Logout : удаляет refresh токен, accessToken необязателен и нужен только для denylist
func (s *AuthenticationService) Logout(ctx context.Context, refreshToken, accessToken string) error {
	if refreshToken == "" {
		return apperror.NewValidation("refresh_token обязателен")
	}

	if err := s.tokens.Delete(ctx, s.db, refreshToken); err != nil {
		return err
	}

	s.revokeAccessToken(ctx, accessToken)
	return nil
}

// LogoutAllDevices : удаляет все refresh токены пользователя и возвращает их количество
func (s *AuthenticationService) LogoutAllDevices(ctx context.Context, userID, accessToken string) (int64, error) {
	if userID == "" {
		return 0, apperror.NewValidation("user id обязателен")
	}

	count, err := s.tokens.DeleteAllForUser(ctx, s.db, userID)
	if err != nil {
		return 0, err
	}

	s.revokeAccessToken(ctx, accessToken)
	zap.L().Info("[AuthService] завершены все сессии пользователя",
		zap.String("user_id", userID), zap.Int64("sessions", count))
	return count, nil
}

// Authenticate : проверка подписи и сроков, затем denylist если он включён
func (s *AuthenticationService) Authenticate(ctx context.Context, token string) (*security.AccessClaims, error) {
	claims, err := s.issuer.VerifyAccessToken(token)
	if err != nil {
		return nil, err
	}

	if s.denylist != nil {
		revoked, err := s.denylist.IsRevoked(ctx, token)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, fmt.Errorf("%w: токен отозван", apperror.ErrInvalidToken)
		}
	}

	return claims, nil
}

// revokeAccessToken : сессия уже завершена удалением refresh токена, поэтому ошибка только логируется
func (s *AuthenticationService) revokeAccessToken(ctx context.Context, accessToken string) {
	if s.denylist == nil || accessToken == "" {
		return
	}

	claims, err := s.issuer.VerifyAccessToken(accessToken)
	if err != nil {
		return
	}

	if err := s.denylist.Revoke(ctx, accessToken, s.issuer.RemainingLifetime(claims)); err != nil {
		zap.L().Warn("[AuthService] не удалось отозвать access токен",
			zap.String("user_id", claims.UserID), zap.Error(err))
	}
}

func (s *AuthenticationService) ensureEmailFree(ctx context.Context, email string) error {
	_, err := s.users.FindByEmail(ctx, s.db, email)
	switch {
	case err == nil:
		return apperror.ErrEmailAlreadyExists
	case errors.Is(err, apperror.ErrUserNotFound):
		return nil
	default:
		return err
	}
}

func (s *AuthenticationService) ensureUsernameFree(ctx context.Context, username string) error {
	_, err := s.users.FindByUsername(ctx, s.db, username)
	switch {
	case err == nil:
		return apperror.ErrUsernameAlreadyExists
	case errors.Is(err, apperror.ErrUserNotFound):
		return nil
	default:
		return err
	}
}

func (s *AuthenticationService) expiresIn() int64 {
	return int64(s.issuer.AccessTokenTTL() / time.Second)
}

func subjectOf(user *model.User) model.TokenSubject {
	return model.TokenSubject{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return apperror.NewValidation(fmt.Sprintf("пароль должен быть не короче %d символов", minPasswordLength))
	}
	if len(password) > maxPasswordBytes {
		return apperror.NewValidation(fmt.Sprintf("пароль не должен превышать %d байт", maxPasswordBytes))
	}
	return nil
}
