package service_test

import (
	"context"
	"sync"
	"time"

	"health-tracker-server/config"
	"health-tracker-server/internal/apperror"
	"health-tracker-server/internal/model"
	"health-tracker-server/internal/security"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

// fakeDB : транзакция просто вызывает fn, репозитории в тестах exec не используют
type fakeDB struct {
	sqlx.ExtContext
	txCalls int
}

func (f *fakeDB) WithTx(ctx context.Context, fn func(ctx context.Context, tx sqlx.ExtContext) error) error {
	f.txCalls++
	return fn(ctx, f)
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type memoryUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: map[string]*model.User{}}
}

func (r *memoryUserRepo) CreateUser(_ context.Context, _ sqlx.ExtContext, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, apperror.ErrEmailAlreadyExists
		}
		if existing.Username == user.Username {
			return nil, apperror.ErrUsernameAlreadyExists
		}
	}
	stored := *user
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.users[user.ID] = &stored
	created := stored
	return &created, nil
}

func (r *memoryUserRepo) find(match func(*model.User) bool) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if match(user) {
			found := *user
			return &found, nil
		}
	}
	return nil, apperror.ErrUserNotFound
}

func (r *memoryUserRepo) FindByID(_ context.Context, _ sqlx.ExtContext, id string) (*model.User, error) {
	return r.find(func(u *model.User) bool { return u.ID == id })
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, _ sqlx.ExtContext, email string) (*model.User, error) {
	return r.find(func(u *model.User) bool { return u.Email == email })
}

func (r *memoryUserRepo) FindByUsername(_ context.Context, _ sqlx.ExtContext, username string) (*model.User, error) {
	return r.find(func(u *model.User) bool { return u.Username == username })
}

func (r *memoryUserRepo) UpdateProfile(_ context.Context, _ sqlx.ExtContext, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return nil, apperror.ErrUserNotFound
	}
	stored := *user
	r.users[user.ID] = &stored
	updated := stored
	return &updated, nil
}

func (r *memoryUserRepo) UpdatePassword(_ context.Context, _ sqlx.ExtContext, id, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return apperror.ErrUserNotFound
	}
	user.PasswordHash = hash
	return nil
}

func (r *memoryUserRepo) remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
}

type storedToken struct {
	userID    string
	expiresAt time.Time
}

// memoryTokenRepo : Replace под мьютексом повторяет атомарность одного SQL запроса
type memoryTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]storedToken
}

func newMemoryTokenRepo() *memoryTokenRepo {
	return &memoryTokenRepo{tokens: map[string]storedToken{}}
}

func (r *memoryTokenRepo) Store(_ context.Context, _ sqlx.ExtContext, userID, token string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token] = storedToken{userID: userID, expiresAt: expiresAt}
	return nil
}

func (r *memoryTokenRepo) Find(_ context.Context, _ sqlx.ExtContext, token string, now time.Time) (*model.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.tokens[token]
	if !ok || !stored.expiresAt.After(now) {
		return nil, apperror.ErrInvalidRefreshToken
	}
	return &model.RefreshToken{UserID: stored.userID, Token: token, ExpiresAt: stored.expiresAt}, nil
}

func (r *memoryTokenRepo) Replace(_ context.Context, _ sqlx.ExtContext, userID, oldToken, newToken string, expiresAt, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.tokens[oldToken]
	if !ok || stored.userID != userID || !stored.expiresAt.After(now) {
		return apperror.ErrInvalidRefreshToken
	}
	delete(r.tokens, oldToken)
	r.tokens[newToken] = storedToken{userID: userID, expiresAt: expiresAt}
	return nil
}

func (r *memoryTokenRepo) Delete(_ context.Context, _ sqlx.ExtContext, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tokens[token]; !ok {
		return apperror.ErrInvalidRefreshToken
	}
	delete(r.tokens, token)
	return nil
}

func (r *memoryTokenRepo) DeleteAllForUser(_ context.Context, _ sqlx.ExtContext, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for token, stored := range r.tokens {
		if stored.userID == userID {
			delete(r.tokens, token)
			count++
		}
	}
	return count, nil
}

func (r *memoryTokenRepo) DeleteExpired(_ context.Context, _ sqlx.ExtContext, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for token, stored := range r.tokens {
		if !stored.expiresAt.After(now) {
			delete(r.tokens, token)
			count++
		}
	}
	return count, nil
}

func (r *memoryTokenRepo) countFor(userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, stored := range r.tokens {
		if stored.userID == userID {
			count++
		}
	}
	return count
}

type memoryDenylist struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
}

func newMemoryDenylist() *memoryDenylist {
	return &memoryDenylist{revoked: map[string]time.Duration{}}
}

func (d *memoryDenylist) Revoke(_ context.Context, token string, ttl time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.revoked[token] = ttl
	return nil
}

func (d *memoryDenylist) IsRevoked(_ context.Context, token string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.revoked[token]
	return ok, nil
}

type authFixture struct {
	db     *fakeDB
	users  *memoryUserRepo
	tokens *memoryTokenRepo
	jwt    *security.JWTService
	hasher *security.BcryptHasher
	clock  *testClock
}

func newAuthFixture() *authFixture {
	clock := newTestClock()
	return &authFixture{
		db:     &fakeDB{},
		users:  newMemoryUserRepo(),
		tokens: newMemoryTokenRepo(),
		jwt: security.NewJWTService(&config.JWTConfig{
			SecretKey:      "test-secret",
			Issuer:         "health-tracker-server",
			Audience:       "health-tracker-client",
			AccessTokenTTL: 15 * time.Minute,
			ClockSkew:      15 * time.Second,
			MaxTokenAge:    4 * time.Hour,
		}).WithClock(clock.Now),
		hasher: security.NewBcryptHasher(bcrypt.MinCost),
		clock:  clock,
	}
}
