package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"health-tracker-server/internal/apperror"
	"health-tracker-server/internal/model"
	"health-tracker-server/internal/model/requestresponse"
	"health-tracker-server/internal/security"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	validToken = "valid-token"
	aliceID    = "b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, input model.RegisterInput) (*model.PublicUser, error) {
	args := m.Called(ctx, input)
	if u, ok := args.Get(0).(*model.PublicUser); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, input model.LoginInput) (*model.LoginResult, error) {
	args := m.Called(ctx, input)
	if res, ok := args.Get(0).(*model.LoginResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*model.RefreshResult, error) {
	args := m.Called(ctx, refreshToken)
	if res, ok := args.Get(0).(*model.RefreshResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken, accessToken string) error {
	return m.Called(ctx, refreshToken, accessToken).Error(0)
}

func (m *MockAuthService) LogoutAllDevices(ctx context.Context, userID, accessToken string) (int64, error) {
	args := m.Called(ctx, userID, accessToken)
	return args.Get(0).(int64), args.Error(1)
}

// Authenticate : принимает только validToken, остальное считается поддельным
func (m *MockAuthService) Authenticate(_ context.Context, token string) (*security.AccessClaims, error) {
	if token != validToken {
		return nil, apperror.ErrInvalidToken
	}
	return &security.AccessClaims{UserID: aliceID, Email: "a@x.com", Username: "alice", Type: "access"}, nil
}

func newAuthRouter(auth *MockAuthService) *chi.Mux {
	h := NewAuthenticationHandler(auth, time.Second)
	r := chi.NewRouter()
	r.Post("/api/auth/register", h.Register)
	r.Post("/api/auth/login", h.Login)
	r.Post("/api/auth/refresh", h.RefreshToken)
	r.Post("/api/auth/logout", h.Logout)
	r.Group(func(r chi.Router) {
		r.Use(security.JWTMiddleware(auth))
		r.Post("/api/auth/logout-all", h.LogoutAll)
		r.Get("/api/auth/me", h.GetCurrentUser)
		r.Head("/api/auth/me", h.GetCurrentUserHead)
	})
	return r
}

func doRequest(t *testing.T, router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) requestresponse.ErrorDetail {
	t.Helper()
	var resp requestresponse.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, rec.Code, resp.Error.Code)
	return resp.Error
}

func TestAuthenticationHandler_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(m *MockAuthService)
		wantStatus int
		wantText   string
	}{
		{
			name: "created",
			body: `{"username":"alice","email":"a@x.com","password":"password123"}`,
			setupMocks: func(m *MockAuthService) {
				m.On("Register", mock.Anything, model.RegisterInput{Username: "alice", Email: "a@x.com", Password: "password123"}).
					Return(&model.PublicUser{ID: aliceID, Username: "alice", Email: "a@x.com"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "broken json",
			body:       `{"username":`,
			wantStatus: http.StatusBadRequest,
			wantText:   "invalid request body",
		},
		{
			name:       "short password",
			body:       `{"username":"alice","email":"a@x.com","password":"short"}`,
			wantStatus: http.StatusBadRequest,
			wantText:   "password: min=8",
		},
		{
			name:       "invalid email",
			body:       `{"username":"alice","email":"not-an-email","password":"password123"}`,
			wantStatus: http.StatusBadRequest,
			wantText:   "email: email",
		},
		{
			name: "email taken",
			body: `{"username":"alice","email":"a@x.com","password":"password123"}`,
			setupMocks: func(m *MockAuthService) {
				m.On("Register", mock.Anything, mock.Anything).Return(nil, apperror.ErrEmailAlreadyExists)
			},
			wantStatus: http.StatusConflict,
			wantText:   "email already registered",
		},
		{
			name: "database down",
			body: `{"username":"alice","email":"a@x.com","password":"password123"}`,
			setupMocks: func(m *MockAuthService) {
				m.On("Register", mock.Anything, mock.Anything).
					Return(nil, apperror.WrapUnavailable(errors.New("dial tcp"), "find user"))
			},
			wantStatus: http.StatusServiceUnavailable,
			wantText:   "service unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := new(MockAuthService)
			if tt.setupMocks != nil {
				tt.setupMocks(auth)
			}

			rec := doRequest(t, newAuthRouter(auth), http.MethodPost, "/api/auth/register", tt.body, "")
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusCreated {
				var resp requestresponse.RegisterResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, aliceID, resp.Response.ID)
				assert.NotContains(t, rec.Body.String(), "password")
			} else {
				assert.Contains(t, decodeError(t, rec).Text, tt.wantText)
			}
			auth.AssertExpectations(t)
		})
	}
}

func TestAuthenticationHandler_Login(t *testing.T) {
	t.Run("returns token pair", func(t *testing.T) {
		auth := new(MockAuthService)
		auth.On("Login", mock.Anything, model.LoginInput{Email: "a@x.com", Password: "password123"}).
			Return(&model.LoginResult{
				User:         &model.PublicUser{ID: aliceID, Email: "a@x.com"},
				AccessToken:  "access",
				RefreshToken: "refresh",
				ExpiresIn:    900,
			}, nil)

		rec := doRequest(t, newAuthRouter(auth), http.MethodPost, "/api/auth/login", `{"email":"a@x.com","password":"password123"}`, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp requestresponse.LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "access", resp.Response.AccessToken)
		assert.Equal(t, "refresh", resp.Response.RefreshToken)
		assert.Equal(t, "Bearer", resp.Response.TokenType)
		assert.Equal(t, int64(900), resp.Response.ExpiresIn)
	})

	t.Run("unknown email looks like wrong password", func(t *testing.T) {
		unknown := new(MockAuthService)
		unknown.On("Login", mock.Anything, mock.Anything).Return(nil, apperror.ErrUserNotFound)
		wrong := new(MockAuthService)
		wrong.On("Login", mock.Anything, mock.Anything).Return(nil, apperror.ErrInvalidCredentials)

		body := `{"email":"a@x.com","password":"password123"}`
		recUnknown := doRequest(t, newAuthRouter(unknown), http.MethodPost, "/api/auth/login", body, "")
		recWrong := doRequest(t, newAuthRouter(wrong), http.MethodPost, "/api/auth/login", body, "")

		assert.Equal(t, http.StatusUnauthorized, recUnknown.Code)
		assert.Equal(t, recWrong.Code, recUnknown.Code)
		assert.Equal(t, recWrong.Body.String(), recUnknown.Body.String())
	})
}

func TestAuthenticationHandler_Refresh(t *testing.T) {
	auth := new(MockAuthService)
	auth.On("Refresh", mock.Anything, "stale").Return(nil, apperror.ErrInvalidRefreshToken)
	auth.On("Refresh", mock.Anything, "orphan").Return(nil, apperror.ErrUserNotFound)
	auth.On("Refresh", mock.Anything, "good").
		Return(&model.RefreshResult{AccessToken: "a2", RefreshToken: "r2", ExpiresIn: 900}, nil)
	router := newAuthRouter(auth)

	rec := doRequest(t, router, http.MethodPost, "/api/auth/refresh", `{"refresh_token":"stale"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid refresh token", decodeError(t, rec).Text)

	rec = doRequest(t, router, http.MethodPost, "/api/auth/refresh", `{"refresh_token":"orphan"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/auth/refresh", `{}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/auth/refresh", `{"refresh_token":"good"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp requestresponse.RefreshTokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "a2", resp.Response.AccessToken)
	assert.Equal(t, "r2", resp.Response.RefreshToken)
}

func TestAuthenticationHandler_Logout(t *testing.T) {
	auth := new(MockAuthService)
	auth.On("Logout", mock.Anything, "rt-1", validToken).Return(nil)
	auth.On("Logout", mock.Anything, "rt-2", "").Return(apperror.ErrInvalidRefreshToken)
	auth.On("Logout", mock.Anything, "rt-3", "expired-access-token").Return(nil)
	router := newAuthRouter(auth)

	rec := doRequest(t, router, http.MethodPost, "/api/auth/logout", `{"refresh_token":"rt-1"}`, validToken)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp requestresponse.LogoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Response.LoggedOut)

	rec = doRequest(t, router, http.MethodPost, "/api/auth/logout", `{"refresh_token":"rt-2"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// просроченный access токен не мешает завершить сессию по refresh токену
	rec = doRequest(t, router, http.MethodPost, "/api/auth/logout", `{"refresh_token":"rt-3"}`, "expired-access-token")
	assert.Equal(t, http.StatusOK, rec.Code)

	auth.AssertExpectations(t)
}

func TestAuthenticationHandler_LogoutAll(t *testing.T) {
	auth := new(MockAuthService)
	auth.On("LogoutAllDevices", mock.Anything, aliceID, validToken).Return(int64(3), nil)
	router := newAuthRouter(auth)

	rec := doRequest(t, router, http.MethodPost, "/api/auth/logout-all", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/auth/logout-all", "", validToken)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp requestresponse.LogoutAllResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Response.RevokedSessions)
}

func TestAuthenticationHandler_Me(t *testing.T) {
	router := newAuthRouter(new(MockAuthService))

	rec := doRequest(t, router, http.MethodGet, "/api/auth/me", "", validToken)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp requestresponse.CurrentUserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, aliceID, resp.Response.ID)
	assert.Equal(t, "a@x.com", resp.Response.Email)

	rec = doRequest(t, router, http.MethodHead, "/api/auth/me", "", validToken)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = doRequest(t, router, http.MethodGet, "/api/auth/me", "", "forged")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{apperror.NewValidation("bad"), http.StatusBadRequest},
		{apperror.ErrUsernameAlreadyExists, http.StatusConflict},
		{apperror.ErrInvalidCredentials, http.StatusUnauthorized},
		{apperror.ErrTokenExpired, http.StatusUnauthorized},
		{apperror.ErrForbidden, http.StatusForbidden},
		{apperror.ErrUserNotFound, http.StatusNotFound},
		{apperror.ErrNotFound, http.StatusNotFound},
		{apperror.WrapUnavailable(errors.New("x"), "op"), http.StatusServiceUnavailable},
		{apperror.WrapInternal(errors.New("secret detail"), "op"), http.StatusInternalServerError},
		{apperror.ErrHashing, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		status, text := statusFromError(tt.err)
		assert.Equal(t, tt.want, status, tt.err.Error())
		assert.False(t, strings.Contains(text, "secret detail"))
	}
}
