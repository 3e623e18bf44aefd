package handler

import (
	"errors"
	"net/http"
	"time"

	"health-tracker-server/internal/apperror"
	"health-tracker-server/internal/model"
	"health-tracker-server/internal/model/requestresponse"
	"health-tracker-server/internal/ports"
	"health-tracker-server/internal/security"
)

const tokenType = "Bearer"

type AuthenticationHandler struct {
	ports.AuthenticationService
	queryTimeout time.Duration
}

func NewAuthenticationHandler(authenticationService ports.AuthenticationService, queryTimeout time.Duration) *AuthenticationHandler {
	return &AuthenticationHandler{
		authenticationService,
		queryTimeout,
	}
}

// Register godoc
// @Summary Регистрация нового пользователя
// @Description Создаёт пользователя по username, email и паролю (не короче 8 символов)
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RegisterRequest true "Тело запроса"
// @Success 201 {object} requestresponse.RegisterResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON или поля"
// @Failure 409 {object} requestresponse.ErrorResponse "Email или username заняты"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/auth/register [post]
func (h *AuthenticationHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx, cancel := withQueryTimeout(r, h.queryTimeout)
	defer cancel()

	user, err := h.AuthenticationService.Register(ctx, model.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeResponse(w, http.StatusCreated, requestresponse.RegisterResponse{Response: user})
}

// Login godoc
// @Summary Аутентификация пользователя
// @Description Возвращает access токен (15 минут) и refresh токен (7 дней)
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Тело запроса"
// @Success 200 {object} requestresponse.LoginResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON или пустые поля"
// @Failure 401 {object} requestresponse.ErrorResponse "Неверный email или пароль"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/auth/login [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx, cancel := withQueryTimeout(r, h.queryTimeout)
	defer cancel()

	result, err := h.AuthenticationService.Login(ctx, model.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		// неизвестный email отвечает так же, как неверный пароль
		if errors.Is(err, apperror.ErrUserNotFound) {
			err = apperror.ErrInvalidCredentials
		}
		handleServiceError(w, r, err)
		return
	}

	writeResponse(w, http.StatusOK, requestresponse.LoginResponse{
		Response: requestresponse.LoginData{
			User:         result.User,
			AccessToken:  result.AccessToken,
			RefreshToken: result.RefreshToken,
			TokenType:    tokenType,
			ExpiresIn:    result.ExpiresIn,
		},
	})
}

// RefreshToken godoc
// @Summary Обновление токенов
// @Description Обменивает refresh токен на новую пару, старый refresh токен становится недействительным
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RefreshTokenRequest true "Тело запроса"
// @Success 200 {object} requestresponse.RefreshTokenResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Неверный JSON"
// @Failure 401 {object} requestresponse.ErrorResponse "Refresh токен недействителен или истёк"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/auth/refresh [post]
func (h *AuthenticationHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RefreshTokenRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx, cancel := withQueryTimeout(r, h.queryTimeout)
	defer cancel()

	tokens, err := h.AuthenticationService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, apperror.ErrUserNotFound) {
			err = apperror.ErrInvalidRefreshToken
		}
		handleServiceError(w, r, err)
		return
	}

	resp := requestresponse.RefreshTokenResponse{}
	resp.Response.AccessToken = tokens.AccessToken
	resp.Response.RefreshToken = tokens.RefreshToken
	resp.Response.TokenType = tokenType
	resp.Response.ExpiresIn = tokens.ExpiresIn

	writeResponse(w, http.StatusOK, resp)
}

// Logout godoc
// @Summary Завершение сессии
// @Description Удаляет refresh токен. Bearer токен не обязателен, действительный токен отзывается, если включён denylist.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LogoutRequest true "Тело запроса"
// @Param Authorization header string false "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.LogoutResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/auth/logout [post]
func (h *AuthenticationHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.LogoutRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx, cancel := withQueryTimeout(r, h.queryTimeout)
	defer cancel()

	// access токен не обязателен и может быть уже просрочен, учётные данные здесь это refresh токен
	accessToken, _ := security.BearerToken(r)
	if err := h.AuthenticationService.Logout(ctx, req.RefreshToken, accessToken); err != nil {
		handleServiceError(w, r, err)
		return
	}

	resp := requestresponse.LogoutResponse{}
	resp.Response.LoggedOut = true
	writeResponse(w, http.StatusOK, resp)
}

// LogoutAll godoc
// @Summary Выход на всех устройствах
// @Description Удаляет все refresh токены текущего пользователя
// @Tags Authentication
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.LogoutAllResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/auth/logout-all [post]
func (h *AuthenticationHandler) LogoutAll(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		sendErrorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	ctx, cancel := withQueryTimeout(r, h.queryTimeout)
	defer cancel()

	count, err := h.AuthenticationService.LogoutAllDevices(ctx, claims.UserID, security.GetTokenFromContext(r.Context()))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	resp := requestresponse.LogoutAllResponse{}
	resp.Response.RevokedSessions = count
	writeResponse(w, http.StatusOK, resp)
}

// GetCurrentUser godoc
// @Summary Текущий пользователь
// @Description Возвращает id, email и username из access токена
// @Tags Authentication
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.CurrentUserResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/auth/me [get]
func (h *AuthenticationHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		sendErrorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}

	resp := requestresponse.CurrentUserResponse{}
	resp.Response.ID = claims.UserID
	resp.Response.Email = claims.Email
	resp.Response.Username = claims.Username

	writeResponse(w, http.StatusOK, resp)
}

// GetCurrentUserHead godoc
// @Summary Текущий пользователь
// @Description Проверка действительности access токена без тела ответа
// @Tags Authentication
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/auth/me [head]
func (h *AuthenticationHandler) GetCurrentUserHead(w http.ResponseWriter, r *http.Request) {
	h.GetCurrentUser(w, r)
}
