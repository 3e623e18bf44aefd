package handler

import (
	"net/http"
	"time"

	"health-tracker-server/internal/model"
	"health-tracker-server/internal/model/requestresponse"
	"health-tracker-server/internal/ports"
	"health-tracker-server/internal/security"
)

const dateLayout = "2006-01-02"

type UserHandler struct {
	ports.UserService
	queryTimeout time.Duration
}

func NewUserHandler(userService ports.UserService, queryTimeout time.Duration) *UserHandler {
	return &UserHandler{userService, queryTimeout}
}

// GetProfile godoc
// @Summary Профиль текущего пользователя
// @Tags Users
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.UserResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/users/me [get]
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireClaims(w, r)
	if !ok {
		return
	}

	ctx, cancel := withQueryTimeout(r, h.queryTimeout)
	defer cancel()

	user, err := h.UserService.GetProfile(ctx, claims.UserID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeResponse(w, http.StatusOK, requestresponse.UserResponse{Response: user})
}

// UpdateProfile godoc
// @Summary Обновление профиля
// @Description Меняет только переданные поля. Email и username проверяются на занятость.
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.UpdateProfileRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.UserResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 409 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/users/me [put]
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireClaims(w, r)
	if !ok {
		return
	}

	var req requestresponse.UpdateProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	update := model.ProfileUpdate{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Gender:   req.Gender,
		HeightCM: req.HeightCM,
		WeightKG: req.WeightKG,
	}
	if req.DateOfBirth != nil {
		// формат уже проверен тегом datetime
		dob, _ := time.Parse(dateLayout, *req.DateOfBirth)
		update.DateOfBirth = &dob
	}

	ctx, cancel := withQueryTimeout(r, h.queryTimeout)
	defer cancel()

	user, err := h.UserService.UpdateProfile(ctx, claims.UserID, update)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeResponse(w, http.StatusOK, requestresponse.UserResponse{Response: user})
}

// ChangePassword godoc
// @Summary Смена пароля
// @Description После смены пароля все refresh токены пользователя удаляются
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.ChangePasswordRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ChangePasswordResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/users/me/password [put]
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireClaims(w, r)
	if !ok {
		return
	}

	var req requestresponse.ChangePasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx, cancel := withQueryTimeout(r, h.queryTimeout)
	defer cancel()

	if err := h.UserService.ChangePassword(ctx, claims.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		handleServiceError(w, r, err)
		return
	}

	resp := requestresponse.ChangePasswordResponse{}
	resp.Response.Updated = true
	writeResponse(w, http.StatusOK, resp)
}

// requireClaims : claims из контекста, без них пишет 401
func requireClaims(w http.ResponseWriter, r *http.Request) (*security.AccessClaims, bool) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		sendErrorResponse(w, http.StatusUnauthorized, "unauthorized")
		return nil, false
	}
	return claims, true
}

// viewerID : id пользователя при необязательной аутентификации, пустой для анонима
func viewerID(r *http.Request) string {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		return ""
	}
	return claims.UserID
}
