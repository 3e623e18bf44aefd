package requestresponse

import "health-tracker-server/internal/model"

// RegisterRequest : тело запроса регистрации
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50" example:"alice"`
	Email    string `json:"email" validate:"required,email,max=255" example:"alice@example.com"`
	Password string `json:"password" validate:"required,min=8,max=72" example:"P@ssw0rd123"`
}

// RegisterResponse : созданный пользователь
type RegisterResponse struct {
	Response *model.PublicUser `json:"response"`
}

// LoginRequest : тело запроса на аутентификацию
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"P@ssw0rd123"`
}

type LoginData struct {
	User         *model.PublicUser `json:"user"`
	AccessToken  string            `json:"access_token" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string            `json:"refresh_token" example:"9f2c0d..."`
	TokenType    string            `json:"token_type" example:"Bearer"`
	ExpiresIn    int64             `json:"expires_in" example:"900"`
}

// LoginResponse : ответ на успешную аутентификацию
type LoginResponse struct {
	Response LoginData `json:"response"`
}

// RefreshTokenRequest : запрос на обновление пары токенов
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required" example:"9f2c0d..."`
}

// RefreshTokenResponse : ответ на успешный запрос
type RefreshTokenResponse struct {
	Response struct {
		AccessToken  string `json:"access_token" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
		RefreshToken string `json:"refresh_token" example:"4ab1ee..."`
		TokenType    string `json:"token_type" example:"Bearer"`
		ExpiresIn    int64  `json:"expires_in" example:"900"`
	} `json:"response"`
}

// LogoutRequest : refresh токен завершаемой сессии
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required" example:"9f2c0d..."`
}

// LogoutResponse : ответ на завершение сессии
type LogoutResponse struct {
	Response struct {
		LoggedOut bool `json:"logged_out" example:"true"`
	} `json:"response"`
}

// LogoutAllResponse : количество завершённых сессий
type LogoutAllResponse struct {
	Response struct {
		RevokedSessions int64 `json:"revoked_sessions" example:"3"`
	} `json:"response"`
}

// CurrentUserResponse : информация о текущем пользователе из access токена
type CurrentUserResponse struct {
	Response struct {
		ID       string `json:"id" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
		Email    string `json:"email" example:"alice@example.com"`
		Username string `json:"username" example:"alice"`
	} `json:"response"`
}
