package model

import "time"

// RefreshToken : строка таблицы refresh_tokens, Token хранит SHA-256 от выданного клиенту значения
type RefreshToken struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

// TokenSubject : данные пользователя, которые попадают в access токен
type TokenSubject struct {
	ID       string
	Email    string
	Username string
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// LoginResult : ExpiresIn в секундах
type LoginResult struct {
	User         *PublicUser
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type RefreshResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}
