package model

import "time"

type User struct {
	ID           string     `db:"id" json:"id"`
	Username     string     `db:"username" json:"username"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	FullName     *string    `db:"full_name" json:"full_name,omitempty"`
	DateOfBirth  *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty"`
	Gender       *string    `db:"gender" json:"gender,omitempty"`
	HeightCM     *float64   `db:"height_cm" json:"height_cm,omitempty"`
	WeightKG     *float64   `db:"weight_kg" json:"weight_kg,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// PublicUser : пользователь без хэша пароля, только он уходит наружу
type PublicUser struct {
	ID          string     `json:"id" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
	Username    string     `json:"username" example:"alice"`
	Email       string     `json:"email" example:"alice@example.com"`
	FullName    *string    `json:"full_name,omitempty" example:"Alice Liddell"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Gender      *string    `json:"gender,omitempty" example:"female"`
	HeightCM    *float64   `json:"height_cm,omitempty" example:"168"`
	WeightKG    *float64   `json:"weight_kg,omitempty" example:"61.5"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FullName:    u.FullName,
		DateOfBirth: u.DateOfBirth,
		Gender:      u.Gender,
		HeightCM:    u.HeightCM,
		WeightKG:    u.WeightKG,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// ProfileUpdate : nil поле означает "не менять"
type ProfileUpdate struct {
	Username    *string
	Email       *string
	FullName    *string
	DateOfBirth *time.Time
	Gender      *string
	HeightCM    *float64
	WeightKG    *float64
}

// Apply : переносит заданные поля на пользователя
func (p ProfileUpdate) Apply(user *User) {
	if p.Username != nil {
		user.Username = *p.Username
	}
	if p.Email != nil {
		user.Email = *p.Email
	}
	if p.FullName != nil {
		user.FullName = p.FullName
	}
	if p.DateOfBirth != nil {
		user.DateOfBirth = p.DateOfBirth
	}
	if p.Gender != nil {
		user.Gender = p.Gender
	}
	if p.HeightCM != nil {
		user.HeightCM = p.HeightCM
	}
	if p.WeightKG != nil {
		user.WeightKG = p.WeightKG
	}
}
