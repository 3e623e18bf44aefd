package requestresponse

import "health-tracker-server/internal/model"

// UserResponse : профиль пользователя
type UserResponse struct {
	Response *model.PublicUser `json:"response"`
}

// UpdateProfileRequest : отсутствующие поля не меняются
type UpdateProfileRequest struct {
	Username    *string  `json:"username,omitempty" validate:"omitempty,min=3,max=50" example:"alice"`
	Email       *string  `json:"email,omitempty" validate:"omitempty,email,max=255" example:"alice@example.com"`
	FullName    *string  `json:"full_name,omitempty" validate:"omitempty,max=255" example:"Alice Liddell"`
	DateOfBirth *string  `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02" example:"1990-04-12"`
	Gender      *string  `json:"gender,omitempty" validate:"omitempty,oneof=male female other" example:"female"`
	HeightCM    *float64 `json:"height_cm,omitempty" validate:"omitempty,gt=0,lt=300" example:"168"`
	WeightKG    *float64 `json:"weight_kg,omitempty" validate:"omitempty,gt=0,lt=700" example:"61.5"`
}

// ChangePasswordRequest : тело запроса
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required" example:"P@ssw0rd123"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72" example:"N3wP@ssw0rd"`
}

// ChangePasswordResponse : успешный ответ
type ChangePasswordResponse struct {
	Response struct {
		Updated bool `json:"updated" example:"true"`
	} `json:"response"`
}
