package dto

import (
	"github.com/google/uuid"

	"roam/infras/jwt"
	userModel "roam/internal/domains/user/model"
	"roam/shared/constant"
	gModel "roam/shared/model"
	"roam/shared/timezone"
)

type RegisterRequest struct {
	Email     string  `json:"email"                validate:"required,email"`
	Password  string  `json:"password"             validate:"required,min=8"`
	FullName  *string `json:"full_name,omitempty"`
	BirthDate *string `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender    *string `json:"gender,omitempty"     validate:"omitempty,oneof=male female other"`
	Phone     *string `json:"phone,omitempty"`
}

// ToUserModel always stamps the user role. Role escalation goes through
// the admin user endpoint.
func (r *RegisterRequest) ToUserModel(username string, hashedPassword string) userModel.User {
	return userModel.User{
		ID:        uuid.NewString(),
		Email:     r.Email,
		Password:  hashedPassword,
		Role:      constant.RoleUser,
		FullName:  r.FullName,
		BirthDate: r.BirthDate,
		Gender:    r.Gender,
		Phone:     r.Phone,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password" validate:"required,min=8"`
}
