package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roam/infras/jwt"
	"roam/internal/domains/auth/model/dto"
	"roam/shared/constant"
)

func TestRegisterRequest_ToUserModel(t *testing.T) {
	fullName := "Test User"

	req := dto.RegisterRequest{
		Email:    "new@example.com",
		Password: "password123",
		FullName: &fullName,
	}

	user := req.ToUserModel(constant.ContextGuest, "hashed-password")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, "hashed-password", user.Password)
	assert.Equal(t, &fullName, user.FullName)
	assert.Equal(t, constant.ContextGuest, user.CreatedBy)
	assert.False(t, user.CreatedAt.IsZero())

	// Self-registration never yields an admin.
	assert.Equal(t, constant.RoleUser, user.Role)
}

func TestLoginResponse_FromTokenPair(t *testing.T) {
	var res dto.LoginResponse
	res.FromTokenPair(&jwt.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresIn:    900,
	})

	assert.Equal(t, "access-token", res.AccessToken)
	assert.Equal(t, "refresh-token", res.RefreshToken)
	assert.Equal(t, int64(900), res.ExpiresIn)
}
