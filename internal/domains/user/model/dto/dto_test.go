package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"roam/internal/domains/user/model"
	"roam/internal/domains/user/model/dto"
	"roam/shared/constant"
)

func stringPtr(s string) *string {
	return &s
}

func TestCreateUserRequest_ToModel(t *testing.T) {
	t.Run("role defaults to user", func(t *testing.T) {
		req := dto.CreateUserRequest{Email: "new@example.com", Password: "password123"}

		user := req.ToModel("admin@example.com", "hashed-password")

		assert.NotEmpty(t, user.ID)
		assert.Equal(t, constant.RoleUser, user.Role)
		assert.Equal(t, "hashed-password", user.Password)
		assert.Equal(t, "admin@example.com", user.CreatedBy)
	})

	t.Run("explicit admin role is kept", func(t *testing.T) {
		req := dto.CreateUserRequest{Email: "new@example.com", Password: "password123", Role: constant.RoleAdmin}

		user := req.ToModel("admin@example.com", "hashed-password")

		assert.Equal(t, constant.RoleAdmin, user.Role)
	})
}

func TestUserResponse_NeverCarriesPassword(t *testing.T) {
	var res dto.UserResponse
	res.FromModel(model.User{
		ID:       "user-id-123",
		Email:    "test@example.com",
		Password: "hashed-password",
		Role:     constant.RoleUser,
		FullName: stringPtr("Test User"),
	})

	body, err := json.Marshal(res)

	assert.NoError(t, err)
	assert.NotContains(t, string(body), "hashed-password")
	assert.Contains(t, string(body), "test@example.com")
}

func TestUpdateProfileRequest_ToUpdateMap(t *testing.T) {
	req := dto.UpdateProfileRequest{
		FullName: stringPtr("Updated Name"),
		Phone:    stringPtr("+6281234567890"),
	}

	fields := req.ToUpdateMap("test@example.com")

	assert.Equal(t, stringPtr("Updated Name"), fields[model.FieldFullName])
	assert.Equal(t, stringPtr("+6281234567890"), fields[model.FieldPhone])
	assert.Equal(t, "test@example.com", fields[constant.FieldModifiedBy])

	// Omitted fields are still present so the update clears them.
	assert.Contains(t, fields, model.FieldBirthDate)
	assert.Contains(t, fields, model.FieldGender)
}
