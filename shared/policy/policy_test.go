package policy_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"roam/shared/constant"
	"roam/shared/failure"
	"roam/shared/policy"
)

func identityContext(userID, email, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, email)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, role)

	return ctx
}

func TestFromContext(t *testing.T) {
	t.Run("authenticated context", func(t *testing.T) {
		ctx := identityContext("user-id-123", "test@example.com", constant.RoleUser)

		identity, ok := policy.FromContext(ctx)

		assert.True(t, ok)
		assert.Equal(t, "user-id-123", identity.SubjectID)
		assert.Equal(t, "test@example.com", identity.Email)
		assert.Equal(t, constant.RoleUser, identity.Role)
	})

	t.Run("empty context", func(t *testing.T) {
		_, ok := policy.FromContext(context.Background())

		assert.False(t, ok)
	})

	t.Run("blank subject is unauthenticated", func(t *testing.T) {
		ctx := identityContext("", "test@example.com", constant.RoleUser)

		_, ok := policy.FromContext(ctx)

		assert.False(t, ok)
	})
}

func TestRequireAuthenticated(t *testing.T) {
	_, err := policy.RequireAuthenticated(context.Background())

	assert.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))

	identity, err := policy.RequireAuthenticated(identityContext("user-id-123", "test@example.com", constant.RoleUser))

	assert.NoError(t, err)
	assert.Equal(t, "user-id-123", identity.SubjectID)
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		wantCode int
	}{
		{name: "admin passes", ctx: identityContext("admin-id", "admin@example.com", constant.RoleAdmin)},
		{name: "user is forbidden", ctx: identityContext("user-id", "user@example.com", constant.RoleUser), wantCode: http.StatusForbidden},
		{name: "anonymous is unauthorized", ctx: context.Background(), wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := policy.RequireAdmin(tt.ctx)

			if tt.wantCode == 0 {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			}
		})
	}
}

func TestRequireOwnerOrAdmin(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		ownerID  string
		wantCode int
	}{
		{name: "owner passes", ctx: identityContext("user-id-123", "test@example.com", constant.RoleUser), ownerID: "user-id-123"},
		{name: "admin passes for any owner", ctx: identityContext("admin-id", "admin@example.com", constant.RoleAdmin), ownerID: "user-id-123"},
		{name: "other user is forbidden", ctx: identityContext("other-id", "other@example.com", constant.RoleUser), ownerID: "user-id-123", wantCode: http.StatusForbidden},
		{name: "anonymous is unauthorized", ctx: context.Background(), ownerID: "user-id-123", wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := policy.RequireOwnerOrAdmin(tt.ctx, tt.ownerID)

			if tt.wantCode == 0 {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			}
		})
	}
}
