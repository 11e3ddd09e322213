// Package policy holds the role checks services run after resource
// lookups, so a missing resource reports not found before a role
// mismatch reports forbidden.
package policy

import (
	"context"

	"roam/shared/constant"
	"roam/shared/failure"
)

// Identity is the authenticated caller as decoded from the access token.
type Identity struct {
	SubjectID string
	Email     string
	Role      string
}

// FromContext rebuilds the caller identity placed on the context by the
// auth middleware. The second return is false for unauthenticated requests.
func FromContext(ctx context.Context) (Identity, bool) {
	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		return Identity{}, false
	}

	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return Identity{
		SubjectID: userID,
		Email:     email,
		Role:      role,
	}, true
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == constant.RoleAdmin
}

// RequireAuthenticated returns the caller identity or an unauthorized
// failure when the context carries no identity.
func RequireAuthenticated(ctx context.Context) (Identity, error) {
	identity, ok := FromContext(ctx)
	if !ok {
		return Identity{}, failure.Unauthorized("authentication required")
	}

	return identity, nil
}

// RequireAdmin rejects callers without the admin role.
func RequireAdmin(ctx context.Context) (Identity, error) {
	identity, err := RequireAuthenticated(ctx)
	if err != nil {
		return Identity{}, err
	}

	if !identity.IsAdmin() {
		return Identity{}, failure.Forbidden("admin role required")
	}

	return identity, nil
}

// RequireOwnerOrAdmin rejects callers that neither own the resource nor
// carry the admin role.
func RequireOwnerOrAdmin(ctx context.Context, ownerID string) (Identity, error) {
	identity, err := RequireAuthenticated(ctx)
	if err != nil {
		return Identity{}, err
	}

	if identity.SubjectID != ownerID && !identity.IsAdmin() {
		return Identity{}, failure.Forbidden("not allowed to access this resource")
	}

	return identity, nil
}
