package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roam/shared"
	"roam/shared/constant"
	"roam/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "empty result still has one page", total: 0, limit: 10, want: 1},
		{name: "exact multiple", total: 20, limit: 10, want: 2},
		{name: "partial last page", total: 21, limit: 10, want: 3},
		{name: "zero limit falls back to one page", total: 50, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestConvertStringToBool(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToBool(""))
	assert.Nil(t, shared.ConvertStringToBool("not-a-bool"))

	truthy := shared.ConvertStringToBool("true")
	if assert.NotNil(t, truthy) {
		assert.True(t, *truthy)
	}

	falsy := shared.ConvertStringToBool("false")
	if assert.NotNil(t, falsy) {
		assert.False(t, *falsy)
	}
}

func TestTransformFields(t *testing.T) {
	type avatarUpdate struct {
		Avatar string `db:"avatar"`
		Spare  string `db:"spare"`
		NoTag  string
	}

	fields := shared.TransformFields(avatarUpdate{Avatar: "https://cdn.example.com/a.png", NoTag: "ignored"}, "admin@example.com")

	assert.Equal(t, "https://cdn.example.com/a.png", fields["avatar"])
	assert.Equal(t, "admin@example.com", fields[constant.FieldModifiedBy])
	assert.Contains(t, fields, constant.FieldModifiedAt)
	assert.NotContains(t, fields, "spare")
	assert.NotContains(t, fields, "NoTag")
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("user-id-123", "id", "users")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(users.id = :id)", where)
	assert.Equal(t, "user-id-123", args["id"])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "user:get", shared.BuildCacheKey("user:get"))
	assert.Equal(t, "user:get:user-id-123", shared.BuildCacheKey("user:get", "user-id-123"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	paramsA := dto.QueryParams{Page: 1, Limit: 10}
	paramsB := dto.QueryParams{Page: 2, Limit: 10}

	keyA := shared.BuildCacheKeyWithQuery("user:gets", paramsA, dto.FilterGroup{})
	keyB := shared.BuildCacheKeyWithQuery("user:gets", paramsB, dto.FilterGroup{})

	assert.NotEqual(t, keyA, keyB)
	assert.Contains(t, keyA, "user:gets")
}
