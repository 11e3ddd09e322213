package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roam/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "equality with table prefix",
			filter: dto.Filter{
				Field:    "email",
				Operator: dto.FilterOperatorEq,
				Value:    "test@example.com",
				Table:    "users",
			},
			wantWhere: "users.email = :email",
			wantArgs:  map[string]any{"email": "test@example.com"},
		},
		{
			name: "like is case insensitive and wrapped",
			filter: dto.Filter{
				Field:    "name",
				Operator: dto.FilterOperatorLike,
				Value:    "Ubud",
				Table:    "locations",
			},
			wantWhere: "LOWER(locations.name) LIKE LOWER(:name) ",
			wantArgs:  map[string]any{"name": "%Ubud%"},
		},
		{
			name: "in expands slice values",
			filter: dto.Filter{
				Field:    "role",
				Operator: dto.FilterOperatorIn,
				Value:    []string{"user", "admin"},
				Table:    "users",
			},
			wantWhere: "users.role IN (:role_0, :role_1) ",
			wantArgs:  map[string]any{"role_0": "user", "role_1": "admin"},
		},
		{
			name: "custom arg name",
			filter: dto.Filter{
				ArgName:  "owner_id",
				Field:    "user_id",
				Operator: dto.FilterOperatorEq,
				Value:    "user-id-123",
				Table:    "reservations",
			},
			wantWhere: "reservations.user_id = :owner_id",
			wantArgs:  map[string]any{"owner_id": "user-id-123"},
		},
		{
			name: "is null takes no args",
			filter: dto.Filter{
				Field:    "image",
				Operator: dto.FilterIsNull,
				Table:    "rooms",
			},
			wantWhere: "rooms.image IS NULL",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("empty group yields empty clause", func(t *testing.T) {
		group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

		where, args := group.GetWhereClause()

		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("filters joined with the group operator", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "user_id", Operator: dto.FilterOperatorEq, Value: "user-id-123", Table: "reservations"},
				dto.Filter{Field: "room_id", Operator: dto.FilterOperatorEq, Value: "room-id-123", Table: "reservations"},
			},
		}

		where, args := group.GetWhereClause()

		assert.Equal(t, "(reservations.user_id = :user_id AND reservations.room_id = :room_id)", where)
		assert.Equal(t, "user-id-123", args["user_id"])
		assert.Equal(t, "room-id-123", args["room_id"])
	})

	t.Run("nested groups are parenthesized", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "nation", Operator: dto.FilterOperatorEq, Value: "Indonesia", Table: "locations"},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorOr,
					Filters: []any{
						dto.Filter{Field: "province", Operator: dto.FilterOperatorEq, Value: "Bali", Table: "locations"},
						dto.Filter{Field: "province", ArgName: "province_alt", Operator: dto.FilterOperatorEq, Value: "Jawa Barat", Table: "locations"},
					},
				},
			},
		}

		where, args := group.GetWhereClause()

		assert.Equal(t, "(locations.nation = :nation AND (locations.province = :province OR locations.province = :province_alt))", where)
		assert.Len(t, args, 3)
	})
}
