package model

import "roam/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldFullName  = "full_name"
	FieldBirthDate = "birth_date"
	FieldGender    = "gender"
	FieldRole      = "role"
	FieldPhone     = "phone"
	FieldAvatar    = "avatar"
)

type User struct {
	ID        string  `db:"id"`
	Email     string  `db:"email"`
	Password  string  `db:"password"`
	FullName  *string `db:"full_name"`
	BirthDate *string `db:"birth_date"`
	Gender    *string `db:"gender"`
	Role      string  `db:"role"`
	Phone     *string `db:"phone"`
	Avatar    *string `db:"avatar"`
	model.Metadata
}
