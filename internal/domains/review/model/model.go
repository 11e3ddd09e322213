package model

import (
	"time"

	"roam/shared/model"
)

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID         = "id"
	FieldRoomID     = "room_id"
	FieldUserID     = "user_id"
	FieldReviewDate = "review_date"
	FieldContent    = "content"
	FieldRating     = "rating"
)

type Review struct {
	ID         string    `db:"id"`
	RoomID     string    `db:"room_id"`
	UserID     string    `db:"user_id"`
	ReviewDate time.Time `db:"review_date"`
	Content    string    `db:"content"`
	Rating     int       `db:"rating"`
	model.Metadata
}
