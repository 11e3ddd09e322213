package model

import (
	"time"

	"roam/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID         = "id"
	FieldRoomID     = "room_id"
	FieldUserID     = "user_id"
	FieldStartDate  = "start_date"
	FieldEndDate    = "end_date"
	FieldGuestCount = "guest_count"
)

type Reservation struct {
	ID         string    `db:"id"`
	RoomID     string    `db:"room_id"`
	UserID     string    `db:"user_id"`
	StartDate  time.Time `db:"start_date"`
	EndDate    time.Time `db:"end_date"`
	GuestCount int       `db:"guest_count"`
	model.Metadata
}
