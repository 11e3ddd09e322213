package dto

import (
	"time"

	"github.com/google/uuid"

	"roam/internal/domains/reservation/model"
	"roam/shared"
	"roam/shared/constant"
	gDto "roam/shared/dto"
	gModel "roam/shared/model"
	"roam/shared/timezone"
)

type CreateReservationRequest struct {
	RoomID     string `json:"room_id"     validate:"required,uuid"`
	StartDate  string `json:"start_date"  validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date"    validate:"required,datetime=2006-01-02"`
	GuestCount int    `json:"guest_count" validate:"required,min=1"`
}

// ParseDates parses the reservation window in the application timezone.
func (r *CreateReservationRequest) ParseDates() (start, end time.Time, err error) {
	start, err = timezone.Parse(constant.DateOnly, r.StartDate)
	if err != nil {
		return start, end, err
	}

	end, err = timezone.Parse(constant.DateOnly, r.EndDate)

	return start, end, err
}

func (r *CreateReservationRequest) ToModel(userID, username string, start, end time.Time) model.Reservation {
	return model.Reservation{
		ID:         uuid.NewString(),
		RoomID:     r.RoomID,
		UserID:     userID,
		StartDate:  start,
		EndDate:    end,
		GuestCount: r.GuestCount,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

// UpdateReservationRequest replaces every reservation field.
type UpdateReservationRequest struct {
	RoomID     string `json:"room_id"     validate:"required,uuid"`
	StartDate  string `json:"start_date"  validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date"    validate:"required,datetime=2006-01-02"`
	GuestCount int    `json:"guest_count" validate:"required,min=1"`
}

func (r *UpdateReservationRequest) ParseDates() (start, end time.Time, err error) {
	start, err = timezone.Parse(constant.DateOnly, r.StartDate)
	if err != nil {
		return start, end, err
	}

	end, err = timezone.Parse(constant.DateOnly, r.EndDate)

	return start, end, err
}

func (r *UpdateReservationRequest) ToUpdateMap(username string, start, end time.Time) map[string]any {
	return map[string]any{
		model.FieldRoomID:        r.RoomID,
		model.FieldStartDate:     start,
		model.FieldEndDate:       end,
		model.FieldGuestCount:    r.GuestCount,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: username,
	}
}

type ReservationResponse struct {
	ID         string `json:"id"`
	RoomID     string `json:"room_id"`
	UserID     string `json:"user_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	GuestCount int    `json:"guest_count"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.UserID = model.UserID
	r.StartDate = timezone.Format(model.StartDate, constant.DateOnly)
	r.EndDate = timezone.Format(model.EndDate, constant.DateOnly)
	r.GuestCount = model.GuestCount
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

// ReservationEvent is the payload published to the reservation events
// topic on create and cancel.
type ReservationEvent struct {
	Event         string `json:"event"`
	ReservationID string `json:"reservation_id"`
	RoomID        string `json:"room_id"`
	UserID        string `json:"user_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	GuestCount    int    `json:"guest_count"`
	OccurredAt    string `json:"occurred_at"`
}
