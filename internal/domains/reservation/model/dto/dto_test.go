package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roam/internal/domains/reservation/model"
	"roam/internal/domains/reservation/model/dto"
	"roam/shared/constant"
	"roam/shared/timezone"
)

func TestCreateReservationRequest_ParseDates(t *testing.T) {
	t.Run("valid window", func(t *testing.T) {
		req := dto.CreateReservationRequest{StartDate: "2026-09-01", EndDate: "2026-09-05"}

		start, end, err := req.ParseDates()

		assert.NoError(t, err)
		assert.True(t, end.After(start))
	})

	t.Run("malformed start date", func(t *testing.T) {
		req := dto.CreateReservationRequest{StartDate: "01/09/2026", EndDate: "2026-09-05"}

		_, _, err := req.ParseDates()

		assert.Error(t, err)
	})

	t.Run("malformed end date", func(t *testing.T) {
		req := dto.CreateReservationRequest{StartDate: "2026-09-01", EndDate: "next week"}

		_, _, err := req.ParseDates()

		assert.Error(t, err)
	})
}

func TestCreateReservationRequest_ToModel(t *testing.T) {
	req := dto.CreateReservationRequest{
		RoomID:     "room-id-123",
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-05",
		GuestCount: 2,
	}

	start, end, err := req.ParseDates()
	assert.NoError(t, err)

	reservation := req.ToModel("user-id-123", "test@example.com", start, end)

	assert.NotEmpty(t, reservation.ID)
	assert.Equal(t, "room-id-123", reservation.RoomID)
	assert.Equal(t, "user-id-123", reservation.UserID)
	assert.Equal(t, 2, reservation.GuestCount)
	assert.Equal(t, "test@example.com", reservation.CreatedBy)
	assert.Equal(t, "test@example.com", reservation.ModifiedBy)
	assert.False(t, reservation.CreatedAt.IsZero())
}

func TestUpdateReservationRequest_ToUpdateMap(t *testing.T) {
	req := dto.UpdateReservationRequest{
		RoomID:     "room-id-456",
		StartDate:  "2026-09-02",
		EndDate:    "2026-09-06",
		GuestCount: 3,
	}

	start, end, err := req.ParseDates()
	assert.NoError(t, err)

	fields := req.ToUpdateMap("admin@example.com", start, end)

	assert.Equal(t, "room-id-456", fields[model.FieldRoomID])
	assert.Equal(t, start, fields[model.FieldStartDate])
	assert.Equal(t, end, fields[model.FieldEndDate])
	assert.Equal(t, 3, fields[model.FieldGuestCount])
	assert.Equal(t, "admin@example.com", fields[constant.FieldModifiedBy])
	assert.Contains(t, fields, constant.FieldModifiedAt)
}

func TestReservationResponse_FromModel(t *testing.T) {
	start, _ := timezone.Parse(constant.DateOnly, "2026-09-01")
	end, _ := timezone.Parse(constant.DateOnly, "2026-09-05")

	var res dto.ReservationResponse
	res.FromModel(model.Reservation{
		ID:         "reservation-id-123",
		RoomID:     "room-id-123",
		UserID:     "user-id-123",
		StartDate:  start,
		EndDate:    end,
		GuestCount: 2,
	})

	assert.Equal(t, "reservation-id-123", res.ID)
	assert.Equal(t, "2026-09-01", res.StartDate)
	assert.Equal(t, "2026-09-05", res.EndDate)
}

func TestGetReservationsResponse_FromModels(t *testing.T) {
	var res dto.GetReservationsResponse
	res.FromModels([]model.Reservation{{ID: "a"}, {ID: "b"}}, 12, 10)

	assert.Len(t, res.Reservations, 2)
	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
}
