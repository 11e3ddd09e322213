package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roam/config"
	kafkaMocks "roam/infras/kafka/mocks"
	"roam/infras/otel/mocks"
	reservationMocks "roam/internal/domains/reservation/mocks"
	"roam/internal/domains/reservation/model"
	"roam/internal/domains/reservation/model/dto"
	"roam/internal/domains/reservation/service"
	roomMocks "roam/internal/domains/room/mocks"
	userMocks "roam/internal/domains/user/mocks"
	cacheMocks "roam/shared/cache/mocks"
	"roam/shared/constant"
	gDto "roam/shared/dto"
	"roam/shared/failure"
	"roam/shared/timezone"
)

func identityContext(userID, email, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, email)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, role)

	return ctx
}

type reservationServiceMocks struct {
	repo     *reservationMocks.MockReservation
	roomRepo *roomMocks.MockRoom
	userRepo *userMocks.MockUser
	cache    *cacheMocks.MockRedisCache
	kafka    *kafkaMocks.MockClient
}

func newReservationService(ctrl *gomock.Controller) (service.Reservation, reservationServiceMocks) {
	m := reservationServiceMocks{
		repo:     reservationMocks.NewMockReservation(ctrl),
		roomRepo: roomMocks.NewMockRoom(ctrl),
		userRepo: userMocks.NewMockUser(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		kafka:    kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(
		m.repo,
		m.roomRepo,
		m.userRepo,
		cfg,
		m.cache,
		mocks.NewOtel(),
		m.kafka,
	)

	return svc, m
}

func allowCacheWrites(m reservationServiceMocks) {
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func validReservation() model.Reservation {
	start, _ := timezone.Parse(constant.DateOnly, "2026-09-01")
	end, _ := timezone.Parse(constant.DateOnly, "2026-09-05")

	return model.Reservation{
		ID:         "reservation-id-123",
		RoomID:     "room-id-123",
		UserID:     "user-id-123",
		StartDate:  start,
		EndDate:    end,
		GuestCount: 2,
	}
}

func TestReservationService_Create(t *testing.T) {
	req := dto.CreateReservationRequest{
		RoomID:     "room-id-123",
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-05",
		GuestCount: 2,
	}

	t.Run("owner comes from the token and an event is published", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newReservationService(ctrl)
		allowCacheWrites(m)

		m.roomRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, reservation model.Reservation) error {
				assert.Equal(t, "user-id-123", reservation.UserID)
				assert.Equal(t, "room-id-123", reservation.RoomID)
				assert.Equal(t, 2, reservation.GuestCount)

				return nil
			})

		m.kafka.EXPECT().
			SendMessages(gomock.Any(), constant.KafkaTopicReservationEvents, gomock.Any()).
			Return(nil)

		ctx := identityContext("user-id-123", "test@example.com", constant.RoleUser)

		assert.NoError(t, svc.Create(ctx, req))
	})

	t.Run("unauthenticated caller is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newReservationService(ctrl)
		allowCacheWrites(m)

		err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})

	t.Run("unknown room returns not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newReservationService(ctrl)
		allowCacheWrites(m)

		m.roomRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		ctx := identityContext("user-id-123", "test@example.com", constant.RoleUser)

		err := svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("end date must be after start date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newReservationService(ctrl)
		allowCacheWrites(m)

		m.roomRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		ctx := identityContext("user-id-123", "test@example.com", constant.RoleUser)

		err := svc.Create(ctx, dto.CreateReservationRequest{
			RoomID:     "room-id-123",
			StartDate:  "2026-09-05",
			EndDate:    "2026-09-01",
			GuestCount: 2,
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("malformed dates are rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newReservationService(ctrl)
		allowCacheWrites(m)

		m.roomRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		ctx := identityContext("user-id-123", "test@example.com", constant.RoleUser)

		err := svc.Create(ctx, dto.CreateReservationRequest{
			RoomID:     "room-id-123",
			StartDate:  "not-a-date",
			EndDate:    "2026-09-05",
			GuestCount: 2,
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("event delivery failure does not fail the booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newReservationService(ctrl)
		allowCacheWrites(m)

		m.roomRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		m.kafka.EXPECT().
			SendMessages(gomock.Any(), constant.KafkaTopicReservationEvents, gomock.Any()).
			Return(errors.New("broker unavailable"))

		ctx := identityContext("user-id-123", "test@example.com", constant.RoleUser)

		assert.NoError(t, svc.Create(ctx, req))
	})
}

func TestReservationService_Update(t *testing.T) {
	req := dto.UpdateReservationRequest{
		RoomID:     "room-id-123",
		StartDate:  "2026-09-02",
		EndDate:    "2026-09-06",
		GuestCount: 3,
	}

	t.Run("owner updates own reservation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newReservationService(ctrl)
		allowCacheWrites(m)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validReservation(), nil)

		m.roomRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		ctx := identityContext("user-id-123", "test@example.com", constant.RoleUser)

		assert.NoError(t, svc.Update(ctx, req, "reservation-id-123"))
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newReservationService(ctrl)
		allowCacheWrites(m)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validReservation(), nil)

		ctx := identityContext("other-id", "other@example.com", constant.RoleUser)

		err := svc.Update(ctx, req, "reservation-id-123")

		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})

	t.Run("missing reservation reported before ownership", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newReservationService(ctrl)
		allowCacheWrites(m)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{}, nil)

		ctx := identityContext("other-id", "other@example.com", constant.RoleUser)

		err := svc.Update(ctx, req, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestReservationService_Delete(t *testing.T) {
	t.Run("owner delete publishes a cancellation event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newReservationService(ctrl)
		allowCacheWrites(m)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validReservation(), nil)

		m.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		m.kafka.EXPECT().
			SendMessages(gomock.Any(), constant.KafkaTopicReservationEvents, gomock.Any()).
			Return(nil)

		ctx := identityContext("user-id-123", "test@example.com", constant.RoleUser)

		assert.NoError(t, svc.Delete(ctx, "reservation-id-123"))
	})

	t.Run("admin deletes another user's reservation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newReservationService(ctrl)
		allowCacheWrites(m)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validReservation(), nil)

		m.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		m.kafka.EXPECT().
			SendMessages(gomock.Any(), constant.KafkaTopicReservationEvents, gomock.Any()).
			Return(nil)

		ctx := identityContext("admin-id", "admin@example.com", constant.RoleAdmin)

		assert.NoError(t, svc.Delete(ctx, "reservation-id-123"))
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newReservationService(ctrl)
		allowCacheWrites(m)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validReservation(), nil)

		ctx := identityContext("other-id", "other@example.com", constant.RoleUser)

		err := svc.Delete(ctx, "reservation-id-123")

		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})
}

func TestReservationService_GetByUser(t *testing.T) {
	t.Run("unknown user returns not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newReservationService(ctrl)
		allowCacheWrites(m)

		m.userRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.GetByUser(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("lists reservations for the user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newReservationService(ctrl)
		allowCacheWrites(m)

		m.userRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		m.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		m.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Reservation{validReservation()}, nil)

		res, err := svc.GetByUser(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, "user-id-123")

		assert.NoError(t, err)
		assert.Len(t, res.Reservations, 1)
	})
}
