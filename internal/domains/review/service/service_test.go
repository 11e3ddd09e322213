package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roam/config"
	"roam/infras/otel/mocks"
	reviewMocks "roam/internal/domains/review/mocks"
	"roam/internal/domains/review/model"
	"roam/internal/domains/review/model/dto"
	"roam/internal/domains/review/service"
	roomMocks "roam/internal/domains/room/mocks"
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

type reviewServiceMocks struct {
	repo     *reviewMocks.MockReview
	roomRepo *roomMocks.MockRoom
	cache    *cacheMocks.MockRedisCache
}

func newReviewService(ctrl *gomock.Controller) (service.Review, reviewServiceMocks) {
	m := reviewServiceMocks{
		repo:     reviewMocks.NewMockReview(ctrl),
		roomRepo: roomMocks.NewMockRoom(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(
		m.repo,
		m.roomRepo,
		cfg,
		m.cache,
		mocks.NewOtel(),
	)

	return svc, m
}

func allowCacheWrites(m reviewServiceMocks) {
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func validReview() model.Review {
	return model.Review{
		ID:         "review-id-123",
		RoomID:     "room-id-123",
		UserID:     "user-id-123",
		ReviewDate: timezone.Now(),
		Content:    "Great stay, would book again.",
		Rating:     5,
	}
}

func TestReviewService_Create(t *testing.T) {
	req := dto.CreateReviewRequest{
		RoomID:  "room-id-123",
		Content: "Great stay, would book again.",
		Rating:  5,
	}

	t.Run("authenticated user reviews a room", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newReviewService(ctrl)
		allowCacheWrites(m)

		m.roomRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, review model.Review) error {
				assert.Equal(t, "user-id-123", review.UserID)
				assert.Equal(t, 5, review.Rating)
				assert.False(t, review.ReviewDate.IsZero())

				return nil
			})

		ctx := identityContext("user-id-123", "test@example.com", constant.RoleUser)

		assert.NoError(t, svc.Create(ctx, req))
	})

	t.Run("unauthenticated caller is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newReviewService(ctrl)
		allowCacheWrites(m)

		err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})

	t.Run("unknown room returns not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newReviewService(ctrl)
		allowCacheWrites(m)

		m.roomRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		ctx := identityContext("user-id-123", "test@example.com", constant.RoleUser)

		err := svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestReviewService_Update(t *testing.T) {
	req := dto.UpdateReviewRequest{
		RoomID:  "room-id-123",
		Content: "Updated impressions after a second stay.",
		Rating:  4,
	}

	t.Run("owner updates own review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newReviewService(ctrl)
		allowCacheWrites(m)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validReview(), nil)

		m.roomRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, 4, fields[model.FieldRating])

				return nil
			})

		ctx := identityContext("user-id-123", "test@example.com", constant.RoleUser)

		assert.NoError(t, svc.Update(ctx, req, "review-id-123"))
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newReviewService(ctrl)
		allowCacheWrites(m)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validReview(), nil)

		ctx := identityContext("other-id", "other@example.com", constant.RoleUser)

		err := svc.Update(ctx, req, "review-id-123")

		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})

	t.Run("missing review reported before ownership", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newReviewService(ctrl)
		allowCacheWrites(m)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Review{}, nil)

		ctx := identityContext("other-id", "other@example.com", constant.RoleUser)

		err := svc.Update(ctx, req, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestReviewService_Delete(t *testing.T) {
	t.Run("admin deletes another user's review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newReviewService(ctrl)
		allowCacheWrites(m)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validReview(), nil)

		m.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		ctx := identityContext("admin-id", "admin@example.com", constant.RoleAdmin)

		assert.NoError(t, svc.Delete(ctx, "review-id-123"))
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newReviewService(ctrl)
		allowCacheWrites(m)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validReview(), nil)

		ctx := identityContext("other-id", "other@example.com", constant.RoleUser)

		err := svc.Delete(ctx, "review-id-123")

		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})
}

func TestReviewService_GetByRoom(t *testing.T) {
	t.Run("unknown room returns not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newReviewService(ctrl)
		allowCacheWrites(m)

		m.roomRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.GetByRoom(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("lists reviews for the room", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newReviewService(ctrl)
		allowCacheWrites(m)

		m.roomRepo.EXPECT().
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
			Return([]model.Review{validReview()}, nil)

		res, err := svc.GetByRoom(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, "room-id-123")

		assert.NoError(t, err)
		assert.Len(t, res.Reviews, 1)
	})
}
