package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roam/config"
	"roam/infras/otel/mocks"
	postgresMocks "roam/infras/postgres/mocks"
	s3Mocks "roam/infras/s3/mocks"
	reservationMocks "roam/internal/domains/reservation/mocks"
	reviewMocks "roam/internal/domains/review/mocks"
	userMocks "roam/internal/domains/user/mocks"
	"roam/internal/domains/user/model"
	"roam/internal/domains/user/model/dto"
	"roam/internal/domains/user/service"
	cacheMocks "roam/shared/cache/mocks"
	"roam/shared/constant"
	"roam/shared/failure"
)

func identityContext(userID, email, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, email)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, role)

	return ctx
}

type userServiceMocks struct {
	repo            *userMocks.MockUser
	reservationRepo *reservationMocks.MockReservation
	reviewRepo      *reviewMocks.MockReview
	cache           *cacheMocks.MockRedisCache
	s3              *s3Mocks.MockS3
}

func newUserService(ctrl *gomock.Controller) (service.User, userServiceMocks) {
	m := userServiceMocks{
		repo:            userMocks.NewMockUser(ctrl),
		reservationRepo: reservationMocks.NewMockReservation(ctrl),
		reviewRepo:      reviewMocks.NewMockReview(ctrl),
		cache:           cacheMocks.NewMockRedisCache(ctrl),
		s3:              s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(
		m.repo,
		m.reservationRepo,
		m.reviewRepo,
		cfg,
		m.cache,
		mocks.NewOtel(),
		m.s3,
		postgresMocks.NewTxn(),
	)

	return svc, m
}

// Cache writes and invalidations run on background goroutines, so tests
// only assert that they may happen.
func allowCacheWrites(m userServiceMocks) {
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.CreateUserRequest
		setupMock func(m userServiceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "admin creates user",
			ctx:  identityContext("admin-id", "admin@example.com", constant.RoleAdmin),
			req: dto.CreateUserRequest{
				Email:    "new@example.com",
				Password: "password123",
			},
			setupMock: func(m userServiceMocks) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user model.User) error {
						assert.Equal(t, "new@example.com", user.Email)
						assert.Equal(t, constant.RoleUser, user.Role)
						assert.Equal(t, "admin@example.com", user.CreatedBy)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "non-admin is forbidden",
			ctx:  identityContext("user-id", "user@example.com", constant.RoleUser),
			req: dto.CreateUserRequest{
				Email:    "new@example.com",
				Password: "password123",
			},
			setupMock: func(m userServiceMocks) {},
			wantErr:   true,
			wantCode:  403,
		},
		{
			name: "duplicate email",
			ctx:  identityContext("admin-id", "admin@example.com", constant.RoleAdmin),
			req: dto.CreateUserRequest{
				Email:    "taken@example.com",
				Password: "password123",
			},
			setupMock: func(m userServiceMocks) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newUserService(ctrl)
			allowCacheWrites(m)
			tt.setupMock(m)

			err := svc.Create(tt.ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserService_Get(t *testing.T) {
	t.Run("cache miss falls back to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newUserService(ctrl)
		allowCacheWrites(m)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{ID: "user-id-123", Email: "test@example.com"}, nil)

		res, err := svc.Get(context.Background(), "user-id-123")

		assert.NoError(t, err)
		assert.Equal(t, "user-id-123", res.ID)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newUserService(ctrl)
		allowCacheWrites(m)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{}, nil)

		_, err := svc.Get(context.Background(), "missing-id")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	fullName := "Updated Name"

	tests := []struct {
		name      string
		ctx       context.Context
		id        string
		setupMock func(m userServiceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "owner updates own profile",
			ctx:  identityContext("user-id-123", "test@example.com", constant.RoleUser),
			id:   "user-id-123",
			setupMock: func(m userServiceMocks) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, &fullName, fields[model.FieldFullName])
						assert.Equal(t, "test@example.com", fields[constant.FieldModifiedBy])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "missing user reported before ownership",
			ctx:  identityContext("other-id", "other@example.com", constant.RoleUser),
			id:   "missing-id",
			setupMock: func(m userServiceMocks) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "non-owner is forbidden",
			ctx:  identityContext("other-id", "other@example.com", constant.RoleUser),
			id:   "user-id-123",
			setupMock: func(m userServiceMocks) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 403,
		},
		{
			name: "admin updates another user",
			ctx:  identityContext("admin-id", "admin@example.com", constant.RoleAdmin),
			id:   "user-id-123",
			setupMock: func(m userServiceMocks) {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newUserService(ctrl)
			allowCacheWrites(m)
			tt.setupMock(m)

			err := svc.UpdateProfile(tt.ctx, dto.UpdateProfileRequest{FullName: &fullName}, tt.id)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserService_Delete(t *testing.T) {
	t.Run("owner delete cascades reservations and reviews first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newUserService(ctrl)
		allowCacheWrites(m)

		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		gomock.InOrder(
			m.reservationRepo.EXPECT().
				DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil),
			m.reviewRepo.EXPECT().
				DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil),
			m.repo.EXPECT().
				DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil),
		)

		ctx := identityContext("user-id-123", "test@example.com", constant.RoleUser)

		err := svc.Delete(ctx, "user-id-123")

		assert.NoError(t, err)
	})

	t.Run("missing user returns not found without deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newUserService(ctrl)
		allowCacheWrites(m)

		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		ctx := identityContext("admin-id", "admin@example.com", constant.RoleAdmin)

		err := svc.Delete(ctx, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newUserService(ctrl)
		allowCacheWrites(m)

		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		ctx := identityContext("other-id", "other@example.com", constant.RoleUser)

		err := svc.Delete(ctx, "user-id-123")

		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})

	t.Run("failed cascade aborts the delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newUserService(ctrl)
		allowCacheWrites(m)

		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.reservationRepo.EXPECT().
			DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		ctx := identityContext("user-id-123", "test@example.com", constant.RoleUser)

		err := svc.Delete(ctx, "user-id-123")

		assert.Error(t, err)
	})
}
