package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hms/config"
	"hms/infras/otel/mocks"
	userMocks "hms/internal/domains/user/mocks"
	"hms/internal/domains/user/model"
	"hms/internal/domains/user/model/dto"
	"hms/internal/domains/user/service"
	cacheMocks "hms/shared/cache/mocks"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
)

func storedUser() model.User {
	return model.User{
		ID:        "user-id-1",
		Firstname: "John",
		Lastname:  "Doe",
		Username:  "johndoe",
		Email:     "john@example.com",
		Role:      constant.RoleClient,
		Phone:     "03123456789",
		Address:   "Jl. Merdeka No. 1",
	}
}

func newUserService(t *testing.T) (service.User, *userMocks.MockUser, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func allowCacheWrites(mockCache *cacheMocks.MockRedisCache) {
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestUserService_Get(t *testing.T) {
	t.Run("cache miss falls back to the repository", func(t *testing.T) {
		svc, mockRepo, mockCache := newUserService(t)
		allowCacheWrites(mockCache)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedUser(), nil)

		res, err := svc.Get(context.Background(), "user-id-1")

		assert.NoError(t, err)
		assert.Equal(t, "johndoe", res.Username)
		assert.Equal(t, constant.RoleClient, res.Role)
	})

	t.Run("missing user is not found", func(t *testing.T) {
		svc, mockRepo, mockCache := newUserService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestUserService_GetAll(t *testing.T) {
	t.Run("counts and pages in one response", func(t *testing.T) {
		svc, mockRepo, mockCache := newUserService(t)
		allowCacheWrites(mockCache)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(3, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.User{storedUser()}, nil)

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 2}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Equal(t, 3, res.TotalData)
		assert.Equal(t, 2, res.TotalPage)
		assert.Len(t, res.Users, 1)
	})

	t.Run("no matches is an empty page, not an error", func(t *testing.T) {
		svc, mockRepo, mockCache := newUserService(t)
		allowCacheWrites(mockCache)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.User{}, nil)

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Equal(t, 0, res.TotalData)
		assert.Empty(t, res.Users)
	})
}

func TestUserService_Update(t *testing.T) {
	t.Run("empty update is rejected", func(t *testing.T) {
		svc, _, _ := newUserService(t)

		err := svc.Update(context.Background(), dto.UpdateUserRequest{}, "user-id-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("missing user is not found", func(t *testing.T) {
		svc, mockRepo, _ := newUserService(t)

		address := "Jl. Baru No. 2"

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Update(context.Background(), dto.UpdateUserRequest{Address: &address}, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("taken email stops before the write", func(t *testing.T) {
		svc, mockRepo, _ := newUserService(t)

		email := "Taken@Example.com"

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
				emailFilter, ok := filter.Filters[0].(gDto.Filter)
				assert.True(t, ok)
				assert.Equal(t, model.FieldEmail, emailFilter.Field)
				assert.Equal(t, "taken@example.com", emailFilter.Value)

				idFilter, ok := filter.Filters[1].(gDto.Filter)
				assert.True(t, ok)
				assert.Equal(t, gDto.FilterOperatorNotEq, idFilter.Operator)

				return true, nil
			})

		err := svc.Update(context.Background(), dto.UpdateUserRequest{Email: &email}, "user-id-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("stamps the acting user on the update", func(t *testing.T) {
		svc, mockRepo, mockCache := newUserService(t)
		allowCacheWrites(mockCache)

		firstname := "Johnny"

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, &firstname, fields[model.FieldFirstname])
				assert.Equal(t, "admin", fields[constant.FieldModifiedBy])
				return nil
			})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserUsername, "admin")

		err := svc.Update(ctx, dto.UpdateUserRequest{Firstname: &firstname}, "user-id-1")

		assert.NoError(t, err)
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("missing user is not found", func(t *testing.T) {
		svc, mockRepo, _ := newUserService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("deletes an existing user", func(t *testing.T) {
		svc, mockRepo, mockCache := newUserService(t)
		allowCacheWrites(mockCache)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Delete(context.Background(), "user-id-1")

		assert.NoError(t, err)
	})
}
