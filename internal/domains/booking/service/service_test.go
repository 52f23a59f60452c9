package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hms/config"
	"hms/infras/otel/mocks"
	bookingMocks "hms/internal/domains/booking/mocks"
	"hms/internal/domains/booking/model"
	"hms/internal/domains/booking/model/dto"
	"hms/internal/domains/booking/service"
	roomMocks "hms/internal/domains/room/mocks"
	roomModel "hms/internal/domains/room/model"
	cacheMocks "hms/shared/cache/mocks"
	"hms/shared/constant"
	"hms/shared/failure"
	gModel "hms/shared/model"
	"hms/shared/timezone"
)

func availableRoom() roomModel.Room {
	return roomModel.Room{
		ID:            "room-id-1",
		RoomNumber:    "101",
		RoomType:      "double",
		Description:   "Double room with a sea view",
		PricePerNight: decimal.RequireFromString("100.00"),
		Status:        constant.RoomStatusAvailable,
		Active:        true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

func storedBooking() model.Booking {
	return model.Booking{
		ID:            "booking-id-1",
		UserID:        "user-id-1",
		RoomID:        "room-id-1",
		TotalAmount:   decimal.RequireFromString("300.00"),
		BookingStatus: constant.BookingStatusPending,
		PaymentStatus: constant.PaymentStatusUnpaid,
	}
}

func newBookingService(t *testing.T) (service.Booking, *bookingMocks.MockBooking, *roomMocks.MockRoom, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, nil)

	return svc, mockRepo, mockRoomRepo, mockCache
}

func allowCacheInvalidation(mockCache *cacheMocks.MockRedisCache) {
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestBookingService_Create(t *testing.T) {
	req := dto.CreateBookingRequest{
		RoomID:       "room-id-1",
		CheckInDate:  "2026-01-10",
		CheckOutDate: "2026-01-13",
	}

	t.Run("computes the total and books the room in one transaction", func(t *testing.T) {
		svc, mockRepo, mockRoomRepo, mockCache := newBookingService(t)
		allowCacheInvalidation(mockCache)

		mockRoomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(availableRoom(), nil)

		mockRepo.EXPECT().
			CreateAndMarkRoom(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				assert.True(t, booking.TotalAmount.Equal(decimal.RequireFromString("300.00")))
				assert.Equal(t, constant.BookingStatusPending, booking.BookingStatus)
				assert.Equal(t, constant.PaymentStatusUnpaid, booking.PaymentStatus)
				assert.Equal(t, "user-id-1", booking.UserID)
				return nil
			})

		res, err := svc.Create(context.Background(), req, "user-id-1")

		assert.NoError(t, err)
		assert.True(t, res.TotalAmount.Equal(decimal.RequireFromString("300.00")))
		assert.Equal(t, "101", res.RoomNumber)
		assert.Equal(t, "double", res.RoomType)
		assert.Equal(t, constant.BookingStatusPending, res.BookingStatus)
	})

	t.Run("invalid date range never touches the room", func(t *testing.T) {
		svc, _, _, _ := newBookingService(t)

		badReq := req
		badReq.CheckOutDate = "2026-01-10"
		badReq.CheckInDate = "2026-01-13"

		_, err := svc.Create(context.Background(), badReq, "user-id-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unparseable date is a bad request", func(t *testing.T) {
		svc, _, _, _ := newBookingService(t)

		badReq := req
		badReq.CheckInDate = "10-01-2026"

		_, err := svc.Create(context.Background(), badReq, "user-id-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("missing room is not found", func(t *testing.T) {
		svc, _, mockRoomRepo, _ := newBookingService(t)

		mockRoomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomModel.Room{}, nil)

		_, err := svc.Create(context.Background(), req, "user-id-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("transaction failure surfaces the error", func(t *testing.T) {
		svc, mockRepo, mockRoomRepo, _ := newBookingService(t)

		mockRoomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(availableRoom(), nil)

		mockRepo.EXPECT().
			CreateAndMarkRoom(gomock.Any(), gomock.Any()).
			Return(errors.New("tx aborted"))

		_, err := svc.Create(context.Background(), req, "user-id-1")

		assert.Error(t, err)
	})
}

func TestBookingService_Get(t *testing.T) {
	t.Run("cache miss falls back to the repository", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newBookingService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedBooking(), nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Get(context.Background(), "booking-id-1")

		assert.NoError(t, err)
		assert.Equal(t, "booking-id-1", res.ID)
	})

	t.Run("missing booking is not found", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newBookingService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_Update(t *testing.T) {
	t.Run("empty update is rejected", func(t *testing.T) {
		svc, _, _, _ := newBookingService(t)

		err := svc.Update(context.Background(), dto.UpdateBookingRequest{}, "booking-id-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("supplied total is stored as-is", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newBookingService(t)
		allowCacheInvalidation(mockCache)

		total := decimal.RequireFromString("999.99")
		confirmed := constant.BookingStatusConfirmed

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedBooking(), nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, &total, fields[model.FieldTotalAmount])
				assert.Equal(t, &confirmed, fields[model.FieldBookingStatus])
				return nil
			})

		err := svc.Update(context.Background(), dto.UpdateBookingRequest{
			TotalAmount:   &total,
			BookingStatus: &confirmed,
		}, "booking-id-1")

		assert.NoError(t, err)
	})

	t.Run("missing booking is not found", func(t *testing.T) {
		svc, mockRepo, _, _ := newBookingService(t)

		status := constant.BookingStatusCancelled

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		err := svc.Update(context.Background(), dto.UpdateBookingRequest{BookingStatus: &status}, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_Delete(t *testing.T) {
	t.Run("releases the room with the booking", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newBookingService(t)
		allowCacheInvalidation(mockCache)

		booking := storedBooking()

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		mockRepo.EXPECT().
			DeleteAndReleaseRoom(gomock.Any(), booking).
			Return(nil)

		err := svc.Delete(context.Background(), booking.ID)

		assert.NoError(t, err)
	})

	t.Run("missing booking leaves the room untouched", func(t *testing.T) {
		svc, mockRepo, _, _ := newBookingService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		err := svc.Delete(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
