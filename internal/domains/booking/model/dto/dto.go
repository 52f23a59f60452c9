package dto

import (
	"time"

	"hms/internal/domains/booking/model"
	"hms/shared"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	gModel "hms/shared/model"
	"hms/shared/failure"
	"hms/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	RoomID        string `json:"room_id"        validate:"required"`
	CheckInDate   string `json:"check_in_date"  validate:"required"`
	CheckOutDate  string `json:"check_out_date" validate:"required"`
	PaymentStatus string `json:"payment_status" validate:"omitempty,oneof=paid unpaid"`
}

// ParseDates reads the check-in/check-out pair in the booking date layout.
func (c *CreateBookingRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.BookingDateFormat, c.CheckInDate)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("check_in_date must use format " + constant.BookingDateFormat)
	}

	checkOut, err = timezone.Parse(constant.BookingDateFormat, c.CheckOutDate)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("check_out_date must use format " + constant.BookingDateFormat)
	}

	return checkIn, checkOut, nil
}

func (c *CreateBookingRequest) ToModel(userID string, checkIn, checkOut time.Time, totalAmount decimal.Decimal) model.Booking {
	paymentStatus := c.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = constant.PaymentStatusUnpaid
	}

	return model.Booking{
		ID:            uuid.NewString(),
		UserID:        userID,
		RoomID:        c.RoomID,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		TotalAmount:   totalAmount,
		BookingStatus: constant.BookingStatusPending,
		PaymentStatus: paymentStatus,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type UpdateBookingRequest struct {
	RoomID        *string          `db:"room_id"        json:"room_id,omitempty"`
	CheckInDate   *time.Time       `db:"check_in_date"  json:"check_in_date,omitempty"`
	CheckOutDate  *time.Time       `db:"check_out_date" json:"check_out_date,omitempty"`
	TotalAmount   *decimal.Decimal `db:"total_amount"   json:"total_amount,omitempty"`
	BookingStatus *string          `db:"booking_status" json:"booking_status,omitempty" validate:"omitempty,oneof=pending confirmed cancelled completed"`
	PaymentStatus *string          `db:"payment_status" json:"payment_status,omitempty" validate:"omitempty,oneof=paid unpaid"`
}

type BookingResponse struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	RoomID        string          `json:"room_id"`
	CheckInDate   string          `json:"check_in_date"`
	CheckOutDate  string          `json:"check_out_date"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	BookingStatus string          `json:"booking_status"`
	PaymentStatus string          `json:"payment_status"`
	Username      string          `json:"username"`
	UserEmail     string          `json:"user_email"`
	UserRole      string          `json:"user_role"`
	RoomNumber    string          `json:"room_number"`
	RoomType      string          `json:"room_type"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.RoomID = model.RoomID
	r.CheckInDate = model.CheckInDate.Format(constant.BookingDateFormat)
	r.CheckOutDate = model.CheckOutDate.Format(constant.BookingDateFormat)
	r.TotalAmount = model.TotalAmount
	r.BookingStatus = model.BookingStatus
	r.PaymentStatus = model.PaymentStatus
	r.Username = model.Username
	r.UserEmail = model.UserEmail
	r.UserRole = model.UserRole
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
