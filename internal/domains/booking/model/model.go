package model

import (
	"fmt"
	"time"

	roomModel "hms/internal/domains/room/model"
	userModel "hms/internal/domains/user/model"
	"hms/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldUserID        = "user_id"
	FieldRoomID        = "room_id"
	FieldCheckInDate   = "check_in_date"
	FieldCheckOutDate  = "check_out_date"
	FieldTotalAmount   = "total_amount"
	FieldBookingStatus = "booking_status"
	FieldPaymentStatus = "payment_status"
)

type Booking struct {
	ID            string          `db:"id"`
	UserID        string          `db:"user_id"`
	RoomID        string          `db:"room_id"`
	CheckInDate   time.Time       `db:"check_in_date"`
	CheckOutDate  time.Time       `db:"check_out_date"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	BookingStatus string          `db:"booking_status"`
	PaymentStatus string          `db:"payment_status"`

	// Joined for display.
	Username   string `db:"username"    table:"users"`
	UserEmail  string `db:"user_email"  table:"users" column:"email"`
	UserRole   string `db:"user_role"   table:"users" column:"role"`
	RoomNumber string `db:"room_number" table:"rooms"`
	RoomType   string `db:"room_type"   table:"rooms"`

	model.Metadata
}

// GetJoinQuery expands booking reads across the owning user and room.
func (b Booking) GetJoinQuery() string {
	return fmt.Sprintf(
		"JOIN %s ON %s.id = %s.%s JOIN %s ON %s.id = %s.%s",
		userModel.TableName, userModel.TableName, TableName, FieldUserID,
		roomModel.TableName, roomModel.TableName, TableName, FieldRoomID,
	)
}
