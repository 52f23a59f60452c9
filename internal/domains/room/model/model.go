package model

import (
	"hms/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldRoomNumber    = "room_number"
	FieldRoomType      = "room_type"
	FieldDescription   = "description"
	FieldPricePerNight = "price_per_night"
	FieldStatus        = "status"
	FieldActive        = "active"
	FieldImage         = "image"
)

type Room struct {
	ID            string          `db:"id"`
	RoomNumber    string          `db:"room_number"`
	RoomType      string          `db:"room_type"`
	Description   string          `db:"description"`
	PricePerNight decimal.Decimal `db:"price_per_night"`
	Status        string          `db:"status"`
	Active        bool            `db:"active"`
	Image         string          `db:"image"`
	model.Metadata
}
