package dto

import (
	"hms/internal/domains/room/model"
	"hms/shared"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	gModel "hms/shared/model"
	"hms/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateRoomRequest struct {
	RoomNumber    string          `json:"room_number"    validate:"required,max=20"`
	RoomType      string          `json:"room_type"      validate:"required,oneof=single double suite family"`
	Description   string          `json:"description"    validate:"required"`
	PricePerNight decimal.Decimal `json:"price_per_night" validate:"required"`
	Status        string          `json:"status"         validate:"omitempty,oneof=available booked maintenance"`
	Active        *bool           `json:"active"         validate:"omitempty"`
	Image         string          `json:"image"          validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	status := c.Status
	if status == "" {
		status = constant.RoomStatusAvailable
	}

	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		ID:            uuid.NewString(),
		RoomNumber:    c.RoomNumber,
		RoomType:      c.RoomType,
		Description:   c.Description,
		PricePerNight: c.PricePerNight,
		Status:        status,
		Active:        active,
		Image:         c.Image,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber    *string          `db:"room_number"     json:"room_number,omitempty"     validate:"omitempty,max=20"`
	RoomType      *string          `db:"room_type"       json:"room_type,omitempty"       validate:"omitempty,oneof=single double suite family"`
	Description   *string          `db:"description"     json:"description,omitempty"`
	PricePerNight *decimal.Decimal `db:"price_per_night" json:"price_per_night,omitempty"`
	Status        *string          `db:"status"          json:"status,omitempty"          validate:"omitempty,oneof=available booked maintenance"`
	Active        *bool            `db:"active"          json:"active,omitempty"`
	Image         *string          `db:"image"           json:"image,omitempty"           validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
}

type RoomResponse struct {
	ID            string          `json:"id"`
	RoomNumber    string          `json:"room_number"`
	RoomType      string          `json:"room_type"`
	Description   string          `json:"description"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	Status        string          `json:"status"`
	Active        bool            `json:"active"`
	Image         string          `json:"image"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.Description = model.Description
	r.PricePerNight = model.PricePerNight
	r.Status = model.Status
	r.Active = model.Active
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
