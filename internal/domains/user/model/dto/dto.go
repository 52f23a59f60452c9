package dto

import (
	"hms/internal/domains/user/model"
	"hms/shared"
	gDto "hms/shared/dto"
)

type UserResponse struct {
	ID        string `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Firstname = model.Firstname
	r.Lastname = model.Lastname
	r.Username = model.Username
	r.Email = model.Email
	r.Role = model.Role
	r.Phone = model.Phone
	r.Address = model.Address
	r.Metadata.FromModel(model.Metadata)
}

type UpdateUserRequest struct {
	Firstname *string `db:"firstname" json:"firstname,omitempty" validate:"omitempty,min=3,max=20"`
	Lastname  *string `db:"lastname"  json:"lastname,omitempty"  validate:"omitempty,min=3,max=20"`
	Username  *string `db:"username"  json:"username,omitempty"  validate:"omitempty,min=3,max=20"`
	Email     *string `db:"email"     json:"email,omitempty"     validate:"omitempty,email"`
	Phone     *string `db:"phone"     json:"phone,omitempty"     validate:"omitempty,phone"`
	Address   *string `db:"address"   json:"address,omitempty"   validate:"omitempty,min=5"`
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
