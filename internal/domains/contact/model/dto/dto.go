package dto

import (
	"hms/internal/domains/contact/model"
	"hms/shared"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	gModel "hms/shared/model"
	"hms/shared/timezone"

	"github.com/google/uuid"
)

type CreateContactRequest struct {
	Name    string `json:"name"    validate:"required,min=3,max=50"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"required,phone"`
	Message string `json:"message" validate:"required,min=5"`
}

func (c *CreateContactRequest) ToModel() model.Contact {
	return model.Contact{
		ID:      uuid.NewString(),
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Message: c.Message,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.ContextGuest,
			ModifiedBy: constant.ContextGuest,
		},
	}
}

type ContactResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	gDto.Metadata
}

func (r *ContactResponse) FromModel(model model.Contact) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Message = model.Message
	r.Metadata.FromModel(model.Metadata)
}

type GetContactsResponse struct {
	Contacts  []ContactResponse `json:"contacts"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetContactsResponse) FromModels(models []model.Contact, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Contacts = make([]ContactResponse, len(models))
	for i, mod := range models {
		r.Contacts[i].FromModel(mod)
	}
}
