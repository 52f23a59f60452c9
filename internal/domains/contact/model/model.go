package model

import "hms/shared/model"

const (
	TableName  = "contacts"
	EntityName = "contact"

	FieldID      = "id"
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldMessage = "message"
)

type Contact struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Email   string `db:"email"`
	Phone   string `db:"phone"`
	Message string `db:"message"`
	model.Metadata
}
