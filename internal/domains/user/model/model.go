package model

import (
	"time"

	"hms/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID               = "id"
	FieldFirstname        = "firstname"
	FieldLastname         = "lastname"
	FieldUsername         = "username"
	FieldEmail            = "email"
	FieldPassword         = "password"
	FieldRole             = "role"
	FieldPhone            = "phone"
	FieldAddress          = "address"
	FieldResetToken       = "reset_password_token"
	FieldResetTokenExpiry = "reset_token_expiry"
)

type User struct {
	ID               string     `db:"id"`
	Firstname        string     `db:"firstname"`
	Lastname         string     `db:"lastname"`
	Username         string     `db:"username"`
	Email            string     `db:"email"`
	Password         string     `db:"password"`
	Role             string     `db:"role"`
	Phone            string     `db:"phone"`
	Address          string     `db:"address"`
	ResetToken       *string    `db:"reset_password_token"`
	ResetTokenExpiry *time.Time `db:"reset_token_expiry"`
	model.Metadata
}
