package dto

import (
	"strings"

	"hms/infras/jwt"
	userModel "hms/internal/domains/user/model"
	userDto "hms/internal/domains/user/model/dto"
	"hms/shared/constant"
	gModel "hms/shared/model"
	"hms/shared/timezone"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Firstname string `json:"firstname" validate:"required,min=3,max=20"`
	Lastname  string `json:"lastname"  validate:"required,min=3,max=20"`
	Username  string `json:"username"  validate:"required,min=3,max=20"`
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=6"`
	Role      string `json:"role"      validate:"omitempty,oneof=admin client"`
	Phone     string `json:"phone"     validate:"required,phone"`
	Address   string `json:"address"   validate:"required,min=5"`
}

// NormalizedEmail returns the email lowered and trimmed, the form it is
// stored and matched in.
func (r *RegisterRequest) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *RegisterRequest) ToUserModel(role, hashedPassword string) userModel.User {
	return userModel.User{
		ID:        uuid.NewString(),
		Firstname: r.Firstname,
		Lastname:  r.Lastname,
		Username:  r.Username,
		Email:     r.NormalizedEmail(),
		Password:  hashedPassword,
		Role:      role,
		Phone:     r.Phone,
		Address:   r.Address,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.ContextGuest,
			ModifiedBy: constant.ContextGuest,
		},
	}
}

type RegisterResponse struct {
	User        userDto.UserResponse `json:"user"`
	AccessToken string               `json:"access_token"`
	ExpiresIn   int64                `json:"expires_in"`
}

func (r *RegisterResponse) FromModel(model userModel.User, tokenPair *jwt.TokenPair) {
	r.User.FromModel(model)
	r.AccessToken = tokenPair.AccessToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=admin client"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	Role         string `json:"role"`
	Username     string `json:"username"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair, role, username string) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
	l.Role = role
	l.Username = username
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ForgetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=6"`
}
