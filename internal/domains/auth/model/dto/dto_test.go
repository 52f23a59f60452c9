package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hms/infras/jwt"
	"hms/internal/domains/auth/model/dto"
	"hms/shared/constant"
)

func TestRegisterRequest_NormalizedEmail(t *testing.T) {
	req := dto.RegisterRequest{Email: "  Guest@Example.COM "}

	assert.Equal(t, "guest@example.com", req.NormalizedEmail())
}

func TestRegisterRequest_ToUserModel(t *testing.T) {
	req := dto.RegisterRequest{
		Firstname: "John",
		Lastname:  "Doe",
		Username:  "johndoe",
		Email:     "John@Example.com",
		Password:  "plaintext",
		Role:      "client",
		Phone:     "03123456789",
		Address:   "1 Main Street",
	}

	user := req.ToUserModel(constant.RoleClient, "hashed-password")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "John", user.Firstname)
	assert.Equal(t, "johndoe", user.Username)
	assert.Equal(t, "john@example.com", user.Email)
	assert.Equal(t, "hashed-password", user.Password)
	assert.Equal(t, constant.RoleClient, user.Role)
	assert.Equal(t, constant.ContextGuest, user.CreatedBy)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestRegisterResponse_FromModel(t *testing.T) {
	req := dto.RegisterRequest{
		Firstname: "Jane",
		Lastname:  "Doe",
		Username:  "janedoe",
		Email:     "jane@example.com",
		Phone:     "03123456780",
		Address:   "2 Main Street",
	}
	user := req.ToUserModel(constant.RoleClient, "hashed")

	tokenPair := &jwt.TokenPair{
		AccessToken: "test-access-token",
		ExpiresIn:   3600,
	}

	var response dto.RegisterResponse
	response.FromModel(user, tokenPair)

	assert.Equal(t, user.ID, response.User.ID)
	assert.Equal(t, "test-access-token", response.AccessToken)
	assert.Equal(t, int64(3600), response.ExpiresIn)
}

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		ExpiresIn:    900,
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair, constant.RoleAdmin, "admin1")

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, int64(900), response.ExpiresIn)
	assert.Equal(t, constant.RoleAdmin, response.Role)
	assert.Equal(t, "admin1", response.Username)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
		ExpiresIn:    900,
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, int64(900), response.ExpiresIn)
}
