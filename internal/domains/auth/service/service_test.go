package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hms/config"
	"hms/infras/jwt"
	jwtMocks "hms/infras/jwt/mocks"
	mailerMocks "hms/infras/mailer/mocks"
	"hms/infras/otel/mocks"
	"hms/internal/domains/auth/model/dto"
	"hms/internal/domains/auth/service"
	userMocks "hms/internal/domains/user/mocks"
	userModel "hms/internal/domains/user/model"
	"hms/shared/constant"
	"hms/shared/failure"
	gModel "hms/shared/model"
	"hms/shared/timezone"
)

// bcrypt hash of "password"
const passwordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

func validUser() userModel.User {
	return userModel.User{
		ID:        "user-id-123",
		Firstname: "Test",
		Lastname:  "User",
		Username:  "testuser",
		Email:     "test@example.com",
		Password:  passwordHash,
		Role:      constant.RoleClient,
		Phone:     "03123456789",
		Address:   "1 Main Street",
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockMailer := mailerMocks.NewMockMailer(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, cfg, mockOtel, mockJWT, mockMailer)

	user := validUser()

	tests := []struct {
		name         string
		req          dto.LoginRequest
		setupMock    func()
		wantErr      bool
		expectedCode int
	}{
		{
			name: "successful login",
			req: dto.LoginRequest{
				Email:    "test@example.com",
				Password: "password",
				Role:     constant.RoleClient,
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(user.ID, user.Username, user.Email, user.Role).
					Return(&jwt.TokenPair{
						AccessToken:  "access-token",
						RefreshToken: "refresh-token",
						ExpiresIn:    900,
					}, nil)
			},
			wantErr: false,
		},
		{
			name: "user not found",
			req: dto.LoginRequest{
				Email:    "nonexistent@example.com",
				Password: "password",
				Role:     constant.RoleClient,
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr:      true,
			expectedCode: http.StatusNotFound,
		},
		{
			name: "role mismatch is rejected before the password check",
			req: dto.LoginRequest{
				Email:    "test@example.com",
				Password: "password",
				Role:     constant.RoleAdmin,
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)
			},
			wantErr:      true,
			expectedCode: http.StatusForbidden,
		},
		{
			name: "wrong password",
			req: dto.LoginRequest{
				Email:    "test@example.com",
				Password: "wrongpassword",
				Role:     constant.RoleClient,
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)
			},
			wantErr:      true,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "repository error",
			req: dto.LoginRequest{
				Email:    "test@example.com",
				Password: "password",
				Role:     constant.RoleClient,
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.expectedCode != 0 {
					assert.Equal(t, tt.expectedCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
			assert.Equal(t, user.Role, res.Role)
			assert.Equal(t, user.Username, res.Username)
		})
	}
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockMailer := mailerMocks.NewMockMailer(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.App.Admin.AllowedEmails = []string{"boss@example.com"}
	cfg.App.Admin.MaxCount = 2

	svc := service.New(mockUserRepo, cfg, mockOtel, mockJWT, mockMailer)

	baseReq := dto.RegisterRequest{
		Firstname: "John",
		Lastname:  "Doe",
		Username:  "johndoe",
		Email:     "John@Example.com",
		Password:  "secret123",
		Role:      constant.RoleClient,
		Phone:     "03123456789",
		Address:   "1 Main Street",
	}

	tests := []struct {
		name         string
		req          dto.RegisterRequest
		setupMock    func()
		wantErr      bool
		expectedCode int
		expectedRole string
	}{
		{
			name: "successful client registration",
			req:  baseReq,
			setupMock: func() {
				mockUserRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(3)
				mockUserRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any(), "johndoe", "john@example.com", constant.RoleClient).
					Return(&jwt.TokenPair{AccessToken: "access-token", ExpiresIn: 900}, nil)
			},
			expectedRole: constant.RoleClient,
		},
		{
			name: "duplicate email stops before any write",
			req:  baseReq,
			setupMock: func() {
				mockUserRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:      true,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "admin request outside allow list is rejected",
			req: func() dto.RegisterRequest {
				r := baseReq
				r.Role = constant.RoleAdmin
				return r
			}(),
			setupMock: func() {
				mockUserRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(3)
				mockUserRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
			},
			wantErr:      true,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "allow-listed admin over the cap is rejected",
			req: func() dto.RegisterRequest {
				r := baseReq
				r.Email = "boss@example.com"
				r.Role = constant.RoleAdmin
				return r
			}(),
			setupMock: func() {
				mockUserRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(3)
				mockUserRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
			},
			wantErr:      true,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "allow-listed admin under the cap succeeds",
			req: func() dto.RegisterRequest {
				r := baseReq
				r.Email = "boss@example.com"
				r.Role = constant.RoleAdmin
				return r
			}(),
			setupMock: func() {
				mockUserRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(3)
				mockUserRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
				mockUserRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any(), "johndoe", "boss@example.com", constant.RoleAdmin).
					Return(&jwt.TokenPair{AccessToken: "access-token", ExpiresIn: 900}, nil)
			},
			expectedRole: constant.RoleAdmin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Register(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.expectedCode != 0 {
					assert.Equal(t, tt.expectedCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedRole, res.User.Role)
			assert.Equal(t, "access-token", res.AccessToken)
		})
	}
}

func TestAuthService_ForgetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockMailer := mailerMocks.NewMockMailer(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Mail.ResetURL = "https://hms.example.com/reset-password/"
	cfg.JWT.ResetExpireMin = 60

	svc := service.New(mockUserRepo, cfg, mockOtel, mockJWT, mockMailer)

	user := validUser()
	expiresAt := timezone.Now().Add(time.Hour)

	t.Run("sends reset email with the issued token", func(t *testing.T) {
		mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
		mockJWT.EXPECT().GenerateResetToken(user.ID, user.Email).Return("reset-token", expiresAt, nil)
		mockUserRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, "reset-token", fields[userModel.FieldResetToken])
				assert.Equal(t, expiresAt, fields[userModel.FieldResetTokenExpiry])
				return nil
			})
		mockMailer.EXPECT().
			Send(gomock.Any(), user.Email, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, body string) error {
				assert.Contains(t, body, "https://hms.example.com/reset-password/reset-token")
				return nil
			})

		err := svc.ForgetPassword(context.Background(), dto.ForgetPasswordRequest{Email: user.Email})

		assert.NoError(t, err)
	})

	t.Run("unknown email returns not found", func(t *testing.T) {
		mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)

		err := svc.ForgetPassword(context.Background(), dto.ForgetPasswordRequest{Email: "nobody@example.com"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockMailer := mailerMocks.NewMockMailer(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, cfg, mockOtel, mockJWT, mockMailer)

	const token = "reset-token"

	storedToken := token
	validExpiry := timezone.Now().Add(30 * time.Minute)
	expiredExpiry := timezone.Now().Add(-time.Minute)

	userWithToken := validUser()
	userWithToken.ResetToken = &storedToken
	userWithToken.ResetTokenExpiry = &validExpiry

	claims := &jwt.Claims{UserID: userWithToken.ID, Email: userWithToken.Email}

	t.Run("consuming the token clears it and sets the new password", func(t *testing.T) {
		mockJWT.EXPECT().ValidateToken(token, jwt.ResetToken).Return(claims, nil)
		mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userWithToken, nil)
		mockUserRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Nil(t, fields[userModel.FieldResetToken])
				assert.Nil(t, fields[userModel.FieldResetTokenExpiry])
				assert.NotEmpty(t, fields[userModel.FieldPassword])
				return nil
			})

		err := svc.ResetPassword(context.Background(), token, dto.ResetPasswordRequest{NewPassword: "newsecret"})

		assert.NoError(t, err)
	})

	t.Run("invalid token is a bad request", func(t *testing.T) {
		mockJWT.EXPECT().ValidateToken("bogus", jwt.ResetToken).Return(nil, jwt.ErrInvalidToken)

		err := svc.ResetPassword(context.Background(), "bogus", dto.ResetPasswordRequest{NewPassword: "newsecret"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("token mismatch with the stored one is rejected", func(t *testing.T) {
		otherToken := "stale-token"
		staleUser := validUser()
		staleUser.ResetToken = &otherToken
		staleUser.ResetTokenExpiry = &validExpiry

		mockJWT.EXPECT().ValidateToken(token, jwt.ResetToken).Return(claims, nil)
		mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staleUser, nil)

		err := svc.ResetPassword(context.Background(), token, dto.ResetPasswordRequest{NewPassword: "newsecret"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("expired stored token is rejected", func(t *testing.T) {
		expiredUser := validUser()
		expiredUser.ResetToken = &storedToken
		expiredUser.ResetTokenExpiry = &expiredExpiry

		mockJWT.EXPECT().ValidateToken(token, jwt.ResetToken).Return(claims, nil)
		mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(expiredUser, nil)

		err := svc.ResetPassword(context.Background(), token, dto.ResetPasswordRequest{NewPassword: "newsecret"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestAuthService_Account(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockMailer := mailerMocks.NewMockMailer(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, &config.Config{}, mockOtel, mockJWT, mockMailer)

	user := validUser()

	t.Run("returns the profile", func(t *testing.T) {
		mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)

		res, err := svc.Account(context.Background(), user.ID)

		assert.NoError(t, err)
		assert.Equal(t, user.ID, res.ID)
		assert.Equal(t, user.Email, res.Email)
	})

	t.Run("unknown user returns not found", func(t *testing.T) {
		mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)

		_, err := svc.Account(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
