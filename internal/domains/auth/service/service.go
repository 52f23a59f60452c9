package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"hms/config"
	"hms/infras/jwt"
	"hms/infras/mailer"
	"hms/infras/otel"
	"hms/internal/domains/auth/model/dto"
	userModel "hms/internal/domains/user/model"
	userDto "hms/internal/domains/user/model/dto"
	userRepo "hms/internal/domains/user/repository"
	"hms/shared"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/password"
	"hms/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.RegisterResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ForgetPassword(ctx context.Context, req dto.ForgetPasswordRequest) error
	ResetPassword(ctx context.Context, token string, req dto.ResetPasswordRequest) error
	Account(ctx context.Context, userID string) (userDto.UserResponse, error)
}

type serviceImpl struct {
	userRepo   userRepo.User
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
	mailer     mailer.Mailer
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel, jwt jwt.JWT, mailer mailer.Mailer) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
		mailer:     mailer,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.RegisterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	email := req.NormalizedEmail()

	if err = s.checkTaken(ctx, userModel.FieldEmail, email, "email already exists, use another"); err != nil {
		return res, err
	}

	if err = s.checkTaken(ctx, userModel.FieldUsername, req.Username, "username already taken, choose another"); err != nil {
		return res, err
	}

	if err = s.checkTaken(ctx, userModel.FieldPhone, req.Phone, "phone number already exists, use another"); err != nil {
		return res, err
	}

	role, err := s.resolveRole(ctx, req.Role, email)
	if err != nil {
		return res, err
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToUserModel(role, hashedPassword)

	if err = s.userRepo.Insert(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Username, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromModel(user, tokenPair)

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, s.emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.NotFound("user not found")
	}

	// Declared role must match before the credential is even checked.
	if user.Role != req.Role {
		log.Warn().Str("email", req.Email).Msg("login attempt with mismatched role")

		return res, failure.Forbidden("invalid role for this user")
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.Unauthorized("invalid email and password")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Username, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair, user.Role, user.Username)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ForgetPassword(ctx context.Context, req dto.ForgetPasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ForgetPassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, s.emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return failure.NotFound("user not found")
	}

	token, expiresAt, err := s.jwtService.GenerateResetToken(user.ID, user.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate reset token")

		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	// The token is stored alongside the user so consumption can verify it is
	// the most recently issued one.
	updatedFields := map[string]any{
		userModel.FieldResetToken:       token,
		userModel.FieldResetTokenExpiry: expiresAt,
		constant.FieldModifiedAt:        timezone.Now(),
		constant.FieldModifiedBy:        user.Username,
	}

	if err = s.userRepo.Update(ctx, updatedFields, shared.FilterByID(user.ID, userModel.FieldID, userModel.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to store reset token")

		return fmt.Errorf("failed to store reset token: %w", err)
	}

	resetLink := fmt.Sprintf("%s/%s", strings.TrimRight(s.cfg.Mail.ResetURL, "/"), token)
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>You requested a password reset. Click the link below to set a new password. The link expires in %d minutes.</p><p><a href=\"%s\">Reset your password</a></p>",
		user.Firstname, s.cfg.JWT.ResetExpireMin, resetLink,
	)

	if err = s.mailer.Send(ctx, user.Email, "Reset your password", body); err != nil {
		log.Error().Err(err).Str("email", user.Email).Msg("failed to send reset email")

		return fmt.Errorf("failed to send reset email: %w", err)
	}

	return nil
}

func (s *serviceImpl) ResetPassword(ctx context.Context, token string, req dto.ResetPasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResetPassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	claims, err := s.jwtService.ValidateToken(token, jwt.ResetToken)
	if err != nil {
		log.Warn().Err(err).Msg("reset attempt with bad token")

		return failure.BadRequestFromString("invalid or expired token")
	}

	user, err := s.userRepo.Get(ctx, shared.FilterByID(claims.UserID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" || user.ResetToken == nil || *user.ResetToken != token {
		return failure.BadRequestFromString("invalid or expired token")
	}

	if user.ResetTokenExpiry == nil || user.ResetTokenExpiry.Before(timezone.Now()) {
		return failure.BadRequestFromString("invalid or expired token")
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	// Consuming the token clears both stored fields.
	updatedFields := map[string]any{
		userModel.FieldPassword:         hashedPassword,
		userModel.FieldResetToken:       nil,
		userModel.FieldResetTokenExpiry: nil,
		constant.FieldModifiedAt:        timezone.Now(),
		constant.FieldModifiedBy:        user.Username,
	}

	if err = s.userRepo.Update(ctx, updatedFields, shared.FilterByID(user.ID, userModel.FieldID, userModel.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to reset password")

		return fmt.Errorf("failed to reset password: %w", err)
	}

	return nil
}

func (s *serviceImpl) Account(ctx context.Context, userID string) (res userDto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Account")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return res, failure.NotFound("user not found")
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) emailFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    strings.ToLower(strings.TrimSpace(email)),
				Table:    userModel.TableName,
			},
		},
	}
}

func (s *serviceImpl) checkTaken(ctx context.Context, field string, value, msg string) error {
	exists, err := s.userRepo.Exist(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    userModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Str("field", field).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return failure.Conflict(msg)
	}

	return nil
}

// resolveRole grants admin only to allow-listed emails while the admin count
// is under the configured cap. Everybody else registers as client, and an
// explicit admin request outside the allow-list is rejected outright.
func (s *serviceImpl) resolveRole(ctx context.Context, requested, email string) (string, error) {
	if requested != constant.RoleAdmin {
		return constant.RoleClient, nil
	}

	adminCount, err := s.userRepo.Count(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldRole,
				Operator: gDto.FilterOperatorEq,
				Value:    constant.RoleAdmin,
				Table:    userModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to count admins")

		return "", fmt.Errorf("failed to count admins: %w", err)
	}

	allowed := slices.Contains(s.cfg.App.Admin.AllowedEmails, email)
	if !allowed || adminCount >= s.cfg.App.Admin.MaxCount {
		return "", failure.BadRequestFromString("only specific emails can register as admin, or admin limit reached")
	}

	return constant.RoleAdmin, nil
}
