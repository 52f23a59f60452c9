package user

import (
	"net/http"

	"hms/infras/otel"
	authDto "hms/internal/domains/auth/model/dto"
	authService "hms/internal/domains/auth/service"
	"hms/internal/domains/user/model"
	"hms/internal/domains/user/model/dto"
	"hms/internal/domains/user/service"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/validator"
	"hms/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service     service.User
	authService authService.Auth
	otel        otel.Otel
}

func New(service service.User, authService authService.Auth, otel otel.Otel) Handler {
	return Handler{
		service:     service,
		authService: authService,
		otel:        otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)
		r.Post("/refresh-token", handler.RefreshToken)
		r.Post("/forget-password", handler.ForgetPassword)
		r.Post("/reset-password/{token}", handler.ResetPassword)
		r.Get("/account", handler.Account)
		r.Get("/get-users", handler.GetUsers)
		r.Put("/update/{id}", handler.UpdateUser)
		r.Delete("/delete/{id}", handler.DeleteUser)
	})
}

// Register handles user registration
// @Summary Register a new user
// @Description Register a new user. Admin registration is restricted to the configured allow list.
// @Tags User
// @Accept json
// @Produce json
// @Param request body authDto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Data[authDto.RegisterResponse] "User registered successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /users/register [post]
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := authDto.RegisterRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.authService.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User registered successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// Login handles user login
// @Summary Login a user
// @Description Login with email, password and the declared role.
// @Tags User
// @Accept json
// @Produce json
// @Param request body authDto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[authDto.LoginResponse] "User logged in successfully"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /users/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := authDto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.authService.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to login user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User logged in successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// RefreshToken handles token refresh
// @Summary Refresh user token
// @Description Exchange a refresh token for a new token pair.
// @Tags User
// @Accept json
// @Produce json
// @Param request body authDto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} response.Data[authDto.RefreshTokenResponse] "Token refreshed successfully"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /users/refresh-token [post]
func (handler *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshToken")
	defer scope.End()

	req := authDto.RefreshTokenRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.authService.RefreshToken(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refresh token")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Token refreshed successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// ForgetPassword starts the password reset flow.
// @Summary Request a password reset
// @Description Send a password reset link to the given email address.
// @Tags User
// @Accept json
// @Produce json
// @Param request body authDto.ForgetPasswordRequest true "Forget Password Request"
// @Success 200 {object} response.Message "Reset email sent"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /users/forget-password [post]
func (handler *Handler) ForgetPassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ForgetPassword")
	defer scope.End()

	req := authDto.ForgetPasswordRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.authService.ForgetPassword(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to process forget password request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Password reset email sent")

	response.WithMessage(w, http.StatusOK, "Password reset email sent")
}

// ResetPassword consumes a reset token and sets a new password.
// @Summary Reset password
// @Description Set a new password using the token from the reset email.
// @Tags User
// @Accept json
// @Produce json
// @Param token path string true "Reset token"
// @Param request body authDto.ResetPasswordRequest true "Reset Password Request"
// @Success 200 {object} response.Message "Password reset successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /users/reset-password/{token} [post]
func (handler *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResetPassword")
	defer scope.End()

	token := chi.URLParam(r, constant.RequestParamToken)

	req := authDto.ResetPasswordRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.authService.ResetPassword(ctx, token, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reset password")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Password reset successfully")

	response.WithMessage(w, http.StatusOK, "Password reset successfully")
}

// Account returns the authenticated user's profile.
// @Summary Get current account
// @Description Retrieve the profile of the authenticated user.
// @Tags User
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.UserResponse] "Account details"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /users/account [get]
// @Security BearerAuth
func (handler *Handler) Account(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Account")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		err := failure.Unauthorized("user not authenticated")
		scope.TraceError(err)
		log.Error().Err(err).Msg("missing user id in context")

		response.WithError(w, err)

		return
	}

	res, err := handler.authService.Account(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get account")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Account retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetUsers retrieves all users based on query parameters.
// @Summary Get all users
// @Description Retrieve all users with optional filtering and pagination.
// @Tags User
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param username query string false "Filter by username"
// @Param email query string false "Filter by email"
// @Param role query string false "Filter by role (admin, client)"
// @Success 200 {object} response.Data[dto.GetUsersResponse] "List of users"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /users/get-users [get]
// @Security BearerAuth
func (handler *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUsers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if username := r.URL.Query().Get(model.FieldUsername); username != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldUsername,
			Operator: gDto.FilterOperatorLike,
			Value:    username,
			Table:    model.TableName,
		})
	}

	if email := r.URL.Query().Get(model.FieldEmail); email != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEmail,
			Operator: gDto.FilterOperatorLike,
			Value:    email,
			Table:    model.TableName,
		})
	}

	if role := r.URL.Query().Get(model.FieldRole); role != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRole,
			Operator: gDto.FilterOperatorEq,
			Value:    role,
			Table:    model.TableName,
		})
	}

	users, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get users")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Users retrieved successfully")

	response.WithJSON(w, http.StatusOK, users)
}

// UpdateUser updates an existing user by its ID.
// @Summary Update a user by ID
// @Description Update the profile fields of an existing user.
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.UpdateUserRequest true "User payload"
// @Success 200 {object} response.Message "User updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /users/update/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateUser")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateUserRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User updated successfully")

	response.WithMessage(w, http.StatusOK, "User updated successfully")
}

// DeleteUser removes a user by its ID.
// @Summary Delete a user by ID
// @Description Remove a user from the system.
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Message "User deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /users/delete/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteUser")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User deleted successfully")

	response.WithMessage(w, http.StatusOK, "User deleted successfully")
}
