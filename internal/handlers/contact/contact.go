package contact

import (
	"net/http"

	"hms/infras/otel"
	"hms/internal/domains/contact/model"
	"hms/internal/domains/contact/model/dto"
	"hms/internal/domains/contact/service"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/validator"
	"hms/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Contact
	otel    otel.Otel
}

func New(service service.Contact, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/contact", func(r chi.Router) {
		r.Post("/create-contact", handler.CreateContact)
		r.Get("/get-contacts", handler.GetContacts)
		r.Delete("/del-contact/{id}", handler.DeleteContact)
	})
}

// CreateContact stores a message from the public contact form.
// @Summary Submit a contact message
// @Description Store a message sent through the public contact form.
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.CreateContactRequest true "Contact payload"
// @Success 201 {object} response.Message "Message sent successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /contact/create-contact [post]
func (handler *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateContact")
	defer scope.End()

	req := dto.CreateContactRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create contact message")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contact message created successfully")

	response.WithMessage(w, http.StatusCreated, "Message sent successfully")
}

// GetContacts retrieves all contact messages based on query parameters.
// @Summary Get all contact messages
// @Description Retrieve all messages from the contact inbox with optional filtering and pagination.
// @Tags Contact
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param email query string false "Filter by sender email"
// @Success 200 {object} response.Data[dto.GetContactsResponse] "List of contact messages"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /contact/get-contacts [get]
// @Security BearerAuth
func (handler *Handler) GetContacts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContacts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if email := r.URL.Query().Get(model.FieldEmail); email != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEmail,
			Operator: gDto.FilterOperatorLike,
			Value:    email,
			Table:    model.TableName,
		})
	}

	contacts, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contact messages")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contact messages retrieved successfully")

	response.WithJSON(w, http.StatusOK, contacts)
}

// DeleteContact removes a contact message by its ID.
// @Summary Delete a contact message by ID
// @Description Remove a message from the contact inbox.
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} response.Message "Message deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /contact/del-contact/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteContact")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete contact message")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contact message deleted successfully")

	response.WithMessage(w, http.StatusOK, "Message deleted successfully")
}
