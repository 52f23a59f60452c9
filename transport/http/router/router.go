package router

import (
	"hms/internal/handlers/booking"
	"hms/internal/handlers/contact"
	"hms/internal/handlers/health"
	"hms/internal/handlers/room"
	"hms/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	User    user.Handler
	Room    room.Handler
	Booking booking.Handler
	Contact contact.Handler
	Health  health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)
	r.DomainHandlers.User.Router(router)
	r.DomainHandlers.Room.Router(router)
	r.DomainHandlers.Booking.Router(router)
	r.DomainHandlers.Contact.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
