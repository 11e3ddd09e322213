package router

import (
	"github.com/go-chi/chi/v5"

	"roam/internal/handlers/auth"
	"roam/internal/handlers/location"
	"roam/internal/handlers/reservation"
	"roam/internal/handlers/review"
	"roam/internal/handlers/room"
	"roam/internal/handlers/user"
)

type DomainHandlers struct {
	Auth        auth.Handler
	User        user.Handler
	Location    location.Handler
	Room        room.Handler
	Reservation reservation.Handler
	Review      review.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Location.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
