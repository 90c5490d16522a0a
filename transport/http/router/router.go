package router

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"teesheet/config"
	_ "teesheet/docs"
	"teesheet/internal/handlers/booking"
	"teesheet/internal/handlers/course"
)

type DomainHandlers struct {
	Booking booking.Handler
	Course  course.Handler
}

type Router struct {
	Config         *config.Config
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts the domain handlers at the paths the API contract fixes,
// without a version prefix.
func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Booking.Router(router)
	r.DomainHandlers.Course.Router(router)

	if r.Config.App.Swagger.Enable {
		router.Get("/docs/*", httpSwagger.Handler())
	}
}

func New(cfg *config.Config, domainHandlers DomainHandlers) Router {
	return Router{
		Config:         cfg,
		DomainHandlers: domainHandlers,
	}
}
