package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	authhandlers "github.com/ESChernov/steamrent/internal/handlers/auth"
	rentalhandlers "github.com/ESChernov/steamrent/internal/handlers/rentals"
	"github.com/ESChernov/steamrent/internal/service"
	"github.com/ESChernov/steamrent/pkg/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type RentalHandler interface {
	Claim(w http.ResponseWriter, r *http.Request)
	RequestCode(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	Extend(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	RentalHandler RentalHandler
	jwtService    auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		RentalHandler: rentalhandlers.New(s.RentalService),
		jwtService:    jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Route("/rentals", func(r chi.Router) {
			r.Post("/claim", h.RentalHandler.Claim)
			r.Post("/reviews", h.RentalHandler.Review)
			r.Post("/{id}/code", h.RentalHandler.RequestCode)
			r.Get("/{id}/status", h.RentalHandler.Status)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware(h.jwtService))
				r.Post("/{id}/extend", h.RentalHandler.Extend)
			})
		})
	})

	return r
}
