package service

import (
	authhandlers "github.com/ESChernov/steamrent/internal/handlers/auth"
	"github.com/ESChernov/steamrent/internal/handlers/rentals"
	"github.com/ESChernov/steamrent/internal/repo"
	"github.com/ESChernov/steamrent/internal/service/authservice"
	"github.com/ESChernov/steamrent/internal/service/rentalservice"
	"github.com/ESChernov/steamrent/pkg/auth"
)

type Services struct {
	RentalService rentals.Service
	AuthService   authhandlers.Service
	Rental        *rentalservice.Service
}

func New(
	repo *repo.Repositories,
	codes rentalservice.CodeSource,
	notifier rentalservice.Notifier,
	rotator rentalservice.Rotator,
	opts rentalservice.Options,
	operatorLogin string,
	operatorHash string,
	jwtService auth.JWTServiceInterface,
) *Services {
	rentalService := rentalservice.New(repo.AccountRepo, repo.ActivityRepo, codes, notifier, rotator, opts)

	return &Services{
		RentalService: rentalService,
		AuthService:   authservice.New(operatorLogin, operatorHash, jwtService),
		Rental:        rentalService,
	}
}
