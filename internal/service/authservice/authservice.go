package authservice

import (
	"errors"
	"time"

	"github.com/ESChernov/steamrent/pkg/auth"
)

var ErrInvalidCredentials = errors.New("invalid login or password")

const tokenTTL = 24 * time.Hour

// Service authenticates the operator account. There is a single operator,
// configured by login and bcrypt password hash; no user registry exists.
type Service struct {
	operatorLogin string
	operatorHash  string
	hashService   auth.HashServiceInterface
	jwtService    auth.JWTServiceInterface
}

func New(operatorLogin, operatorHash string, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		operatorLogin: operatorLogin,
		operatorHash:  operatorHash,
		hashService:   &auth.HashService{},
		jwtService:    jwtService,
	}
}

func (s *Service) Authenticate(login, password string) error {
	if s.operatorHash == "" {
		return errors.New("operator password is not configured")
	}
	if login != s.operatorLogin || !s.hashService.ComparePassword(s.operatorHash, password) {
		return ErrInvalidCredentials
	}
	return nil
}

func (s *Service) GenerateToken(subject string) (string, error) {
	return s.jwtService.GenerateJWT(subject, time.Now().Add(tokenTTL))
}
