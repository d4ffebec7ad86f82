package authservice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ESChernov/steamrent/pkg/auth"
)

func TestAuthenticate(t *testing.T) {
	hashService := &auth.HashService{}
	hash, err := hashService.HashPassword("correct horse")
	assert.NoError(t, err)

	jwtService := auth.NewJWTService("test-secret")
	service := New("operator", hash, jwtService)

	tests := []struct {
		name      string
		login     string
		password  string
		expectErr error
	}{
		{name: "Valid credentials", login: "operator", password: "correct horse"},
		{name: "Wrong password", login: "operator", password: "wrong", expectErr: ErrInvalidCredentials},
		{name: "Wrong login", login: "admin", password: "correct horse", expectErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.Authenticate(tt.login, tt.password)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthenticateUnconfigured(t *testing.T) {
	service := New("operator", "", auth.NewJWTService("test-secret"))

	err := service.Authenticate("operator", "anything")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestGenerateToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	service := New("operator", "unused", jwtService)

	token, err := service.GenerateToken("operator")
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "operator", claims.Subject)
}
