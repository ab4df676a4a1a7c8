package service

import (
	"testing"

	"golang-stock-catalog/internal/api/config"
	"golang-stock-catalog/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(config.Auth{Email: "admin@admin.com", Password: "admin123"})

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "valid credentials", email: "admin@admin.com", password: "admin123", wantErr: nil},
		{name: "unknown email", email: "nobody@admin.com", password: "admin123", wantErr: entity.ErrEmailNotFound},
		{name: "wrong password", email: "admin@admin.com", password: "wrong", wantErr: entity.ErrInvalidPassword},
		{name: "empty credentials", email: "", password: "", wantErr: entity.ErrEmailNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := svc.Login(tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
