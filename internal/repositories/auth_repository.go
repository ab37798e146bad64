package repositories

import (
	"context"
	"fmt"
	"net/http"

	"taxiops/internal/domain/models"
)

type AuthRepository struct {
	API Client
}

// Login forwards credentials to LOGIN_URL.
func (r AuthRepository) Login(ctx context.Context, creds models.Credentials) (models.LoginResult, error) {
	var out models.LoginResult
	if err := r.API.sendJSON(ctx, http.MethodPost, "LOGIN_URL", r.API.Endpoints.Login, creds, &out); err != nil {
		return models.LoginResult{}, fmt.Errorf("login: %w", err)
	}
	return out, nil
}

// Signup creates an admin account through SIGNUP_URL.
func (r AuthRepository) Signup(ctx context.Context, admin models.AdminSignup) error {
	if err := r.API.sendJSON(ctx, http.MethodPost, "SIGNUP_URL", r.API.Endpoints.Signup, admin, nil); err != nil {
		return fmt.Errorf("signup admin: %w", err)
	}
	return nil
}
