package repositories

import (
	"context"
	"fmt"

	"taxiops/internal/domain/models"
)

type SessionRepository struct {
	API Client
}

// List returns the raw login/logout sessions (bare array).
func (r SessionRepository) List(ctx context.Context) ([]models.Session, error) {
	var out []models.Session
	if err := r.API.getJSON(ctx, "GET_SESSION_URL", r.API.Endpoints.GetSessions, &out); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	if out == nil {
		return []models.Session{}, nil
	}
	return out, nil
}

type LiveDriverRepository struct {
	API Client
}

// List returns the latest position of every driver known to the tracker.
func (r LiveDriverRepository) List(ctx context.Context) ([]models.LiveDriver, error) {
	var out []models.LiveDriver
	if err := r.API.getJSON(ctx, "LIVE_DRIVERS_URL", r.API.Endpoints.LiveDrivers, &out); err != nil {
		return nil, fmt.Errorf("list live drivers: %w", err)
	}
	if out == nil {
		return []models.LiveDriver{}, nil
	}
	return out, nil
}
