package repositories

import (
	"context"
	"fmt"
	"net/http"

	"taxiops/internal/domain/models"
)

type DriverRepository struct {
	API Client
}

// List returns every driver from GET_DRIVERS_URL ({drivers:[...]}).
func (r DriverRepository) List(ctx context.Context) ([]models.Driver, error) {
	var out models.DriverList
	if err := r.API.getJSON(ctx, "GET_DRIVERS_URL", r.API.Endpoints.GetDrivers, &out); err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	if out.Drivers == nil {
		return []models.Driver{}, nil
	}
	return out.Drivers, nil
}

func (r DriverRepository) Create(ctx context.Context, d models.Driver) error {
	if err := r.API.sendJSON(ctx, http.MethodPost, "ADD_DRIVERS_URL", r.API.Endpoints.AddDrivers, d, nil); err != nil {
		return fmt.Errorf("create driver: %w", err)
	}
	return nil
}

// Update PUTs the full record to EDIT_DRIVERS_URL/{id}.
func (r DriverRepository) Update(ctx context.Context, id string, d models.Driver) error {
	base, err := requireURL("EDIT_DRIVERS_URL", r.API.Endpoints.EditDrivers)
	if err != nil {
		return err
	}
	if err := r.API.sendJSON(ctx, http.MethodPut, "EDIT_DRIVERS_URL", joinPath(base, id), d, nil); err != nil {
		return fmt.Errorf("update driver %s: %w", id, err)
	}
	return nil
}
