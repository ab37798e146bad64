package repositories

import (
	"context"
	"fmt"
	"net/http"

	"taxiops/internal/domain/models"
)

type VehicleRepository struct {
	API Client
}

// List returns every vehicle from GET_VEHICLES_URL ({vehicles:[...]}).
func (r VehicleRepository) List(ctx context.Context) ([]models.Vehicle, error) {
	var out models.VehicleList
	if err := r.API.getJSON(ctx, "GET_VEHICLES_URL", r.API.Endpoints.GetVehicles, &out); err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	if out.Vehicles == nil {
		return []models.Vehicle{}, nil
	}
	return out.Vehicles, nil
}

func (r VehicleRepository) Create(ctx context.Context, v models.Vehicle) error {
	if err := r.API.sendJSON(ctx, http.MethodPost, "ADD_VEHICLES_URL", r.API.Endpoints.AddVehicles, v, nil); err != nil {
		return fmt.Errorf("create vehicle: %w", err)
	}
	return nil
}

func (r VehicleRepository) Update(ctx context.Context, id string, v models.Vehicle) error {
	base, err := requireURL("EDIT_VEHICLES_URL", r.API.Endpoints.EditVehicles)
	if err != nil {
		return err
	}
	if err := r.API.sendJSON(ctx, http.MethodPut, "EDIT_VEHICLES_URL", joinPath(base, id), v, nil); err != nil {
		return fmt.Errorf("update vehicle %s: %w", id, err)
	}
	return nil
}
