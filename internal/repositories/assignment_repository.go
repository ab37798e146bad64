package repositories

import (
	"context"
	"fmt"
	"net/http"

	"taxiops/internal/domain/models"
)

type AssignmentRepository struct {
	API Client
}

// List returns every assignment, active or not.
func (r AssignmentRepository) List(ctx context.Context) ([]models.Assignment, error) {
	var out models.AssignmentList
	if err := r.API.getJSON(ctx, "GET_ASSIGNED_URL", r.API.Endpoints.GetAssigned, &out); err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	if out.Assignments == nil {
		return []models.Assignment{}, nil
	}
	return out.Assignments, nil
}

func (r AssignmentRepository) Create(ctx context.Context, a models.Assignment) error {
	if err := r.API.sendJSON(ctx, http.MethodPost, "ASSIGN_URL", r.API.Endpoints.Assign, a, nil); err != nil {
		return fmt.Errorf("create assignment: %w", err)
	}
	return nil
}

// Update PUTs the editable fields to EDIT_ASSIGNING_URL/{driver_id}/{vehicle_id}.
func (r AssignmentRepository) Update(ctx context.Context, driverID, vehicleID string, patch models.AssignmentPatch) error {
	base, err := requireURL("EDIT_ASSIGNING_URL", r.API.Endpoints.EditAssigned)
	if err != nil {
		return err
	}
	target := joinPath(base, driverID, vehicleID)
	if err := r.API.sendJSON(ctx, http.MethodPut, "EDIT_ASSIGNING_URL", target, patch, nil); err != nil {
		return fmt.Errorf("update assignment %s/%s: %w", driverID, vehicleID, err)
	}
	return nil
}
