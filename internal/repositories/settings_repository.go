package repositories

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"taxiops/internal/domain/models"
)

type SettingsRepository struct {
	API Client
}

func (r SettingsRepository) Get(ctx context.Context) (models.TripSettings, error) {
	var out models.TripSettings
	if err := r.API.getJSON(ctx, "GET_SETTINGS_URL", r.API.Endpoints.GetSettings, &out); err != nil {
		return models.TripSettings{}, fmt.Errorf("get settings: %w", err)
	}
	return out, nil
}

func (r SettingsRepository) Create(ctx context.Context, s models.TripSettings) error {
	if err := r.API.sendJSON(ctx, http.MethodPost, "SETTINGS_URL", r.API.Endpoints.Settings, s, nil); err != nil {
		return fmt.Errorf("create settings: %w", err)
	}
	return nil
}

// Update appends id to EDIT_SETTINGS_URL as-is; the variable carries its own
// trailing separator.
func (r SettingsRepository) Update(ctx context.Context, id string, s models.TripSettings) error {
	base, err := requireURL("EDIT_SETTINGS_URL", r.API.Endpoints.EditSettings)
	if err != nil {
		return err
	}
	target := base + strings.TrimSpace(id)
	if err := r.API.sendJSON(ctx, http.MethodPut, "EDIT_SETTINGS_URL", target, s, nil); err != nil {
		return fmt.Errorf("update settings %s: %w", id, err)
	}
	return nil
}
