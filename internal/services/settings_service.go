package services

import (
	"context"
	"fmt"
	"strings"

	"taxiops/internal/domain"
	"taxiops/internal/domain/models"
	"taxiops/internal/repositories"
	"taxiops/internal/utils"
)

type SettingsService struct {
	Repo      repositories.SettingsRepository
	RequestID string
}

func (s SettingsService) Get(ctx context.Context) (models.TripSettings, error) {
	return s.Repo.Get(ctx)
}

// Save creates a settings record, or updates it when id is set.
func (s SettingsService) Save(ctx context.Context, id string, in models.TripSettings) error {
	in = withSettingsDefaults(in)
	if in.BaseFare < 0 || in.CostPerMile < 0 || in.CostPerMinute < 0 {
		return domain.ValidationError{Msg: "fares cannot be negative"}
	}

	// lastUpdated is stamped by the backend.
	in.LastUpdated = ""
	id = strings.TrimSpace(id)
	if id == "" {
		if err := s.Repo.Create(ctx, in); err != nil {
			return err
		}
		utils.LogEvent(s.RequestID, "settings", "create", fmt.Sprintf("base=%s currency=%s", utils.FormatMoney(in.BaseFare), in.Currency))
		return nil
	}

	in.ID = ""
	if err := s.Repo.Update(ctx, id, in); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "settings", "update", "id="+id)
	return nil
}

func withSettingsDefaults(in models.TripSettings) models.TripSettings {
	if strings.TrimSpace(in.Currency) == "" {
		in.Currency = "USD"
	}
	if strings.TrimSpace(in.UpdatedBy) == "" {
		in.UpdatedBy = "admin"
	}
	return in
}
