package services

import (
	"context"
	"strings"

	"taxiops/internal/domain"
	"taxiops/internal/domain/models"
	"taxiops/internal/repositories"
	"taxiops/internal/utils"
)

type VehicleService struct {
	Repo      repositories.VehicleRepository
	RequestID string
}

func (s VehicleService) List(ctx context.Context, query string) ([]models.Vehicle, error) {
	vehicles, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(vehicles, query, VehicleSearchFields), nil
}

func (s VehicleService) Create(ctx context.Context, v models.Vehicle) error {
	if v.Status == "" {
		v.Status = domain.StatusActive
	}
	if err := validateStatus(v.Status); err != nil {
		return err
	}
	if err := s.Repo.Create(ctx, v); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "vehicles", "create", "cab="+v.CabNumber)
	return nil
}

func (s VehicleService) Update(ctx context.Context, id string, v models.Vehicle) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ValidationError{Field: "vehicle_id", Msg: "vehicle_id is required"}
	}
	if v.VehicleID == "" {
		v.VehicleID = models.FlexString(id)
	}
	if v.VehicleID.String() != id {
		return domain.ValidationError{Field: "vehicle_id", Msg: "vehicle_id does not match the URL"}
	}
	if err := validateStatus(v.Status); err != nil {
		return err
	}
	if err := s.Repo.Update(ctx, id, v); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "vehicles", "update", "vehicle_id="+id)
	return nil
}

// FindByCab returns the first vehicle with the given cab number.
func FindByCab(vehicles []models.Vehicle, cab string) (models.Vehicle, bool) {
	for _, v := range vehicles {
		if v.CabNumber == cab {
			return v, true
		}
	}
	return models.Vehicle{}, false
}

func validateStatus(v string) error {
	switch v {
	case "", domain.StatusActive, domain.StatusInactive:
		return nil
	}
	return domain.ValidationError{Field: "status", Msg: "status must be active or inactive"}
}
