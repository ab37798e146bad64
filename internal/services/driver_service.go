package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taxiops/internal/domain"
	"taxiops/internal/domain/models"
	"taxiops/internal/repositories"
	"taxiops/internal/utils"
)

type DriverService struct {
	Repo      repositories.DriverRepository
	RequestID string
	Now       func() time.Time
}

type DriverListFilter struct {
	Query        string
	ExpiringOnly bool
}

func (s DriverService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

// List returns drivers matching the filter, each with its expiry flags.
func (s DriverService) List(ctx context.Context, f DriverListFilter) ([]models.DriverView, error) {
	drivers, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	out := make([]models.DriverView, 0, len(drivers))
	for _, d := range Filter(drivers, f.Query, DriverSearchFields) {
		view := DriverExpiry(d, now)
		if f.ExpiringOnly && view.ExpiringCount == 0 {
			continue
		}
		out = append(out, view)
	}
	return out, nil
}

func (s DriverService) Create(ctx context.Context, d models.Driver) error {
	if strings.TrimSpace(d.Password) == "" {
		return domain.ValidationError{Field: "password", Msg: "password is required"}
	}
	if d.SignedContract == "" {
		d.SignedContract = "no"
	}
	if err := validateSignedContract(d.SignedContract); err != nil {
		return err
	}
	if err := s.Repo.Create(ctx, d); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "drivers", "create", fmt.Sprintf("email=%s", d.Email))
	return nil
}

// Update sends the full edited record keyed by id.
func (s DriverService) Update(ctx context.Context, id string, d models.Driver) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ValidationError{Field: "driver_id", Msg: "driver_id is required"}
	}
	if d.DriverID == "" {
		d.DriverID = models.FlexString(id)
	}
	if d.DriverID.String() != id {
		return domain.ValidationError{Field: "driver_id", Msg: "driver_id does not match the URL"}
	}
	if err := validateSignedContract(d.SignedContract); err != nil {
		return err
	}
	if err := s.Repo.Update(ctx, id, d); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "drivers", "update", "driver_id="+id)
	return nil
}

func validateSignedContract(v string) error {
	switch v {
	case "", "yes", "no":
		return nil
	}
	return domain.ValidationError{Field: "signedContract", Msg: "signedContract must be yes or no"}
}
