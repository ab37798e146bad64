package services

import (
	"context"

	"taxiops/internal/domain"
	"taxiops/internal/domain/models"
	"taxiops/internal/repositories"
)

type TripService struct {
	Repo repositories.TripRepository
}

func (s TripService) List(ctx context.Context, query string) ([]models.Trip, error) {
	trips, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(trips, query, TripSearchFields), nil
}

// Get finds one trip by its _id. The backend has no single-trip endpoint.
func (s TripService) Get(ctx context.Context, id string) (models.Trip, error) {
	trips, err := s.Repo.List(ctx)
	if err != nil {
		return models.Trip{}, err
	}
	for _, t := range trips {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Trip{}, domain.NotFoundError{Resource: "trip " + id}
}
