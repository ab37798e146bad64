package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"taxiops/internal/domain"
	"taxiops/internal/domain/models"
)

type TripRepository struct {
	API Client
}

// List returns all trips. The endpoint has answered with a bare array,
// {trips:[...]} and {data:{trips:[...]}} over time; all three are accepted.
func (r TripRepository) List(ctx context.Context) ([]models.Trip, error) {
	body, err := r.API.getRaw(ctx, "GET_ALL_TRIPS_URL", r.API.Endpoints.GetAllTrips)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	trips, err := decodeTrips(body)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	return trips, nil
}

func decodeTrips(body []byte) ([]models.Trip, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return []models.Trip{}, nil
	}

	if body[0] == '[' {
		var trips []models.Trip
		if err := json.Unmarshal(body, &trips); err != nil {
			return nil, domain.UpstreamError{Endpoint: "GET_ALL_TRIPS_URL", Msg: "invalid trips array", Err: err}
		}
		return nonNilTrips(trips), nil
	}

	var wrapped struct {
		Trips []models.Trip `json:"trips"`
		Data  *struct {
			Trips []models.Trip `json:"trips"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, domain.UpstreamError{Endpoint: "GET_ALL_TRIPS_URL", Msg: "invalid trips object", Err: err}
	}
	if wrapped.Trips != nil {
		return wrapped.Trips, nil
	}
	if wrapped.Data != nil {
		return nonNilTrips(wrapped.Data.Trips), nil
	}
	return []models.Trip{}, nil
}

func nonNilTrips(t []models.Trip) []models.Trip {
	if t == nil {
		return []models.Trip{}
	}
	return t
}
