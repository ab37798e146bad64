package services

import (
	"taxiops/internal/domain/models"
	"taxiops/internal/utils"
)

// Filter keeps the items whose designated fields contain query as a
// case-insensitive substring. An empty query returns items unchanged.
func Filter[T any](items []T, query string, fields func(T) []string) []T {
	if query == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, f := range fields(item) {
			if utils.ContainsFold(f, query) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

func DriverSearchFields(d models.Driver) []string {
	return []string{d.FirstName, d.LastName}
}

func VehicleSearchFields(v models.Vehicle) []string {
	return []string{v.CabNumber, v.Make, v.Model, v.LicPlate, v.Color}
}

func AssignmentSearchFields(a models.Assignment) []string {
	return []string{a.FirstName, a.LastName, a.Make, a.Model, a.LicPlate, a.CabNumber}
}

func TripSearchFields(t models.Trip) []string {
	return []string{t.CabNumber, t.DriverID.String(), t.VehicleID.String(), t.TripStatus, t.ID}
}

func SessionGroupSearchFields(g models.SessionGroup) []string {
	return []string{g.DriverID.String(), g.CabNumber, g.Day}
}
