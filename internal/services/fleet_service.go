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

// FleetService covers assignments: the Assign screen and the Active Fleet list.
type FleetService struct {
	Assignments repositories.AssignmentRepository
	Drivers     repositories.DriverRepository
	Vehicles    repositories.VehicleRepository
	RequestID   string
}

// ActiveFleet returns active assignments matching query.
func (s FleetService) ActiveFleet(ctx context.Context, query string) ([]models.Assignment, error) {
	all, err := s.Assignments.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]models.Assignment, 0, len(all))
	for _, a := range all {
		if a.Status == domain.StatusActive {
			active = append(active, a)
		}
	}
	return Filter(active, query, AssignmentSearchFields), nil
}

// Assign pairs a driver with a vehicle. The stored record denormalizes the
// driver's and vehicle's display fields.
func (s FleetService) Assign(ctx context.Context, req models.AssignRequest) (models.Assignment, error) {
	driverID := strings.TrimSpace(req.DriverID.String())
	vehicleID := strings.TrimSpace(req.VehicleID.String())
	if driverID == "" || vehicleID == "" {
		return models.Assignment{}, domain.ValidationError{Msg: "Please select both driver and vehicle."}
	}
	if strings.TrimSpace(req.AddedToInsurance) == "" {
		return models.Assignment{}, domain.ValidationError{Field: "added_to_insurance", Msg: "added_to_insurance is required"}
	}

	drivers, err := s.Drivers.List(ctx)
	if err != nil {
		return models.Assignment{}, err
	}
	vehicles, err := s.Vehicles.List(ctx)
	if err != nil {
		return models.Assignment{}, err
	}

	driver, ok := findDriver(drivers, driverID)
	if !ok {
		return models.Assignment{}, domain.NotFoundError{Resource: "driver " + driverID}
	}
	vehicle, ok := findVehicle(vehicles, vehicleID)
	if !ok {
		return models.Assignment{}, domain.NotFoundError{Resource: "vehicle " + vehicleID}
	}

	status := req.Status
	if status == "" {
		status = domain.StatusActive
	}
	if err := validateStatus(status); err != nil {
		return models.Assignment{}, err
	}

	a := models.Assignment{
		DriverID:         driver.DriverID,
		VehicleID:        vehicle.VehicleID,
		CabNumber:        vehicle.CabNumber,
		Make:             vehicle.Make,
		Model:            vehicle.Model,
		LicPlate:         vehicle.LicPlate,
		Email:            driver.Email,
		FirstName:        driver.FirstName,
		LastName:         driver.LastName,
		AddedToInsurance: req.AddedToInsurance,
		WeeklyBalance:    req.WeeklyBalance,
		Status:           status,
	}
	if err := s.Assignments.Create(ctx, a); err != nil {
		return models.Assignment{}, err
	}
	utils.LogEvent(s.RequestID, "fleet", "assign", fmt.Sprintf("driver_id=%s vehicle_id=%s cab=%s", driverID, vehicleID, a.CabNumber))
	return a, nil
}

func (s FleetService) Update(ctx context.Context, driverID, vehicleID string, patch models.AssignmentPatch) error {
	driverID = strings.TrimSpace(driverID)
	vehicleID = strings.TrimSpace(vehicleID)
	if driverID == "" || vehicleID == "" {
		return domain.ValidationError{Msg: "driver_id and vehicle_id are required"}
	}
	if err := validateStatus(patch.Status); err != nil {
		return err
	}
	if err := s.Assignments.Update(ctx, driverID, vehicleID, patch); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "fleet", "update", fmt.Sprintf("driver_id=%s vehicle_id=%s status=%s", driverID, vehicleID, patch.Status))
	return nil
}

func findDriver(drivers []models.Driver, id string) (models.Driver, bool) {
	for _, d := range drivers {
		if d.DriverID.String() == id {
			return d, true
		}
	}
	return models.Driver{}, false
}

func findVehicle(vehicles []models.Vehicle, id string) (models.Vehicle, bool) {
	for _, v := range vehicles {
		if v.VehicleID.String() == id {
			return v, true
		}
	}
	return models.Vehicle{}, false
}

// assignmentForCab prefers an active assignment holding cab, then any.
func assignmentForCab(assignments []models.Assignment, cab string) (models.Assignment, bool) {
	var fallback *models.Assignment
	for i, a := range assignments {
		if a.CabNumber != cab {
			continue
		}
		if a.Status == domain.StatusActive {
			return a, true
		}
		if fallback == nil {
			fallback = &assignments[i]
		}
	}
	if fallback != nil {
		return *fallback, true
	}
	return models.Assignment{}, false
}
