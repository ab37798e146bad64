package models

// Assignment pairs a driver with a vehicle.
type Assignment struct {
	DriverID         FlexString `json:"driver_id"`
	VehicleID        FlexString `json:"vehicle_id"`
	CabNumber        string     `json:"cabNumber"`
	Make             string     `json:"make"`
	Model            string     `json:"model"`
	LicPlate         string     `json:"lic_plate"`
	Email            string     `json:"email"`
	FirstName        string     `json:"firstName"`
	LastName         string     `json:"lastName"`
	AddedToInsurance string     `json:"added_to_insurance"`
	WeeklyBalance    float64    `json:"weekly_balance"`
	Status           string     `json:"status"`
}

// AssignmentPatch is the editable part of an assignment. The key fields
// travel in the URL, never in the body.
type AssignmentPatch struct {
	AddedToInsurance string  `json:"added_to_insurance" binding:"required"`
	WeeklyBalance    float64 `json:"weekly_balance"`
	Status           string  `json:"status" binding:"omitempty,oneof=active inactive"`
}

// AssignRequest is what the Assign screen submits.
type AssignRequest struct {
	DriverID         FlexString `json:"driver_id"`
	VehicleID        FlexString `json:"vehicle_id"`
	AddedToInsurance string     `json:"added_to_insurance"`
	WeeklyBalance    float64    `json:"weekly_balance"`
	Status           string     `json:"status"`
}

type AssignmentList struct {
	Assignments []Assignment `json:"assignments"`
}
