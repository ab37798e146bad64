package models

// Vehicle mirrors the backend vehicle record. regis_expriry keeps the
// backend's spelling.
type Vehicle struct {
	VehicleID   FlexString `json:"vehicle_id,omitempty"`
	CabNumber   string     `json:"cabNumber" binding:"required"`
	VINNumber   string     `json:"vinNumber"`
	RegisExpiry string     `json:"regis_expriry"`
	LicPlate    string     `json:"lic_plate"`
	Color       string     `json:"color"`
	Make        string     `json:"make"`
	Model       string     `json:"model"`
	Year        FlexString `json:"year"`
	Status      string     `json:"status"`
}

type VehicleList struct {
	Vehicles []Vehicle `json:"vehicles"`
}
