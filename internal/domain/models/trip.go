package models

// LatLng is a pickup or dropoff point.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Trip mirrors the backend trip document.
type Trip struct {
	ID              string     `json:"_id"`
	DriverID        FlexString `json:"driver_id"`
	VehicleID       FlexString `json:"vehicle_id"`
	CabNumber       string     `json:"cabNumber"`
	StartTime       string     `json:"startTime"`
	EndTime         string     `json:"endTime,omitempty"`
	DurationMinutes float64    `json:"durationMinutes,omitempty"`
	PickupLocation  *LatLng    `json:"pickupLocation,omitempty"`
	DropoffLocation *LatLng    `json:"dropoffLocation,omitempty"`
	DistanceMiles   float64    `json:"distanceMiles,omitempty"`
	Fare            float64    `json:"fare,omitempty"`
	TripStatus      string     `json:"tripStatus"`
	CreatedAt       string     `json:"createdAt"`
}
