package models

// Driver mirrors the backend driver record.
type Driver struct {
	DriverID       FlexString `json:"driver_id,omitempty"`
	FirstName      string     `json:"firstName" binding:"required"`
	LastName       string     `json:"lastName" binding:"required"`
	Email          string     `json:"email" binding:"required,email"`
	Password       string     `json:"password,omitempty"`
	DOB            string     `json:"dob"`
	DOTExpiry      string     `json:"dot_expiry"`
	CBIExpiry      string     `json:"cbi_expiry"`
	PUCExpiry      string     `json:"puc_expiry"`
	DLNumber       string     `json:"dl_number"`
	DLExpiry       string     `json:"dl_expiry"`
	SignedContract string     `json:"signedContract"`
	EINNumber      string     `json:"ein_number"`
	LLCName        string     `json:"llc_name"`
	LLCExpiry      string     `json:"llc_expiry"`
}

// FullName joins first and last name.
func (d Driver) FullName() string {
	switch {
	case d.FirstName == "":
		return d.LastName
	case d.LastName == "":
		return d.FirstName
	}
	return d.FirstName + " " + d.LastName
}

// DriverView is a driver row plus its per-field expiry flags.
type DriverView struct {
	Driver
	Expiring      map[string]bool `json:"expiring"`
	ExpiringCount int             `json:"expiringCount"`
}

type DriverList struct {
	Drivers []Driver `json:"drivers"`
}
