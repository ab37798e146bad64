package models

// Session is one driver login/logout record. An empty LogoutTime means the
// session is still open.
type Session struct {
	DriverID      FlexString `json:"driver_id"`
	CabNumber     string     `json:"cabNumber"`
	LoginTime     string     `json:"loginTime"`
	LogoutTime    string     `json:"logoutTime,omitempty"`
	SessionStatus string     `json:"sessionStatus,omitempty"`
}

// SessionGroup is derived in memory, never persisted.
type SessionGroup struct {
	DriverID     FlexString `json:"driver_id"`
	CabNumber    string     `json:"cabNumber"`
	Day          string     `json:"day"`
	TotalMinutes int64      `json:"totalMinutes"`
	SessionCount int        `json:"sessionCount"`
}

// LiveDriver is a position report from the live-drivers endpoint.
type LiveDriver struct {
	DriverID  FlexString `json:"driver_id,omitempty"`
	CabNumber string     `json:"cabNumber"`
	Lat       float64    `json:"lat"`
	Lng       float64    `json:"lng"`
	Online    bool       `json:"online"`
}
