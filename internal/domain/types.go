package domain

// Placeholder is rendered wherever a display field is missing.
const Placeholder = "N/A"

// Status values shared by vehicles and assignments.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Trip status values counted on the dashboard.
const (
	TripInProgress = "in_progress"
	TripCompleted  = "completed"
)

// OrPlaceholder returns v, or Placeholder when v is empty.
func OrPlaceholder(v string) string {
	if v == "" {
		return Placeholder
	}
	return v
}
