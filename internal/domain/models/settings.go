package models

// TripSettings holds the fare configuration.
type TripSettings struct {
	ID            string  `json:"_id,omitempty"`
	BaseFare      float64 `json:"baseFare"`
	CostPerMile   float64 `json:"costPerMile"`
	CostPerMinute float64 `json:"costPerMinute"`
	Currency      string  `json:"currency"`
	UpdatedBy     string  `json:"updatedBy"`
	LastUpdated   string  `json:"lastUpdated,omitempty"`
}
