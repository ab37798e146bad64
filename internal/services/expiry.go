package services

import (
	"time"

	"taxiops/internal/domain/models"
	"taxiops/internal/utils"
)

// ExpiryWindow is how far ahead a document date counts as expiring soon.
const ExpiryWindow = 30 * 24 * time.Hour

// ExpiryFields are the driver date fields checked for expiry, by JSON name.
var ExpiryFields = []string{"dot_expiry", "cbi_expiry", "puc_expiry", "dl_expiry", "llc_expiry"}

// IsExpiringSoon reports 0 <= date-now <= 30 days. Empty or unparseable
// dates are never flagged.
func IsExpiringSoon(value string, now time.Time) bool {
	t, err := utils.ParseTimestamp(value)
	if err != nil {
		return false
	}
	diff := t.Sub(now)
	return diff >= 0 && diff <= ExpiryWindow
}

func expiryValue(d models.Driver, field string) string {
	switch field {
	case "dot_expiry":
		return d.DOTExpiry
	case "cbi_expiry":
		return d.CBIExpiry
	case "puc_expiry":
		return d.PUCExpiry
	case "dl_expiry":
		return d.DLExpiry
	case "llc_expiry":
		return d.LLCExpiry
	}
	return ""
}

// DriverExpiry computes the per-field flags for one driver.
func DriverExpiry(d models.Driver, now time.Time) models.DriverView {
	view := models.DriverView{Driver: d, Expiring: make(map[string]bool, len(ExpiryFields))}
	for _, f := range ExpiryFields {
		flagged := IsExpiringSoon(expiryValue(d, f), now)
		view.Expiring[f] = flagged
		if flagged {
			view.ExpiringCount++
		}
	}
	return view
}
