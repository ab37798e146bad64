package models

// Invoice is one cab's line in an AVI reconciliation report.
type Invoice struct {
	CabNumber   string   `json:"cabNumber"`
	Trips       *int     `json:"trips,omitempty"`
	Invoice     *float64 `json:"invoice,omitempty"`
	CostPerTrip *float64 `json:"cost_per_trip,omitempty"`
}

type InvoiceReport struct {
	Invoices     []Invoice `json:"invoices"`
	TotalInvoice *float64  `json:"totalinvoice"`
}
