package repositories

import (
	"context"
	"fmt"
	"io"

	"taxiops/internal/domain/models"
)

type InvoiceRepository struct {
	API Client
}

// Upload sends an AVI trip CSV to ${ML_URL}/upload for reconciliation.
func (r InvoiceRepository) Upload(ctx context.Context, filename string, file io.Reader) (models.InvoiceReport, error) {
	base, err := requireURL("ML_URL", r.API.Endpoints.InvoiceBase)
	if err != nil {
		return models.InvoiceReport{}, err
	}

	var out models.InvoiceReport
	if err := r.API.uploadFile(ctx, "ML_URL", joinPath(base, "upload"), filename, file, &out); err != nil {
		return models.InvoiceReport{}, fmt.Errorf("upload avi report: %w", err)
	}
	if out.Invoices == nil {
		out.Invoices = []models.Invoice{}
	}
	return out, nil
}
