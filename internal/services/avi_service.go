package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"taxiops/internal/domain"
	"taxiops/internal/domain/models"
	"taxiops/internal/repositories"
	"taxiops/internal/utils"
)

const (
	msgSelectCSV       = "Please select a CSV file."
	msgUpstreamOffline = "Failed to connect to server."
)

type AVIService struct {
	Repo      repositories.InvoiceRepository
	RequestID string
}

// Reconcile uploads an AVI trip report and returns the per-cab invoice summary.
func (s AVIService) Reconcile(ctx context.Context, filename string, file io.Reader) (models.InvoiceReport, error) {
	if file == nil || strings.TrimSpace(filename) == "" {
		return models.InvoiceReport{}, domain.ValidationError{Field: "file", Msg: msgSelectCSV}
	}
	if ext := strings.ToLower(filepath.Ext(filename)); ext != ".csv" {
		return models.InvoiceReport{}, domain.ValidationError{Field: "file", Msg: msgSelectCSV}
	}

	report, err := s.Repo.Upload(ctx, filepath.Base(filename), file)
	if err != nil {
		return models.InvoiceReport{}, err
	}
	utils.LogEvent(s.RequestID, "avi", "reconcile", fmt.Sprintf("file=%s invoices=%d", filepath.Base(filename), len(report.Invoices)))
	return report, nil
}

// UploadErrorMessage is the message shown for a failed upload: the server's
// own message when it sent one, else a generic connectivity message.
func UploadErrorMessage(err error) string {
	var v domain.ValidationError
	if errors.As(err, &v) && v.Msg != "" {
		return v.Msg
	}
	if up, ok := domain.AsUpstream(err); ok && up.Msg != "" && up.Status > 0 {
		return up.Msg
	}
	return msgUpstreamOffline
}
