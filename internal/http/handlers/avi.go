package handlers

import (
	"net/http"

	"taxiops/internal/domain"
	"taxiops/internal/http/middleware"
	"taxiops/internal/repositories"
	"taxiops/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/avi/upload (multipart field "file")
func UploadAVIReport(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "Please select a CSV file.", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "Please select a CSV file.", nil)
		return
	}
	defer f.Close()

	svc := services.AVIService{
		Repo:      repositories.InvoiceRepository{API: api(c)},
		RequestID: middleware.GetRequestID(c),
	}
	report, err := svc.Reconcile(c.Request.Context(), fh.Filename, f)
	if err != nil {
		status := http.StatusBadGateway
		switch {
		case domain.IsValidation(err):
			status = http.StatusBadRequest
		case domain.IsUpstream(err):
			if up, _ := domain.AsUpstream(err); up.Status >= 400 && up.Status < 500 {
				status = up.Status
			}
		}
		respondError(c, status, "avi_upload_failed", services.UploadErrorMessage(err), nil)
		return
	}
	c.JSON(http.StatusOK, report)
}
