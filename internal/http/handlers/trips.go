package handlers

import (
	"bytes"
	"net/http"

	"taxiops/internal/http/middleware"
	"taxiops/internal/repositories"
	"taxiops/internal/services"

	"github.com/gin-gonic/gin"
)

func tripService(c *gin.Context) services.TripService {
	return services.TripService{Repo: repositories.TripRepository{API: api(c)}}
}

// GET /api/trips?q=
func GetTrips(c *gin.Context) {
	trips, err := tripService(c).List(c.Request.Context(), c.Query("q"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// GET /api/trips/export.csv
func ExportTripsCSV(c *gin.Context) {
	trips, err := tripService(c).List(c.Request.Context(), c.Query("q"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendCSV(c, "trips.csv", func(buf *bytes.Buffer) error {
		return services.WriteTripsCSV(buf, trips)
	})
}

// GET /api/trips/:id/receipt.pdf
func GetTripReceiptPDF(c *gin.Context) {
	trip, err := tripService(c).Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := services.DocsService{
		Location:  current().Env.DisplayLocation,
		RequestID: middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateReceipt(trip)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, filename, pdfBytes)
}
