package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"taxiops/internal/domain/models"
	"taxiops/internal/http/middleware"
	"taxiops/internal/repositories"
	"taxiops/internal/services"

	"github.com/gin-gonic/gin"
)

func driverService(c *gin.Context) services.DriverService {
	return services.DriverService{
		Repo:      repositories.DriverRepository{API: api(c)},
		RequestID: middleware.GetRequestID(c),
	}
}

func driverFilter(c *gin.Context) services.DriverListFilter {
	expiring, _ := strconv.ParseBool(c.Query("expiring"))
	return services.DriverListFilter{Query: c.Query("q"), ExpiringOnly: expiring}
}

// GET /api/drivers?q=&expiring=true
func GetDrivers(c *gin.Context) {
	drivers, err := driverService(c).List(c.Request.Context(), driverFilter(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, drivers)
}

// POST /api/drivers
func CreateDriver(c *gin.Context) {
	var input models.Driver
	if !BindJSONOrError(c, &input) {
		return
	}
	if err := driverService(c).Create(c.Request.Context(), input); err != nil {
		RespondDomainError(c, err)
		return
	}
	respondMessage(c, http.StatusCreated, "Driver added successfully!")
}

// PUT /api/drivers/:id
func UpdateDriver(c *gin.Context) {
	var input models.Driver
	if !BindJSONOrError(c, &input) {
		return
	}
	if err := driverService(c).Update(c.Request.Context(), c.Param("id"), input); err != nil {
		RespondDomainError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Driver updated")
}

// GET /api/drivers/export.csv
func ExportDriversCSV(c *gin.Context) {
	drivers, err := driverService(c).List(c.Request.Context(), driverFilter(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendCSV(c, "drivers.csv", func(buf *bytes.Buffer) error {
		return services.WriteDriversCSV(buf, drivers)
	})
}
