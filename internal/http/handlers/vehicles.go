package handlers

import (
	"bytes"
	"net/http"

	"taxiops/internal/domain/models"
	"taxiops/internal/http/middleware"
	"taxiops/internal/repositories"
	"taxiops/internal/services"

	"github.com/gin-gonic/gin"
)

func vehicleService(c *gin.Context) services.VehicleService {
	return services.VehicleService{
		Repo:      repositories.VehicleRepository{API: api(c)},
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/vehicles?q=
func GetVehicles(c *gin.Context) {
	vehicles, err := vehicleService(c).List(c.Request.Context(), c.Query("q"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// POST /api/vehicles
func CreateVehicle(c *gin.Context) {
	var input models.Vehicle
	if !BindJSONOrError(c, &input) {
		return
	}
	if err := vehicleService(c).Create(c.Request.Context(), input); err != nil {
		RespondDomainError(c, err)
		return
	}
	respondMessage(c, http.StatusCreated, "Vehicle added successfully!")
}

// PUT /api/vehicles/:id
func UpdateVehicle(c *gin.Context) {
	var input models.Vehicle
	if !BindJSONOrError(c, &input) {
		return
	}
	if err := vehicleService(c).Update(c.Request.Context(), c.Param("id"), input); err != nil {
		RespondDomainError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Vehicle updated")
}

// GET /api/vehicles/export.csv
func ExportVehiclesCSV(c *gin.Context) {
	vehicles, err := vehicleService(c).List(c.Request.Context(), c.Query("q"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendCSV(c, "vehicles.csv", func(buf *bytes.Buffer) error {
		return services.WriteVehiclesCSV(buf, vehicles)
	})
}
