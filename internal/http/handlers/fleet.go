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

func fleetService(c *gin.Context) services.FleetService {
	client := api(c)
	return services.FleetService{
		Assignments: repositories.AssignmentRepository{API: client},
		Drivers:     repositories.DriverRepository{API: client},
		Vehicles:    repositories.VehicleRepository{API: client},
		RequestID:   middleware.GetRequestID(c),
	}
}

// GET /api/assignments?q=
func GetActiveFleet(c *gin.Context) {
	fleet, err := fleetService(c).ActiveFleet(c.Request.Context(), c.Query("q"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, fleet)
}

// POST /api/assignments
func AssignVehicle(c *gin.Context) {
	var req models.AssignRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	a, err := fleetService(c).Assign(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Assignment successful.", "assignment": a})
}

// PUT /api/assignments/:driver_id/:vehicle_id
func UpdateAssignment(c *gin.Context) {
	var patch models.AssignmentPatch
	if !BindJSONOrError(c, &patch) {
		return
	}
	if err := fleetService(c).Update(c.Request.Context(), c.Param("driver_id"), c.Param("vehicle_id"), patch); err != nil {
		RespondDomainError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Assignment updated!")
}

// GET /api/assignments/export.csv
func ExportFleetCSV(c *gin.Context) {
	fleet, err := fleetService(c).ActiveFleet(c.Request.Context(), c.Query("q"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendCSV(c, "active-fleet.csv", func(buf *bytes.Buffer) error {
		return services.WriteFleetCSV(buf, fleet)
	})
}
