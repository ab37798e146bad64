package handlers

import (
	"bytes"
	"net/http"

	"taxiops/internal/repositories"
	"taxiops/internal/services"

	"github.com/gin-gonic/gin"
)

func sessionService(c *gin.Context) services.SessionService {
	return services.SessionService{Repo: repositories.SessionRepository{API: api(c)}}
}

// GET /api/sessions?q=
func GetSessionGroups(c *gin.Context) {
	agg, err := sessionService(c).Groups(c.Request.Context(), c.Query("q"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, agg)
}

// GET /api/sessions/export.csv
func ExportSessionsCSV(c *gin.Context) {
	agg, err := sessionService(c).Groups(c.Request.Context(), c.Query("q"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendCSV(c, "sessions.csv", func(buf *bytes.Buffer) error {
		return services.WriteSessionGroupsCSV(buf, agg.Groups)
	})
}

// GET /api/live-drivers
func GetLiveDrivers(c *gin.Context) {
	drivers, err := repositories.LiveDriverRepository{API: api(c)}.List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, drivers)
}
