package handlers

import (
	"net/http"

	"taxiops/internal/domain/models"
	"taxiops/internal/http/middleware"
	"taxiops/internal/repositories"
	"taxiops/internal/services"

	"github.com/gin-gonic/gin"
)

func settingsService(c *gin.Context) services.SettingsService {
	return services.SettingsService{
		Repo:      repositories.SettingsRepository{API: api(c)},
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/settings
func GetSettings(c *gin.Context) {
	s, err := settingsService(c).Get(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// POST /api/settings
func CreateSettings(c *gin.Context) {
	var in models.TripSettings
	if !BindJSONOrError(c, &in) {
		return
	}
	if err := settingsService(c).Save(c.Request.Context(), "", in); err != nil {
		RespondDomainError(c, err)
		return
	}
	respondMessage(c, http.StatusCreated, "Settings created")
}

// PUT /api/settings/:id
func UpdateSettings(c *gin.Context) {
	var in models.TripSettings
	if !BindJSONOrError(c, &in) {
		return
	}
	if err := settingsService(c).Save(c.Request.Context(), c.Param("id"), in); err != nil {
		RespondDomainError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Settings updated")
}
