package handlers

import (
	"net/http"

	"taxiops/internal/http/middleware"
	"taxiops/internal/repositories"
	"taxiops/internal/services"

	"github.com/gin-gonic/gin"
)

type formOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var formOptions = []formOption{
	{Value: services.FormInsuranceAdd, Label: "Add to Insurance"},
	{Value: services.FormInsuranceRemove, Label: "Remove from Insurance"},
	{Value: services.FormAVIRequest, Label: "AVI Tag Request"},
	{Value: services.FormAVIRefund, Label: "AVI Tag Refund"},
}

// GET /api/forms
func GetFormTypes(c *gin.Context) {
	c.JSON(http.StatusOK, formOptions)
}

// POST /api/forms
func GenerateForm(c *gin.Context) {
	var req services.LetterRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	client := api(c)
	svc := services.DocsService{
		Vehicles:    repositories.VehicleRepository{API: client},
		Assignments: repositories.AssignmentRepository{API: client},
		Letterhead:  current().Env.Letterhead,
		RequestID:   middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateLetter(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, filename, pdfBytes)
}
