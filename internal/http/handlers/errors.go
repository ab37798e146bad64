package handlers

import (
	"errors"
	"log"
	"net/http"

	"taxiops/internal/domain"
	"taxiops/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

const msgUpstreamUnavailable = "Failed to connect to server."

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	resp := ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	}
	reqID := middleware.GetRequestID(c)
	if reqID != "" {
		c.JSON(status, gin.H{
			"error":      resp.Error,
			"code":       resp.Code,
			"details":    resp.Details,
			"request_id": reqID,
			"message":    message,
		})
		return
	}
	c.JSON(status, resp)
}

// RespondDomainError maps domain errors to HTTP responses. Backend 4xx
// answers keep their status and message; anything else upstream is a 502.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", validationMessage(err), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsUpstream(err):
		up, _ := domain.AsUpstream(err)
		if up.Status >= 400 && up.Status < 500 {
			msg := up.Msg
			if msg == "" {
				msg = http.StatusText(up.Status)
			}
			respondError(c, up.Status, "upstream_rejected", msg, gin.H{"endpoint": up.Endpoint})
			return
		}
		log.Printf("[HTTP] request_id=%s upstream failure: %v", middleware.GetRequestID(c), err)
		respondError(c, http.StatusBadGateway, "upstream_error", msgUpstreamUnavailable, gin.H{"endpoint": up.Endpoint})
	default:
		log.Printf("[HTTP] request_id=%s internal error: %v", middleware.GetRequestID(c), err)
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong", nil)
	}
}

// validationMessage prefers the bare message so UI strings read cleanly.
func validationMessage(err error) string {
	var v domain.ValidationError
	if errors.As(err, &v) && v.Msg != "" {
		return v.Msg
	}
	return err.Error()
}
