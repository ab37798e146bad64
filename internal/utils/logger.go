package utils

import (
	"log"
	"strings"
	"time"
)

// LogEvent prints standardized log line with module/action/request_id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, req, message)
}

// LogUpstream prints one line per backend call.
func LogUpstream(requestID, method, endpoint string, status int, latency time.Duration, err error) {
	if err != nil {
		log.Printf("[UPSTREAM] request_id=%s method=%s endpoint=%s status=%d latency_ms=%.3f err=%v",
			strings.TrimSpace(requestID), method, endpoint, status, float64(latency.Microseconds())/1000.0, err)
		return
	}
	log.Printf("[UPSTREAM] request_id=%s method=%s endpoint=%s status=%d latency_ms=%.3f",
		strings.TrimSpace(requestID), method, endpoint, status, float64(latency.Microseconds())/1000.0)
}
