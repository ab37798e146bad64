package handlers

import (
	"errors"
	"log"
	"net/http"

	"taxiops/internal/http/middleware"
	"taxiops/internal/live"
	"taxiops/internal/repositories"
	"taxiops/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// NewDashboardService wires the dashboard sources to one upstream client.
func NewDashboardService(client repositories.Client) services.DashboardService {
	return services.DashboardService{
		Assignments: repositories.AssignmentRepository{API: client},
		Sessions:    repositories.SessionRepository{API: client},
		LiveDrivers: repositories.LiveDriverRepository{API: client},
		Trips:       repositories.TripRepository{API: client},
	}
}

// GET /api/dashboard
func GetDashboard(c *gin.Context) {
	d := current()
	if d.Poller != nil {
		if snap, ok := d.Poller.Latest(); ok {
			c.JSON(http.StatusOK, snap)
			return
		}
		snap, err := d.Poller.Refresh(c.Request.Context())
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, snap)
		return
	}

	snap, err := NewDashboardService(api(c)).Snapshot(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func wsUpgrader(origins []string) websocket.Upgrader {
	allowed := map[string]bool{}
	for _, o := range middleware.AllowedOrigins(origins) {
		allowed[o] = true
	}
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || allowed[origin] || origin == "http://"+r.Host || origin == "https://"+r.Host
		},
	}
}

// GET /api/dashboard/ws
func DashboardWS(c *gin.Context) {
	d := current()
	if d.Hub == nil {
		respondError(c, http.StatusServiceUnavailable, "unavailable", "live updates are not enabled", nil)
		return
	}

	upgrader := wsUpgrader(d.Env.CORSOrigins)
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] request_id=%s upgrade failed: %v", middleware.GetRequestID(c), err)
		return
	}

	conn := live.NewConn(c.Request.Context(), middleware.GetRequestID(c), ws)
	if err := d.Hub.Add(conn); err != nil {
		_ = conn.Close()
		return
	}
	defer d.Hub.Remove(conn)

	if d.Poller != nil {
		if snap, ok := d.Poller.Latest(); ok {
			_ = conn.Send(gin.H{"type": "dashboard", "data": snap})
		}
	}
	if err := conn.Listen(); err != nil && !websocket.IsCloseError(errors.Unwrap(err), websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		log.Printf("[WS] request_id=%s closed: %v", middleware.GetRequestID(c), err)
	}
}
