package handlers

import (
	"net/http"
	"sync"

	intconfig "taxiops/internal/config"
	"taxiops/internal/http/middleware"
	"taxiops/internal/live"
	"taxiops/internal/repositories"
	"taxiops/internal/services"

	"github.com/gin-gonic/gin"
)

// Deps is what the handlers need beyond the request itself.
type Deps struct {
	Env      intconfig.Env
	Upstream *http.Client
	Tokens   services.SessionTokens
	Poller   *services.DashboardPoller
	Hub      *live.Hub
}

var (
	depsMu sync.RWMutex
	deps   Deps
)

// Setup stores the handler dependencies. Called once from NewRouter.
func Setup(d Deps) {
	depsMu.Lock()
	defer depsMu.Unlock()
	deps = d
}

func current() Deps {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return deps
}

// api returns an upstream client tagged with the request id.
func api(c *gin.Context) repositories.Client {
	d := current()
	return repositories.Client{
		HTTP:      d.Upstream,
		Endpoints: d.Env.Endpoints,
		RequestID: middleware.GetRequestID(c),
	}
}
