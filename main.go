package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	intconfig "taxiops/internal/config"
	router "taxiops/internal/http"
	"taxiops/internal/http/handlers"
	"taxiops/internal/live"
	"taxiops/internal/repositories"
	"taxiops/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	upstream := intconfig.ConnectUpstream(env.UpstreamTimeout)
	defer intconfig.CloseUpstream()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hub := live.NewHub()
	dashboard := handlers.NewDashboardService(repositories.Client{
		HTTP:      upstream,
		Endpoints: env.Endpoints,
		RequestID: "dashboard-poller",
	})
	poller := services.NewDashboardPoller(dashboard, env.PollInterval, hub)
	go poller.Run(ctx)

	// Router (Gin engine)
	r := router.NewRouter(handlers.Deps{
		Env:      env,
		Upstream: upstream,
		Tokens: services.SessionTokens{
			Secret: []byte(env.SessionSecret),
			TTL:    env.SessionTTL,
		},
		Poller: poller,
		Hub:    hub,
	})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      env.UpstreamTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server running at http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	hub.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly.")
}
