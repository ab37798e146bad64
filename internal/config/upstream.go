package config

import (
	"log"
	"net/http"
	"sync"
	"time"
)

var (
	Upstream   *http.Client
	upstreamMu sync.Mutex
)

// ConnectUpstream initializes the shared HTTP client used for backend calls (idempotent).
func ConnectUpstream(timeout time.Duration) *http.Client {
	upstreamMu.Lock()
	defer upstreamMu.Unlock()

	if Upstream != nil {
		return Upstream
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConns = 25
	transport.MaxIdleConnsPerHost = 25
	transport.IdleConnTimeout = 5 * time.Minute

	Upstream = &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
	log.Printf("upstream client ready (timeout=%s)", timeout)
	return Upstream
}

func CloseUpstream() {
	upstreamMu.Lock()
	defer upstreamMu.Unlock()

	if Upstream != nil {
		Upstream.CloseIdleConnections()
		Upstream = nil
	}
}
