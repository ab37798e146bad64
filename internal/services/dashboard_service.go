package services

import (
	"context"
	"log"
	"sync"
	"time"

	"taxiops/internal/domain"
	"taxiops/internal/domain/models"
	"taxiops/internal/metrics"
	"taxiops/internal/repositories"
	"taxiops/internal/utils"
)

// DashboardSnapshot is the Home screen summary.
type DashboardSnapshot struct {
	WeeklyBalance   float64             `json:"weeklyBalance"`
	ActiveDrivers   int                 `json:"activeDrivers"`
	LiveDrivers     []models.LiveDriver `json:"liveDrivers"`
	InProgressTrips int                 `json:"inProgressTrips"`
	CompletedTrips  int                 `json:"completedTrips"`
	RefreshedAt     time.Time           `json:"refreshedAt"`
}

type DashboardService struct {
	Assignments repositories.AssignmentRepository
	Sessions    repositories.SessionRepository
	LiveDrivers repositories.LiveDriverRepository
	Trips       repositories.TripRepository
	Now         func() time.Time
}

// Snapshot reads the four dashboard sources. Any failure aborts the whole
// snapshot so callers keep showing the previous one.
func (s DashboardService) Snapshot(ctx context.Context) (DashboardSnapshot, error) {
	assignments, err := s.Assignments.List(ctx)
	if err != nil {
		return DashboardSnapshot{}, err
	}
	sessions, err := s.Sessions.List(ctx)
	if err != nil {
		return DashboardSnapshot{}, err
	}
	live, err := s.LiveDrivers.List(ctx)
	if err != nil {
		return DashboardSnapshot{}, err
	}
	trips, err := s.Trips.List(ctx)
	if err != nil {
		return DashboardSnapshot{}, err
	}

	now := utils.NowUTC()
	if s.Now != nil {
		now = s.Now()
	}
	return Summarize(assignments, sessions, live, trips, now), nil
}

// Summarize computes the dashboard figures from already fetched data.
func Summarize(assignments []models.Assignment, sessions []models.Session, live []models.LiveDriver, trips []models.Trip, now time.Time) DashboardSnapshot {
	snap := DashboardSnapshot{LiveDrivers: []models.LiveDriver{}, RefreshedAt: now}
	for _, a := range assignments {
		snap.WeeklyBalance += a.WeeklyBalance
	}
	for _, s := range sessions {
		if utils.NormalizeStatus(s.SessionStatus) == domain.StatusActive {
			snap.ActiveDrivers++
		}
	}
	for _, d := range live {
		if d.Online {
			snap.LiveDrivers = append(snap.LiveDrivers, d)
		}
	}
	for _, t := range trips {
		switch utils.NormalizeStatus(t.TripStatus) {
		case domain.TripInProgress:
			snap.InProgressTrips++
		case domain.TripCompleted:
			snap.CompletedTrips++
		}
	}
	return snap
}

// Publisher receives every fresh snapshot.
type Publisher interface {
	Broadcast(v any)
}

// DashboardPoller refreshes the snapshot on a fixed interval. Ticks that
// fire while a refresh is running are dropped by the ticker.
type DashboardPoller struct {
	Source   func(ctx context.Context) (DashboardSnapshot, error)
	Interval time.Duration
	Out      Publisher

	mu     sync.RWMutex
	latest *DashboardSnapshot
}

func NewDashboardPoller(svc DashboardService, interval time.Duration, out Publisher) *DashboardPoller {
	return &DashboardPoller{Source: svc.Snapshot, Interval: interval, Out: out}
}

// Latest returns the last successful snapshot.
func (p *DashboardPoller) Latest() (DashboardSnapshot, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.latest == nil {
		return DashboardSnapshot{}, false
	}
	return *p.latest, true
}

// Refresh runs one poll. On failure the previous snapshot is kept.
func (p *DashboardPoller) Refresh(ctx context.Context) (DashboardSnapshot, error) {
	snap, err := p.Source(ctx)
	if err != nil {
		metrics.DashboardRefreshes.WithLabelValues("error").Inc()
		return DashboardSnapshot{}, err
	}
	metrics.DashboardRefreshes.WithLabelValues("ok").Inc()

	p.mu.Lock()
	p.latest = &snap
	p.mu.Unlock()

	if p.Out != nil {
		p.Out.Broadcast(map[string]any{"type": "dashboard", "data": snap})
	}
	return snap, nil
}

// Run polls until ctx is done.
func (p *DashboardPoller) Run(ctx context.Context) {
	interval := p.Interval
	if interval <= 0 {
		interval = 15 * time.Second
	}

	if _, err := p.Refresh(ctx); err != nil {
		log.Printf("[DASHBOARD] refresh failed: %v", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := p.Refresh(ctx); err != nil && ctx.Err() == nil {
				log.Printf("[DASHBOARD] refresh failed: %v", err)
			}
		}
	}
}
