package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"taxiops/internal/domain/models"
	"taxiops/internal/repositories"
)

type recordingPublisher struct {
	mu   sync.Mutex
	msgs []any
}

func (p *recordingPublisher) Broadcast(v any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, v)
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.msgs)
}

func TestSummarize(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	snap := Summarize(
		[]models.Assignment{{WeeklyBalance: 150}, {WeeklyBalance: 49.5}},
		[]models.Session{{SessionStatus: "active"}, {SessionStatus: "Active"}, {SessionStatus: "closed"}},
		[]models.LiveDriver{{CabNumber: "12", Online: true}, {CabNumber: "14"}},
		[]models.Trip{{TripStatus: "in_progress"}, {TripStatus: "completed"}, {TripStatus: "completed"}, {TripStatus: "cancelled"}},
		now,
	)
	if snap.WeeklyBalance != 199.5 {
		t.Fatalf("weekly balance = %v", snap.WeeklyBalance)
	}
	if snap.ActiveDrivers != 2 || len(snap.LiveDrivers) != 1 {
		t.Fatalf("unexpected driver counts %+v", snap)
	}
	if snap.InProgressTrips != 1 || snap.CompletedTrips != 2 {
		t.Fatalf("unexpected trip counts %+v", snap)
	}
	if !snap.RefreshedAt.Equal(now) {
		t.Fatalf("unexpected refresh time %v", snap.RefreshedAt)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	snap := Summarize(nil, nil, nil, nil, time.Now())
	if snap.LiveDrivers == nil {
		t.Fatalf("live drivers should be an empty list, not nil")
	}
	if snap.WeeklyBalance != 0 || snap.CompletedTrips != 0 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestDashboardServiceSnapshot(t *testing.T) {
	fb := newFakeBackend(t, map[string]string{
		"/assigned": `{"assignments":[{"weekly_balance":100},{"weekly_balance":25}]}`,
		"/sessions": `[{"driver_id":1,"sessionStatus":"active"}]`,
		"/live":     `[{"cabNumber":"12","lat":39.7,"lng":-104.9,"online":true}]`,
		"/trips":    `{"trips":[{"_id":"a","tripStatus":"completed"}]}`,
	})
	api := fb.client()
	svc := DashboardService{
		Assignments: repositories.AssignmentRepository{API: api},
		Sessions:    repositories.SessionRepository{API: api},
		LiveDrivers: repositories.LiveDriverRepository{API: api},
		Trips:       repositories.TripRepository{API: api},
	}

	snap, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot returned error: %v", err)
	}
	if snap.WeeklyBalance != 125 || snap.ActiveDrivers != 1 || len(snap.LiveDrivers) != 1 || snap.CompletedTrips != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestDashboardPollerKeepsLastGoodSnapshot(t *testing.T) {
	pub := &recordingPublisher{}
	fail := false
	calls := 0
	p := &DashboardPoller{
		Source: func(ctx context.Context) (DashboardSnapshot, error) {
			calls++
			if fail {
				return DashboardSnapshot{}, errors.New("backend down")
			}
			return DashboardSnapshot{WeeklyBalance: float64(calls)}, nil
		},
		Out: pub,
	}

	if _, ok := p.Latest(); ok {
		t.Fatalf("no snapshot expected before the first refresh")
	}
	if _, err := p.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	fail = true
	if _, err := p.Refresh(context.Background()); err == nil {
		t.Fatalf("expected refresh error")
	}

	latest, ok := p.Latest()
	if !ok || latest.WeeklyBalance != 1 {
		t.Fatalf("expected the first snapshot to be kept, got %+v", latest)
	}
	if pub.count() != 1 {
		t.Fatalf("only successful refreshes should broadcast, got %d", pub.count())
	}
}

func TestDashboardPollerRunStopsOnCancel(t *testing.T) {
	pub := &recordingPublisher{}
	p := &DashboardPoller{
		Source: func(ctx context.Context) (DashboardSnapshot, error) {
			return DashboardSnapshot{}, nil
		},
		Interval: 5 * time.Millisecond,
		Out:      pub,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for pub.count() < 3 {
		select {
		case <-deadline:
			t.Fatalf("poller did not tick, got %d broadcasts", pub.count())
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}
