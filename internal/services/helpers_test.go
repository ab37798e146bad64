package services

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	intconfig "taxiops/internal/config"
	"taxiops/internal/repositories"
)

// fakeBackend serves canned GET bodies by path and records write requests.
type fakeBackend struct {
	*httptest.Server
	mu     sync.Mutex
	writes []recordedWrite
}

type recordedWrite struct {
	Method string
	Path   string
	Body   map[string]any
}

func newFakeBackend(t *testing.T, gets map[string]string) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{}
	fb.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			body, ok := gets[r.URL.Path]
			if !ok {
				http.NotFound(w, r)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, body)
			return
		}
		var payload map[string]any
		_ = json.NewDecoder(r.Body).Decode(&payload)
		fb.mu.Lock()
		fb.writes = append(fb.writes, recordedWrite{Method: r.Method, Path: r.URL.Path, Body: payload})
		fb.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(fb.Close)
	return fb
}

func (fb *fakeBackend) Writes() []recordedWrite {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]recordedWrite(nil), fb.writes...)
}

func (fb *fakeBackend) client() repositories.Client {
	u := fb.URL
	return repositories.Client{
		HTTP: fb.Client(),
		Endpoints: intconfig.Endpoints{
			Login:        u + "/login",
			Signup:       u + "/signup",
			GetDrivers:   u + "/drivers",
			AddDrivers:   u + "/drivers/add",
			EditDrivers:  u + "/drivers/edit",
			GetVehicles:  u + "/vehicles",
			AddVehicles:  u + "/vehicles/add",
			EditVehicles: u + "/vehicles/edit",
			GetAssigned:  u + "/assigned",
			Assign:       u + "/assign",
			EditAssigned: u + "/assign/edit",
			GetSettings:  u + "/settings",
			Settings:     u + "/settings/new",
			EditSettings: u + "/settings/",
			GetAllTrips:  u + "/trips",
			GetSessions:  u + "/sessions",
			LiveDrivers:  u + "/live",
			InvoiceBase:  u + "/ml",
		},
	}
}

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}
