package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	intconfig "taxiops/internal/config"
	h "taxiops/internal/http/handlers"
	"taxiops/internal/http/middleware"
	"taxiops/internal/services"

	"github.com/gin-gonic/gin"
)

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		_ = json.NewDecoder(r.Body).Decode(&creds)
		w.Header().Set("Content-Type", "application/json")
		if creds["password"] != "pw" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":"Invalid credentials"}`)
			return
		}
		_, _ = io.WriteString(w, `{"name":"Admin","userId":42,"token":"backend-token"}`)
	})
	mux.HandleFunc("/drivers", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"drivers":[{"driver_id":1,"firstName":"Ana","lastName":"Diaz"},{"driver_id":2,"firstName":"Ben","lastName":"Okafor"}]}`)
	})
	mux.HandleFunc("/vehicles/edit/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"message":"VIN already registered"}`)
	})
	mux.HandleFunc("/vehicles", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"vehicles":[{"vehicle_id":9,"cabNumber":"12","vinNumber":"VIN12"}]}`)
	})
	mux.HandleFunc("/assigned", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"assignments":[{"driver_id":1,"vehicle_id":9,"cabNumber":"12","firstName":"Ana","lastName":"Diaz","weekly_balance":100,"status":"active"}]}`)
	})
	mux.HandleFunc("/sessions", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[
			{"driver_id":1,"cabNumber":"12","loginTime":"2024-01-01T10:00:00Z","logoutTime":"2024-01-01T10:30:00Z","sessionStatus":"active"},
			{"driver_id":1,"cabNumber":"12","loginTime":"2024-01-01T11:00:00Z","logoutTime":"2024-01-01T11:10:00Z"}
		]`)
	})
	mux.HandleFunc("/live", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	})
	mux.HandleFunc("/trips", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":{"trips":[{"_id":"64aa01","driver_id":1,"cabNumber":"12","fare":18.5,"tripStatus":"completed"}]}}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestRouter(t *testing.T) (*gin.Engine, services.SessionTokens) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	backend := newBackend(t)

	u := backend.URL
	env := intconfig.Env{
		Endpoints: intconfig.Endpoints{
			Login:        u + "/login",
			GetDrivers:   u + "/drivers",
			GetVehicles:  u + "/vehicles",
			EditVehicles: u + "/vehicles/edit",
			GetAssigned:  u + "/assigned",
			GetSessions:  u + "/sessions",
			LiveDrivers:  u + "/live",
			GetAllTrips:  u + "/trips",
		},
		Letterhead: intconfig.DefaultLetterhead(),
	}
	tokens := services.SessionTokens{Secret: []byte("router-test")}
	r := NewRouter(h.Deps{Env: env, Upstream: backend.Client(), Tokens: tokens})
	return r, tokens
}

func authed(t *testing.T, tokens services.SessionTokens, req *http.Request) *http.Request {
	t.Helper()
	raw, _, err := tokens.Issue("Admin", "42")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+raw)
	return req
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthIsPublic(t *testing.T) {
	r, _ := newTestRouter(t)
	w := serve(r, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	r, _ := newTestRouter(t)
	for _, path := range []string{"/api/drivers", "/api/nav", "/api/dashboard", "/api/trips/export.csv"} {
		w := serve(r, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: status = %d, want 401", path, w.Code)
		}
	}
}

func TestLoginSetsSessionCookie(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"admin@example.com","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")
	w := serve(r, req)
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d body=%s", w.Code, w.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["token"] != "backend-token" || body["name"] != "Admin" {
		t.Fatalf("unexpected login body %v", body)
	}

	var session *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			session = ck
		}
	}
	if session == nil || !session.HttpOnly || session.Value == "" {
		t.Fatalf("expected an HttpOnly session cookie, got %+v", session)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/drivers", nil)
	req.AddCookie(session)
	if w := serve(r, req); w.Code != http.StatusOK {
		t.Fatalf("drivers with cookie: status = %d", w.Code)
	}
}

func TestLoginRejected(t *testing.T) {
	r, _ := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"admin@example.com","password":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	w := serve(r, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid credentials or server error.") {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	r, _ := newTestRouter(t)
	w := serve(r, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.SessionCookie && ck.MaxAge >= 0 {
			t.Fatalf("cookie should be expired, got %+v", ck)
		}
	}
}

func TestDriversSearch(t *testing.T) {
	r, tokens := newTestRouter(t)
	w := serve(r, authed(t, tokens, httptest.NewRequest(http.MethodGet, "/api/drivers?q=oka", nil)))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	var drivers []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &drivers); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(drivers) != 1 || drivers[0]["firstName"] != "Ben" {
		t.Fatalf("unexpected drivers %v", drivers)
	}
}

func TestUpstreamRejectionKeepsMessage(t *testing.T) {
	r, tokens := newTestRouter(t)
	body := `{"vehicle_id":"9","cabNumber":"12","vinNumber":"DUP","status":"active"}`
	req := authed(t, tokens, httptest.NewRequest(http.MethodPut, "/api/vehicles/9", strings.NewReader(body)))
	req.Header.Set("Content-Type", "application/json")
	w := serve(r, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "VIN already registered") {
		t.Fatalf("backend message missing: %s", w.Body.String())
	}
}

func TestUnconfiguredEndpointIsValidationError(t *testing.T) {
	r, tokens := newTestRouter(t)
	w := serve(r, authed(t, tokens, httptest.NewRequest(http.MethodGet, "/api/settings", nil)))
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "GET_SETTINGS_URL") {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
}

func TestSessionsAggregated(t *testing.T) {
	r, tokens := newTestRouter(t)
	w := serve(r, authed(t, tokens, httptest.NewRequest(http.MethodGet, "/api/sessions", nil)))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var agg services.SessionAggregate
	if err := json.Unmarshal(w.Body.Bytes(), &agg); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(agg.Groups) != 1 || agg.Groups[0].TotalMinutes != 40 || agg.Groups[0].SessionCount != 2 {
		t.Fatalf("unexpected aggregate %+v", agg)
	}
}

func TestTripsExportCSV(t *testing.T) {
	r, tokens := newTestRouter(t)
	w := serve(r, authed(t, tokens, httptest.NewRequest(http.MethodGet, "/api/trips/export.csv", nil)))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/csv") {
		t.Fatalf("unexpected content type %q", w.Header().Get("Content-Type"))
	}
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "driver_id,vehicle_id,cabNumber") {
		t.Fatalf("unexpected csv:\n%s", w.Body.String())
	}
}

func TestTripReceipt(t *testing.T) {
	r, tokens := newTestRouter(t)
	w := serve(r, authed(t, tokens, httptest.NewRequest(http.MethodGet, "/api/trips/64aa01/receipt.pdf", nil)))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Fatalf("expected a PDF body")
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "trip-receipt-64aa01.pdf") {
		t.Fatalf("unexpected disposition %q", w.Header().Get("Content-Disposition"))
	}

	w = serve(r, authed(t, tokens, httptest.NewRequest(http.MethodGet, "/api/trips/missing/receipt.pdf", nil)))
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown trip: status = %d", w.Code)
	}
}

func TestGenerateForm(t *testing.T) {
	r, tokens := newTestRouter(t)
	req := authed(t, tokens, httptest.NewRequest(http.MethodPost, "/api/forms",
		strings.NewReader(`{"formType":"avi-request","cabNumber":"12"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := serve(r, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "avi-request_form.pdf") {
		t.Fatalf("unexpected disposition %q", w.Header().Get("Content-Disposition"))
	}

	req = authed(t, tokens, httptest.NewRequest(http.MethodPost, "/api/forms", strings.NewReader(`{"formType":"lease"}`)))
	req.Header.Set("Content-Type", "application/json")
	w = serve(r, req)
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "Invalid form selection") {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
}

func TestAVIUploadRequiresFile(t *testing.T) {
	r, tokens := newTestRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("note", "no file")
	_ = mw.Close()

	req := authed(t, tokens, httptest.NewRequest(http.MethodPost, "/api/avi/upload", &buf))
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := serve(r, req)
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "Please select a CSV file.") {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
}

func TestDashboardOnDemand(t *testing.T) {
	r, tokens := newTestRouter(t)
	w := serve(r, authed(t, tokens, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	var snap services.DashboardSnapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if snap.WeeklyBalance != 100 || snap.ActiveDrivers != 1 || snap.CompletedTrips != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	serve(r, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	w := serve(r, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "http_requests_total") {
		t.Fatalf("metrics missing request counter: status=%d", w.Code)
	}
}
