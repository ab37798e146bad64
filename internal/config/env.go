package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const devSessionSecret = "taxiops-dev-secret-change-me"

// Env holds everything read from the process environment at boot.
type Env struct {
	AppAddr         string
	GinMode         string
	CORSOrigins     []string
	SessionSecret   string
	SessionTTL      time.Duration
	UpstreamTimeout time.Duration
	PollInterval    time.Duration
	DisplayLocation *time.Location
	Endpoints       Endpoints
	Letterhead      Letterhead
}

// Endpoints are the externally owned REST endpoints the dashboard talks to.
type Endpoints struct {
	Login        string
	Signup       string
	GetDrivers   string
	AddDrivers   string
	EditDrivers  string
	GetVehicles  string
	AddVehicles  string
	EditVehicles string
	GetAssigned  string
	Assign       string
	EditAssigned string
	GetSettings  string
	Settings     string
	EditSettings string
	GetAllTrips  string
	GetSessions  string
	LiveDrivers  string
	InvoiceBase  string
}

// Letterhead is printed at the bottom of every generated letter.
type Letterhead struct {
	CompanyName    string
	AddressLine1   string
	AddressLine2   string
	Phone          string
	Email          string
	InsuranceEmail string
}

// LoadEnv reads .env (when present) and then the process environment.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: failed to read .env: %v", err)
	}

	appAddr := getString("APP_ADDR", ":8080")

	secret := getString("SESSION_SECRET", "")
	if secret == "" {
		log.Println("warning: SESSION_SECRET not set, using development secret")
		secret = devSessionSecret
	}

	return Env{
		AppAddr:         appAddr,
		GinMode:         getString("GIN_MODE", ""),
		CORSOrigins:     getList("CORS_ALLOWED_ORIGINS"),
		SessionSecret:   secret,
		SessionTTL:      getDuration("SESSION_TTL", 24*time.Hour),
		UpstreamTimeout: getDuration("UPSTREAM_TIMEOUT", 20*time.Second),
		PollInterval:    getDuration("DASHBOARD_POLL_INTERVAL", 15*time.Second),
		DisplayLocation: getLocation("DISPLAY_TIMEZONE"),
		Endpoints:       loadEndpoints(),
		Letterhead:      loadLetterhead(),
	}
}

func loadEndpoints() Endpoints {
	return Endpoints{
		Login:        getString("LOGIN_URL", ""),
		Signup:       getString("SIGNUP_URL", ""),
		GetDrivers:   getString("GET_DRIVERS_URL", ""),
		AddDrivers:   getString("ADD_DRIVERS_URL", ""),
		EditDrivers:  getString("EDIT_DRIVERS_URL", ""),
		GetVehicles:  getString("GET_VEHICLES_URL", ""),
		AddVehicles:  getString("ADD_VEHICLES_URL", ""),
		EditVehicles: getString("EDIT_VEHICLES_URL", ""),
		GetAssigned:  getString("GET_ASSIGNED_URL", ""),
		Assign:       getString("ASSIGN_URL", ""),
		EditAssigned: getString("EDIT_ASSIGNING_URL", ""),
		GetSettings:  getString("GET_SETTINGS_URL", ""),
		Settings:     getString("SETTINGS_URL", ""),
		EditSettings: getString("EDIT_SETTINGS_URL", ""),
		GetAllTrips:  getString("GET_ALL_TRIPS_URL", ""),
		GetSessions:  getString("GET_SESSION_URL", ""),
		LiveDrivers:  getString("LIVE_DRIVERS_URL", ""),
		InvoiceBase:  strings.TrimRight(getString("ML_URL", ""), "/"),
	}
}

// DefaultLetterhead is the footer used when no COMPANY_* variable is set.
func DefaultLetterhead() Letterhead {
	return Letterhead{
		CompanyName:    "Trans Voyage Taxi",
		AddressLine1:   "1450 S. Havana St, Ste# 712",
		AddressLine2:   "Aurora, CO 80012",
		Phone:          "(303) 353-4482",
		Email:          "info@transvoyagetaxi.com",
		InsuranceEmail: "gtinsurance@flydenver.com",
	}
}

func loadLetterhead() Letterhead {
	d := DefaultLetterhead()
	return Letterhead{
		CompanyName:    getString("COMPANY_NAME", d.CompanyName),
		AddressLine1:   getString("COMPANY_ADDRESS_LINE1", d.AddressLine1),
		AddressLine2:   getString("COMPANY_ADDRESS_LINE2", d.AddressLine2),
		Phone:          getString("COMPANY_PHONE", d.Phone),
		Email:          getString("COMPANY_EMAIL", d.Email),
		InsuranceEmail: getString("INSURANCE_EMAIL", d.InsuranceEmail),
	}
}

func getString(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("warning: invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func getLocation(key string) *time.Location {
	name := getString(key, "UTC")
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("warning: invalid %s=%q, using UTC", key, name)
		return time.UTC
	}
	return loc
}

func getList(key string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil
	}
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
