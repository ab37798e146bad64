package handlers

import (
	"net/http"
	"time"

	"taxiops/internal/domain"
	"taxiops/internal/domain/models"
	"taxiops/internal/http/middleware"
	"taxiops/internal/repositories"
	"taxiops/internal/services"

	"github.com/gin-gonic/gin"
)

const msgLoginFailed = "Invalid credentials or server error."

func authService(c *gin.Context) services.AuthService {
	return services.AuthService{
		Repo:      repositories.AuthRepository{API: api(c)},
		Tokens:    current().Tokens,
		RequestID: middleware.GetRequestID(c),
	}
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var creds models.Credentials
	if !BindJSONOrError(c, &creds) {
		return
	}

	res, err := authService(c).Login(c.Request.Context(), creds)
	if err != nil {
		if up, ok := domain.AsUpstream(err); ok {
			status := http.StatusBadGateway
			if up.Status >= 400 && up.Status < 500 {
				status = http.StatusUnauthorized
			}
			respondError(c, status, "login_failed", msgLoginFailed, nil)
			return
		}
		RespondDomainError(c, err)
		return
	}

	setSessionCookie(c, res.Session, time.Until(res.ExpiresAt))
	c.JSON(http.StatusOK, gin.H{
		"message":   "Login successful. Redirecting...",
		"name":      res.Name,
		"userId":    res.UserID,
		"token":     res.Token,
		"session":   res.Session,
		"expiresAt": res.ExpiresAt,
	})
}

// POST /api/auth/logout
func Logout(c *gin.Context) {
	setSessionCookie(c, "", -1)
	respondMessage(c, http.StatusOK, "Logged out")
}

// POST /api/admins
func CreateAdmin(c *gin.Context) {
	var in models.AdminSignup
	if !BindJSONOrError(c, &in) {
		return
	}
	if err := authService(c).Signup(c.Request.Context(), in); err != nil {
		RespondDomainError(c, err)
		return
	}
	respondMessage(c, http.StatusCreated, "Admin account created successfully!")
}

// GET /api/auth/me
func Me(c *gin.Context) {
	id, name := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"userId": id, "name": name})
}

func setSessionCookie(c *gin.Context, value string, ttl time.Duration) {
	maxAge := int(ttl.Seconds())
	if ttl < 0 {
		maxAge = -1
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, value, maxAge, "/", "", c.Request.TLS != nil, true)
}
