package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"taxiops/internal/domain"
	"taxiops/internal/domain/models"
	"taxiops/internal/repositories"
	"taxiops/internal/utils"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidSession = errors.New("invalid or expired session")

// SessionClaims is what the dashboard session token carries.
type SessionClaims struct {
	Name   string `json:"name"`
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// SessionTokens signs and verifies dashboard session tokens (HS256).
type SessionTokens struct {
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
}

func (t SessionTokens) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

func (t SessionTokens) Issue(name, userID string) (string, time.Time, error) {
	ttl := t.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	issued := t.now()
	exp := issued.Add(ttl)
	claims := SessionClaims{
		Name:   name,
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.Secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session: %w", err)
	}
	return signed, exp, nil
}

func (t SessionTokens) Parse(raw string) (SessionClaims, error) {
	var claims SessionClaims
	token, err := jwt.ParseWithClaims(strings.TrimSpace(raw), &claims, func(tok *jwt.Token) (any, error) {
		return t.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now))
	if err != nil || !token.Valid {
		return SessionClaims{}, ErrInvalidSession
	}
	return claims, nil
}

// LoginResponse is the backend login result plus the dashboard session.
type LoginResponse struct {
	models.LoginResult
	Session   string    `json:"session"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type AuthService struct {
	Repo      repositories.AuthRepository
	Tokens    SessionTokens
	RequestID string
}

// Login authenticates against the backend and issues a dashboard session.
func (s AuthService) Login(ctx context.Context, creds models.Credentials) (LoginResponse, error) {
	res, err := s.Repo.Login(ctx, creds)
	if err != nil {
		return LoginResponse{}, err
	}
	if strings.TrimSpace(res.Token) == "" {
		return LoginResponse{}, domain.UpstreamError{Endpoint: "LOGIN_URL", Msg: "login response has no token"}
	}

	session, exp, err := s.Tokens.Issue(res.Name, res.UserID.String())
	if err != nil {
		return LoginResponse{}, domain.InternalError{Msg: "could not create session", Err: err}
	}
	utils.LogEvent(s.RequestID, "auth", "login", "user_id="+res.UserID.String())
	return LoginResponse{LoginResult: res, Session: session, ExpiresAt: exp}, nil
}

// Signup creates another admin account.
func (s AuthService) Signup(ctx context.Context, admin models.AdminSignup) error {
	if admin.Password != admin.ConfirmPassword {
		return domain.ValidationError{Field: "confirmPassword", Msg: "passwords do not match"}
	}
	if err := s.Repo.Signup(ctx, admin); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "auth", "signup", "email="+admin.Email)
	return nil
}
