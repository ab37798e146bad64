package models

type Credentials struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResult is the backend login response.
type LoginResult struct {
	Name   string     `json:"name"`
	UserID FlexString `json:"userId"`
	Token  string     `json:"token"`
}

type AdminSignup struct {
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}
