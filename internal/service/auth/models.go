package auth

import "time"

// Credentials логин и пароль оператора
type Credentials struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginResponse выданный токен
type LoginResponse struct {
	Success   bool      `json:"success"`
	Username  string    `json:"username"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
