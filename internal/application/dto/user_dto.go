package dto

import "time"

// RegisterRequest cadastro de usuário.
type RegisterRequest struct {
	BusinessID string `json:"businessId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"` // padrão: caixa
}

// LoginRequest credenciais de login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse perfil de usuário (nunca inclui o hash da senha).
type UserResponse struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"businessId"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// LoginResponse token bearer + perfil.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
