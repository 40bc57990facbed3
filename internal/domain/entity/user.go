package entity

import "time"

// Papéis válidos para User.
const (
	RoleSuperAdmin = "superadmin" // acesso cross-tenant
	RoleAdmin      = "admin"
	RoleGerente    = "gerente"
	RoleCaixa      = "caixa"
)

// User representa um operador do sistema (pertence a um Business).
type User struct {
	ID           string
	BusinessID   string
	Email        string
	PasswordHash string // hash bcrypt, nunca em claro no domínio após persistir
	Name         string
	Role         string // superadmin, admin, gerente, caixa
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
