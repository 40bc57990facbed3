package entity

import "time"

// Planos disponíveis para Business.
const (
	PlanFree       = "free"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"
)

// Business representa um estabelecimento/tenant do sistema (multi-tenant).
// Todas as demais entidades pertencem a um Business via BusinessID.
type Business struct {
	ID         string
	Name       string
	TradeName  string // nome fantasia exibido no cupom e na UI
	CNPJ       string // somente dígitos (14)
	LogoURL    string
	ThemeColor string
	Plan       string // free, pro, enterprise
	Status     string // active, suspended, inactive
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
