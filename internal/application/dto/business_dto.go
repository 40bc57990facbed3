package dto

import "time"

// CreateBusinessRequest criação de tenant; Name é o único campo obrigatório.
type CreateBusinessRequest struct {
	Name       string `json:"name"`
	TradeName  string `json:"tradeName"`
	CNPJ       string `json:"cnpj"`
	LogoURL    string `json:"logoUrl"`
	ThemeColor string `json:"themeColor"`
	Plan       string `json:"plan"`
}

// BusinessResponse representação HTTP de um tenant.
type BusinessResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	TradeName  string    `json:"tradeName,omitempty"`
	CNPJ       string    `json:"cnpj,omitempty"`
	LogoURL    string    `json:"logoUrl,omitempty"`
	ThemeColor string    `json:"themeColor,omitempty"`
	Plan       string    `json:"plan"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// BusinessListResponse listagem de tenants.
type BusinessListResponse struct {
	Items []BusinessResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
