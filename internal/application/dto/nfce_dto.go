package dto

import "time"

// CreateNFCeRequest emissão de registro fiscal para uma venda.
// CNPJ é o do emitente; Series zero usa a série padrão configurada.
type CreateNFCeRequest struct {
	SaleID string `json:"saleId"`
	CNPJ   string `json:"cnpj"`
	Series int    `json:"series"`
}

// NFCeResponse registro fiscal persistido.
type NFCeResponse struct {
	ID          string    `json:"id"`
	BusinessID  string    `json:"businessId"`
	SaleID      string    `json:"saleId"`
	Number      int       `json:"number"`
	Series      int       `json:"series"`
	AccessKey   string    `json:"accessKey"`
	Environment string    `json:"environment"`
	Status      string    `json:"status"`
	Protocol    string    `json:"protocol,omitempty"`
	IssuedAt    time.Time `json:"issuedAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NFCeListResponse listagem paginada de registros fiscais.
type NFCeListResponse struct {
	Items []NFCeResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
