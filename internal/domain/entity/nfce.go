package entity

import "time"

// Status de autorização de uma NFC-e junto à SEFAZ.
// O envio ao webservice fica fora do escopo; o status é registrado conforme
// informado pelo emissor externo.
const (
	NFCeStatusPending    = "pending"
	NFCeStatusAuthorized = "authorized"
	NFCeStatusRejected   = "rejected"
	NFCeStatusCanceled   = "canceled"
)

// Ambientes de emissão (tpAmb do layout da NF-e).
const (
	NFCeEnvProduction   = "1"
	NFCeEnvHomologation = "2"
)

// NFCe representa o registro fiscal (modelo 65) vinculado a uma venda.
type NFCe struct {
	ID          string
	BusinessID  string
	SaleID      string
	Number      int    // nNF, sequencial por série
	Series      int    // série de emissão
	AccessKey   string // chave de acesso de 44 dígitos (com DV módulo 11)
	Environment string // "1" produção, "2" homologação
	Status      string // pending, authorized, rejected, canceled
	Protocol    string // protocolo de autorização devolvido pela SEFAZ
	IssuedAt    time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
