package repository

import "github.com/caixalivre/pdv-api/internal/domain/entity"

// NFCeRepository define a porta de persistência para registros fiscais NFC-e.
type NFCeRepository interface {
	Create(nfce *entity.NFCe) error
	GetByID(id string) (*entity.NFCe, error)
	// NextNumber devolve o próximo número sequencial da série para o tenant.
	NextNumber(businessID string, series int) (int, error)
	ListByBusiness(businessID string, limit, offset int) ([]*entity.NFCe, error)
}
