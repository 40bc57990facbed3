package repository

import "github.com/caixalivre/pdv-api/internal/domain/entity"

// BusinessRepository define a porta de persistência para Business (tenant).
type BusinessRepository interface {
	Create(business *entity.Business) error
	GetByID(id string) (*entity.Business, error)
	// List devolve todos os tenants (restrito ao papel superadmin na camada HTTP).
	List(limit, offset int) ([]*entity.Business, error)
	Update(business *entity.Business) error
}
