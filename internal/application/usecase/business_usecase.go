package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/caixalivre/pdv-api/internal/application/dto"
	"github.com/caixalivre/pdv-api/internal/application/store"
	"github.com/caixalivre/pdv-api/internal/domain"
	"github.com/caixalivre/pdv-api/internal/domain/entity"
)

// BusinessUseCase casos de uso para tenants. A restrição de papel (admin para
// criar, superadmin para listar todos) é aplicada na camada HTTP; aqui entra
// apenas o escopo de dados.
type BusinessUseCase struct {
	store store.Provider
}

// NewBusinessUseCase constrói o caso de uso.
func NewBusinessUseCase(provider store.Provider) *BusinessUseCase {
	return &BusinessUseCase{store: provider}
}

// Create cria um tenant. Name é obrigatório.
func (uc *BusinessUseCase) Create(ctx context.Context, in dto.CreateBusinessRequest) (*dto.BusinessResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	plan := in.Plan
	if plan == "" {
		plan = entity.PlanFree
	}
	now := time.Now()
	business := &entity.Business{
		ID:         uuid.New().String(),
		Name:       in.Name,
		TradeName:  in.TradeName,
		CNPJ:       in.CNPJ,
		LogoURL:    in.LogoURL,
		ThemeColor: in.ThemeColor,
		Plan:       plan,
		Status:     "active",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s := uc.store.Select(ctx)
	if err := s.Businesses.Create(business); err != nil {
		return nil, err
	}
	return toBusinessResponse(business), nil
}

// GetByID devolve um tenant.
func (uc *BusinessUseCase) GetByID(ctx context.Context, id string) (*dto.BusinessResponse, error) {
	s := uc.store.Select(ctx)
	business, err := s.Businesses.GetByID(id)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, nil
	}
	return toBusinessResponse(business), nil
}

// List devolve todos os tenants (camada HTTP restringe ao superadmin).
func (uc *BusinessUseCase) List(ctx context.Context, limit, offset int) (*dto.BusinessListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	s := uc.store.Select(ctx)
	list, err := s.Businesses.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BusinessResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBusinessResponse(b))
	}
	return &dto.BusinessListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toBusinessResponse(b *entity.Business) *dto.BusinessResponse {
	if b == nil {
		return nil
	}
	return &dto.BusinessResponse{
		ID:         b.ID,
		Name:       b.Name,
		TradeName:  b.TradeName,
		CNPJ:       b.CNPJ,
		LogoURL:    b.LogoURL,
		ThemeColor: b.ThemeColor,
		Plan:       b.Plan,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}
