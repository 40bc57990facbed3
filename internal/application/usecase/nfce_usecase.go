package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/caixalivre/pdv-api/internal/application/dto"
	"github.com/caixalivre/pdv-api/internal/application/store"
	"github.com/caixalivre/pdv-api/internal/domain"
	"github.com/caixalivre/pdv-api/internal/domain/entity"
	"github.com/caixalivre/pdv-api/internal/domain/nfce"
)

// NFCeConfig parâmetros fiscais do emissor.
type NFCeConfig struct {
	Environment string // "1" produção, "2" homologação
	UFCode      string // código IBGE da UF
	Series      int    // série padrão
}

// NFCeUseCase cria e lista registros fiscais NFC-e vinculados a vendas.
// A chave de acesso é derivada localmente; o envio à SEFAZ e a atualização do
// status de autorização ficam a cargo do emissor externo.
type NFCeUseCase struct {
	store store.Provider
	keys  *nfce.KeyBuilder
	cfg   NFCeConfig
}

// NewNFCeUseCase constrói o caso de uso.
func NewNFCeUseCase(provider store.Provider, cfg NFCeConfig) *NFCeUseCase {
	return &NFCeUseCase{store: provider, keys: nfce.NewKeyBuilder(), cfg: cfg}
}

// Create emite o registro fiscal de uma venda: numera na série, monta a chave
// de acesso de 44 dígitos e persiste com status pending.
func (uc *NFCeUseCase) Create(ctx context.Context, businessID string, in dto.CreateNFCeRequest) (*dto.NFCeResponse, error) {
	if in.SaleID == "" || len(in.CNPJ) != 14 {
		return nil, domain.ErrInvalidInput
	}
	s := uc.store.Select(ctx)

	sale, err := s.Sales.GetByID(in.SaleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.BusinessID != businessID {
		return nil, domain.ErrForbidden
	}

	series := in.Series
	if series == 0 {
		series = uc.cfg.Series
	}
	number, err := s.Receipts.NextNumber(businessID, series)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	code, err := randomNumericCode()
	if err != nil {
		return nil, err
	}
	key, err := uc.keys.Build(&nfce.KeyParams{
		UFCode:       uc.cfg.UFCode,
		IssuedAt:     now,
		CNPJ:         in.CNPJ,
		Series:       series,
		Number:       number,
		EmissionType: "1",
		Code:         code,
	})
	if err != nil {
		return nil, err
	}

	receipt := &entity.NFCe{
		ID:          uuid.New().String(),
		BusinessID:  businessID,
		SaleID:      in.SaleID,
		Number:      number,
		Series:      series,
		AccessKey:   key,
		Environment: uc.cfg.Environment,
		Status:      entity.NFCeStatusPending,
		IssuedAt:    now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Receipts.Create(receipt); err != nil {
		return nil, err
	}
	return toNFCeResponse(receipt), nil
}

// List lista registros fiscais do tenant.
func (uc *NFCeUseCase) List(ctx context.Context, businessID string, limit, offset int) (*dto.NFCeListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	s := uc.store.Select(ctx)
	list, err := s.Receipts.ListByBusiness(businessID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NFCeResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toNFCeResponse(r))
	}
	return &dto.NFCeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// randomNumericCode gera o cNF: 8 dígitos aleatórios que entram na chave.
func randomNumericCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(100000000))
	if err != nil {
		return "", fmt.Errorf("gerar cNF: %w", err)
	}
	return fmt.Sprintf("%08d", n.Int64()), nil
}

func toNFCeResponse(r *entity.NFCe) *dto.NFCeResponse {
	return &dto.NFCeResponse{
		ID:          r.ID,
		BusinessID:  r.BusinessID,
		SaleID:      r.SaleID,
		Number:      r.Number,
		Series:      r.Series,
		AccessKey:   r.AccessKey,
		Environment: r.Environment,
		Status:      r.Status,
		Protocol:    r.Protocol,
		IssuedAt:    r.IssuedAt,
		CreatedAt:   r.CreatedAt,
	}
}
