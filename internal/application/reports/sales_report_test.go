package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caixalivre/pdv-api/internal/application/reports"
	"github.com/caixalivre/pdv-api/internal/application/store"
	"github.com/caixalivre/pdv-api/internal/domain/entity"
	"github.com/caixalivre/pdv-api/internal/infrastructure/memstore"
)

type memProvider struct{ set *store.Set }

func (p *memProvider) Select(context.Context) *store.Set { return p.set }
func (p *memProvider) Persistent(context.Context) bool   { return false }

func TestSalesSummary_TicketMedio(t *testing.T) {
	set := memstore.NewStore().Set()
	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	totals := []string{"10.00", "15.50"}
	for i, total := range totals {
		d, err := decimal.NewFromString(total)
		require.NoError(t, err)
		require.NoError(t, set.Sales.Create(&entity.Sale{
			ID: string(rune('a' + i)), BusinessID: "biz-a",
			Status: entity.SaleStatusCompleted, Total: d,
			PaymentMethod: entity.PaymentCash, CreatedAt: base,
		}))
	}

	uc := reports.NewSalesReportUseCase(&memProvider{set: set})
	out, err := uc.SalesSummary(context.Background(), "biz-a",
		base.Add(-time.Hour), base.Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, 2, out.Count)
	assert.Equal(t, "25.5", out.Revenue.String())
	// 25.50 / 2 = 12.75
	assert.Equal(t, "12.75", out.AverageTicket.String())
}

func TestSalesSummary_PeriodoSemVendas(t *testing.T) {
	set := memstore.NewStore().Set()
	uc := reports.NewSalesReportUseCase(&memProvider{set: set})

	out, err := uc.SalesSummary(context.Background(), "biz-a", time.Time{}, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, 0, out.Count)
	assert.True(t, out.Revenue.IsZero())
	assert.True(t, out.AverageTicket.IsZero())
	assert.Empty(t, out.ByPayment)
	assert.Empty(t, out.TopProducts)
}
