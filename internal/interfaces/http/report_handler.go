package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caixalivre/pdv-api/internal/application/dto"
	"github.com/caixalivre/pdv-api/internal/application/reports"
)

// ReportHandler relatórios agregados de vendas.
type ReportHandler struct {
	uc *reports.SalesReportUseCase
}

// NewReportHandler constrói o handler de relatórios.
func NewReportHandler(uc *reports.SalesReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// SalesSummary devolve os agregados de ?startDate=&endDate= (padrão: dia
// corrente).
func (h *ReportHandler) SalesSummary(c *fiber.Ctx) error {
	start, err := parseDateQuery(c.Query("startDate"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "startDate inválido"})
	}
	end, err := parseEndDateQuery(c.Query("endDate"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "endDate inválido"})
	}

	out, err := h.uc.SalesSummary(c.Context(), GetBusinessID(c), start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
