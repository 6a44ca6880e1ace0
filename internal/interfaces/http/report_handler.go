package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kardex-api/internal/application/report"
)

// ReportHandler maneja las consultas derivadas del libro: reporte de saldos,
// exportaciones, desglose por producto y tablero.
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Balances godoc
// @Summary      Reporte de saldos por (producto, ubicación)
// @Description  Solo saldos distintos de cero, ordenados por producto y ubicación.
// @Tags         report
// @Produce      json
// @Success      200  {array}  dto.BalanceRowDTO
// @Router       /api/report/balances [get]
func (h *ReportHandler) Balances(c *fiber.Ctx) error {
	rows, err := h.uc.Balances()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rows)
}

// BalancesPDF godoc
// @Summary      Reporte de saldos en PDF
// @Tags         report
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/report/balances/pdf [get]
func (h *ReportHandler) BalancesPDF(c *fiber.Ctx) error {
	out, err := h.uc.ExportPDF()
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="saldos.pdf"`)
	return c.Send(out)
}

// BalancesXML godoc
// @Summary      Reporte de saldos en XML
// @Tags         report
// @Produce      application/xml
// @Success      200  {file}  binary
// @Router       /api/report/balances/xml [get]
func (h *ReportHandler) BalancesXML(c *fiber.Ctx) error {
	out, err := h.uc.ExportXML()
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="saldos.xml"`)
	return c.Send(out)
}

// ProductStock godoc
// @Summary      Stock total y desglose por ubicación de un producto
// @Tags         report
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductStockResponse
// @Router       /api/report/products/{id}/stock [get]
func (h *ReportHandler) ProductStock(c *fiber.Ctx) error {
	out, err := h.uc.ProductStock(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      Resumen del tablero
// @Description  Conteos, últimos 10 movimientos y los 10 saldos más grandes por valor absoluto.
// @Tags         report
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
