package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"marquesa/internal/domain/models"
	"marquesa/internal/repositories"
	"marquesa/internal/utils"
)

// ReportService renders the sales report PDF for the admin panel.
type ReportService struct {
	SaleRepo  repositories.SaleRepository
	RequestID string

	// Loader overrides the repository lookup in tests.
	Loader func(ctx context.Context) ([]models.Sale, int64, error)
}

func (s ReportService) loadSales(ctx context.Context) ([]models.Sale, int64, error) {
	if s.Loader != nil {
		return s.Loader(ctx)
	}

	stats := StatsService{SaleRepo: s.SaleRepo}
	sales, _, amount, err := stats.SalesWithTotal(ctx)
	return sales, amount, err
}

// GenerateSalesReport builds the PDF, optionally bounded to a
// YYYY-MM-DD range (already validated by the handler).
func (s ReportService) GenerateSalesReport(ctx context.Context, from, to string) ([]byte, string, error) {
	sales, total, err := s.loadSales(ctx)
	if err != nil {
		return nil, "", err
	}

	if from != "" || to != "" {
		sales, total = filterSalesByDate(sales, from, to)
	}

	utils.LogEvent(s.RequestID, "reports", "sales_pdf", fmt.Sprintf("rows=%d", len(sales)))
	return buildSalesPDF(sales, total, from, to)
}

func filterSalesByDate(sales []models.Sale, from, to string) ([]models.Sale, int64) {
	var fromT, toT time.Time
	var hasFrom, hasTo bool
	if t, err := utils.ParseDate(from); err == nil && from != "" {
		fromT, hasFrom = t, true
	}
	if t, err := utils.ParseDate(to); err == nil && to != "" {
		toT, hasTo = t.Add(24*time.Hour-time.Nanosecond), true
	}

	out := make([]models.Sale, 0, len(sales))
	var total int64
	for _, sale := range sales {
		if hasFrom && sale.CreatedAt.Before(fromT) {
			continue
		}
		if hasTo && sale.CreatedAt.After(toT) {
			continue
		}
		out = append(out, sale)
		total += sale.Total
	}
	return out, total
}

func buildSalesPDF(sales []models.Sale, total int64, from, to string) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Reporte de Ventas", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "LA MARQUESA - REPORTE DE VENTAS")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	period := "Periodo: completo"
	if from != "" || to != "" {
		period = fmt.Sprintf("Periodo: %s a %s", orDash(from), orDash(to))
	}
	pdf.Cell(0, 7, period)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Generado: "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(28, 7, "Fecha", "1", 0, "", false, 0, "")
	pdf.CellFormat(50, 7, "Cliente", "1", 0, "", false, 0, "")
	pdf.CellFormat(60, 7, "Producto", "1", 0, "", false, 0, "")
	pdf.CellFormat(18, 7, "Cant.", "1", 0, "R", false, 0, "")
	pdf.CellFormat(32, 7, "Total", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, sale := range sales {
		pdf.CellFormat(28, 6, utils.FormatDate(sale.CreatedAt), "1", 0, "", false, 0, "")
		pdf.CellFormat(50, 6, clip(sale.ClientName, 30), "1", 0, "", false, 0, "")
		pdf.CellFormat(60, 6, clip(sale.ProductName, 36), "1", 0, "", false, 0, "")
		pdf.CellFormat(18, 6, fmt.Sprintf("%d", sale.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(32, 6, utils.FormatCentavos(sale.Total), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Ventas: %d    Total: %s", len(sales), utils.FormatCentavos(total)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("VENTAS_%s_%s.pdf", orWord(from, "inicio"), orWord(to, "hoy"))
	return buf.Bytes(), filename, nil
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func orWord(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
