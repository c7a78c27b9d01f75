package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marquesa/internal/http/middleware"
	"marquesa/internal/repositories"
	"marquesa/internal/services"
	"marquesa/internal/utils"
)

// ListSales returns the sales listing with the count and the summed
// amount, formatted for the admin dashboard.
func ListSales(c *gin.Context) {
	svc := services.StatsService{
		ClientRepo: repositories.ClientRepository{},
		SaleRepo:   repositories.SaleRepository{},
	}
	sales, total, amount, err := svc.SalesWithTotal(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondSuccess(c, http.StatusOK, gin.H{
		"sales":           sales,
		"total":           total,
		"totalAmount":     amount,
		"formattedAmount": utils.FormatCentavos(amount),
	})
}

// SalesTotal returns the count and summed amount without the listing.
func SalesTotal(c *gin.Context) {
	repo := repositories.SaleRepository{}
	total, err := repo.Count(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	amount, err := repo.TotalAmount(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondSuccess(c, http.StatusOK, gin.H{
		"total":           total,
		"totalAmount":     amount,
		"formattedAmount": utils.FormatCentavos(amount),
	})
}

// GetSalesReportPDF streams the sales report for an optional date range.
func GetSalesReportPDF(c *gin.Context) {
	svc := services.ReportService{
		SaleRepo:  repositories.SaleRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateSalesReport(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
