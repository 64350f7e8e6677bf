package handlers

import (
	"net/http"

	"portal/database"
	"portal/models"
	"portal/view"

	"github.com/gin-gonic/gin"
)

// InvoiceQueryParams filters GET /api/invoices. Due-date bounds are
// calendar dates (YYYY-MM-DD).
type InvoiceQueryParams struct {
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
	DueAfter  string `form:"due_after"`
	DueBefore string `form:"due_before"`
}

func ListInvoices(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var params InvoiceQueryParams
		if err := c.ShouldBindQuery(&params); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		invoices, total, err := db.ListInvoices(ctx, params.Limit, params.Offset, params.DueAfter, params.DueBefore)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list invoices"})
			return
		}

		c.JSON(http.StatusOK, models.InvoicesResponse{
			Invoices: invoices,
			Total:    total,
		})
	}
}

func ListPayments(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var params struct {
			Limit int `form:"limit"`
		}
		if err := c.ShouldBindQuery(&params); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		payments, err := db.AllPayments(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list payments"})
			return
		}

		total := len(payments)
		if params.Limit > 0 {
			payments = view.FirstN(payments, params.Limit)
		}

		c.JSON(http.StatusOK, models.PaymentsResponse{
			Payments: payments,
			Total:    total,
		})
	}
}
