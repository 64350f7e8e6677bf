// Package dashboard reduces the portal's raw collections into the summary
// record shown on the overview page. Everything here is a pure function of
// its inputs: no I/O, no shared state, safe to call from concurrent handlers.
package dashboard

import (
	"portal/models"

	"github.com/shopspring/decimal"
)

// Aggregate folds the three collections into one DashboardStats record.
// Collection order is irrelevant and empty or nil collections yield zero
// stats. Money fields are summed with decimal arithmetic so cents never
// drift, regardless of collection size.
func Aggregate(projects []models.Project, invoices []models.Invoice, payments []models.Payment) models.DashboardStats {
	stats := models.DashboardStats{
		TotalProjects: len(projects),
		TotalInvoices: len(invoices),
		TotalSpent:    decimal.Zero,
		PendingAmount: decimal.Zero,
	}

	for _, p := range projects {
		switch p.Status {
		case models.StatusActive:
			stats.ActiveProjects++
		case models.StatusCompleted:
			stats.CompletedProjects++
		}
	}

	for _, inv := range invoices {
		switch inv.Status {
		case models.InvoicePaid:
			stats.PaidInvoices++
		case models.InvoiceSent, models.InvoiceOverdue:
			stats.PendingAmount = stats.PendingAmount.Add(inv.Amount)
		}
	}

	for _, pay := range payments {
		stats.TotalSpent = stats.TotalSpent.Add(pay.Amount)
	}

	return stats
}
