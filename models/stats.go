package models

import "github.com/shopspring/decimal"

// DashboardStats is the summary record shown at the top of the portal.
// Recomputed from the latest fetched collections on every request,
// never persisted.
type DashboardStats struct {
	TotalProjects     int             `json:"total_projects"`
	ActiveProjects    int             `json:"active_projects"`
	CompletedProjects int             `json:"completed_projects"`
	TotalInvoices     int             `json:"total_invoices"`
	TotalSpent        decimal.Decimal `json:"total_spent"`
	PendingAmount     decimal.Decimal `json:"pending_amount"`
	PaidInvoices      int             `json:"paid_invoices"`
}
