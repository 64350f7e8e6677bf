package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"portal/models"
)

// ListInvoices retrieves invoices newest-first with optional due-date
// bounds and pagination. Total comes from COUNT(*) OVER() so the listing
// stays a single query.
func (db *DB) ListInvoices(ctx context.Context, limit, offset int, dueAfter, dueBefore string) ([]models.Invoice, int64, error) {
	start := time.Now()
	defer func() {
		log.Printf("ListInvoices: duration=%v", time.Since(start))
	}()

	limit = validateLimit(limit, defaultLimit, maxLimit)
	offset = validateOffset(offset)

	qb := NewQueryBuilder()
	if err := qb.AddDateRange(columnDueDate, dueAfter, dueBefore); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, project_id, invoice_number, amount, due_date, status, created_at, updated_at,
			COUNT(*) OVER() as total_count
		FROM invoices
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, qb.WhereClause(), qb.NextArgNum(), qb.NextArgNum()+1)

	args := append(qb.Args(), limit, offset)

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	invoices := []models.Invoice{}
	var total int64

	for rows.Next() {
		var inv models.Invoice
		err := rows.Scan(
			&inv.ID, &inv.ProjectID, &inv.InvoiceNumber, &inv.Amount,
			&inv.DueDate, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating invoices: %w", err)
	}

	return invoices, total, nil
}

// AllInvoices retrieves every invoice, for aggregation. No pagination: the
// stats snapshot must cover the whole collection.
func (db *DB) AllInvoices(ctx context.Context) ([]models.Invoice, error) {
	query := `
		SELECT id, project_id, invoice_number, amount, due_date, status, created_at, updated_at
		FROM invoices
		ORDER BY created_at DESC
	`

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoices: %w", err)
	}
	defer rows.Close()

	invoices := []models.Invoice{}
	for rows.Next() {
		var inv models.Invoice
		err := rows.Scan(
			&inv.ID, &inv.ProjectID, &inv.InvoiceNumber, &inv.Amount,
			&inv.DueDate, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoices: %w", err)
	}

	return invoices, nil
}
