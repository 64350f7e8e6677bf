package database

import (
	"context"
	"fmt"

	"portal/models"
)

// AllPayments retrieves every payment, newest-first. The dashboard sums the
// whole collection, so there is no pagination here.
func (db *DB) AllPayments(ctx context.Context) ([]models.Payment, error) {
	query := `
		SELECT id, amount, payment_date, COALESCE(payment_method, ''), COALESCE(notes, ''), created_at
		FROM payments
		ORDER BY payment_date DESC
	`

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payments: %w", err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		var p models.Payment
		err := rows.Scan(&p.ID, &p.Amount, &p.PaymentDate, &p.PaymentMethod, &p.Notes, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payments: %w", err)
	}

	return payments, nil
}
