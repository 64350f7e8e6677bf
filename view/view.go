// Package view derives display values from canonical records: status
// coloring, progress badges, formatted amounts, credential action groups.
// Every function here is total and side-effect free; unknown input maps to
// a neutral default rather than an error.
package view

import (
	"fmt"

	"portal/models"

	"github.com/shopspring/decimal"
)

// ClassDefault is the neutral tag returned for any status outside the
// known enumerations.
const ClassDefault = "neutral"

// ProjectStatusClass maps a project status to its style classification tag.
func ProjectStatusClass(s models.ProjectStatus) string {
	switch s {
	case models.StatusPlanning:
		return "blue"
	case models.StatusActive:
		return "green"
	case models.StatusOnHold:
		return "yellow"
	case models.StatusCompleted:
		return "gray"
	default:
		return ClassDefault
	}
}

// InvoiceStatusClass maps an invoice status to its style classification tag.
func InvoiceStatusClass(s models.InvoiceStatus) string {
	switch s {
	case models.InvoiceDraft:
		return "gray"
	case models.InvoiceSent:
		return "blue"
	case models.InvoicePaid:
		return "green"
	case models.InvoiceOverdue:
		return "red"
	default:
		return ClassDefault
	}
}

// ProgressBadge renders a progress value as a percentage badge, clamped to
// the displayable 0-100 range.
func ProgressBadge(progress int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	return fmt.Sprintf("%d%%", progress)
}

// FormatAmount renders a decimal amount with exactly two fraction digits.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatNullAmount renders an optional amount; absent displays as "0.00".
func FormatNullAmount(d decimal.NullDecimal) string {
	if !d.Valid {
		return "0.00"
	}
	return FormatAmount(d.Decimal)
}

// FilterProjectsByStatus keeps projects in the given status, preserving
// input order.
func FilterProjectsByStatus(projects []models.Project, status models.ProjectStatus) []models.Project {
	filtered := []models.Project{}
	for _, p := range projects {
		if p.Status == status {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FirstN returns at most the first n items, preserving input order.
// A non-positive n yields an empty slice.
func FirstN[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
