package database

import (
	"fmt"
	"strings"
	"time"
)

const (
	columnClientID = "client_id"
	columnStatus   = "status"
	columnDeadline = "deadline"
	columnDueDate  = "due_date"
)

const dateLayout = "2006-01-02"

// QueryBuilder helps build WHERE clauses safely
type QueryBuilder struct {
	conditions []string
	args       []interface{}
	argCount   int
}

func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{
		conditions: []string{},
		args:       []interface{}{},
		argCount:   1,
	}
}

func (qb *QueryBuilder) AddCondition(column string, value interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf("%s = $%d", column, qb.argCount))
	qb.args = append(qb.args, value)
	qb.argCount++
}

// AddDateRange adds inclusive calendar-date bounds on a DATE column.
// Either bound may be empty.
func (qb *QueryBuilder) AddDateRange(column, start, end string) error {
	if start != "" {
		startDate, err := parseDate(start)
		if err != nil {
			return fmt.Errorf("invalid start date: %w", err)
		}
		qb.conditions = append(qb.conditions, fmt.Sprintf("%s >= $%d", column, qb.argCount))
		qb.args = append(qb.args, startDate)
		qb.argCount++
	}

	if end != "" {
		endDate, err := parseDate(end)
		if err != nil {
			return fmt.Errorf("invalid end date: %w", err)
		}
		qb.conditions = append(qb.conditions, fmt.Sprintf("%s <= $%d", column, qb.argCount))
		qb.args = append(qb.args, endDate)
		qb.argCount++
	}

	return nil
}

func (qb *QueryBuilder) WhereClause() string {
	if len(qb.conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(qb.conditions, " AND ")
}

func (qb *QueryBuilder) Args() []interface{} {
	return qb.args
}

func (qb *QueryBuilder) NextArgNum() int {
	return qb.argCount
}

// Helper functions

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func validateLimit(limit, defaultLimit, maxLimit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

func validateOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
