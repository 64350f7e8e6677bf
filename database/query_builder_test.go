package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryBuilder_AddCondition(t *testing.T) {
	qb := NewQueryBuilder()

	qb.AddCondition("status", "active")

	assert.Equal(t, "WHERE status = $1", qb.WhereClause())
	assert.Equal(t, []interface{}{"active"}, qb.Args())
	assert.Equal(t, 2, qb.NextArgNum())
}

func TestQueryBuilder_MultipleConditions(t *testing.T) {
	qb := NewQueryBuilder()

	qb.AddCondition("status", "active")
	qb.AddCondition("client_id", "123")

	assert.Equal(t, "WHERE status = $1 AND client_id = $2", qb.WhereClause())
	assert.Equal(t, []interface{}{"active", "123"}, qb.Args())
	assert.Equal(t, 3, qb.NextArgNum())
}

func TestQueryBuilder_AddDateRange(t *testing.T) {
	tests := []struct {
		name           string
		start          string
		end            string
		wantConditions int
		wantErr        bool
	}{
		{
			name:           "both bounds",
			start:          "2026-01-01",
			end:            "2026-12-31",
			wantConditions: 2,
			wantErr:        false,
		},
		{
			name:           "only start",
			start:          "2026-01-01",
			end:            "",
			wantConditions: 1,
			wantErr:        false,
		},
		{
			name:           "only end",
			start:          "",
			end:            "2026-12-31",
			wantConditions: 1,
			wantErr:        false,
		},
		{
			name:           "neither",
			start:          "",
			end:            "",
			wantConditions: 0,
			wantErr:        false,
		},
		{
			name:    "invalid start date",
			start:   "not-a-date",
			end:     "",
			wantErr: true,
		},
		{
			name:    "invalid end date",
			start:   "",
			end:     "not-a-date",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qb := NewQueryBuilder()
			err := qb.AddDateRange("due_date", tt.start, tt.end)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, qb.Args(), tt.wantConditions)
			}
		})
	}
}

func TestQueryBuilder_WhereClause_Empty(t *testing.T) {
	qb := NewQueryBuilder()

	assert.Equal(t, "", qb.WhereClause())
	assert.Empty(t, qb.Args())
}

func TestQueryBuilder_ComplexQuery(t *testing.T) {
	qb := NewQueryBuilder()

	qb.AddCondition("client_id", "abc-123")
	qb.AddCondition("status", "active")
	err := qb.AddDateRange("deadline", "2026-01-01", "2026-12-31")
	require.NoError(t, err)

	whereClause := qb.WhereClause()

	assert.Contains(t, whereClause, "client_id = $1")
	assert.Contains(t, whereClause, "status = $2")
	assert.Contains(t, whereClause, "deadline >= $3")
	assert.Contains(t, whereClause, "deadline <= $4")
	assert.Len(t, qb.Args(), 4)
}
