package view

import (
	"testing"

	"portal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProjectStatusClass_TotalOverKnownStatuses(t *testing.T) {
	for _, s := range models.ProjectStatuses {
		class := ProjectStatusClass(s)
		assert.NotEqual(t, ClassDefault, class, "known status %q should have its own tag", s)
		assert.NotEmpty(t, class)
	}
}

func TestProjectStatusClass_UnknownFallsBackToDefault(t *testing.T) {
	assert.Equal(t, ClassDefault, ProjectStatusClass("archived"))
	assert.Equal(t, ClassDefault, ProjectStatusClass(""))
}

func TestInvoiceStatusClass_TotalOverKnownStatuses(t *testing.T) {
	for _, s := range models.InvoiceStatuses {
		class := InvoiceStatusClass(s)
		assert.NotEqual(t, ClassDefault, class, "known status %q should have its own tag", s)
		assert.NotEmpty(t, class)
	}
}

func TestInvoiceStatusClass_UnknownFallsBackToDefault(t *testing.T) {
	assert.Equal(t, ClassDefault, InvoiceStatusClass("void"))
}

func TestProgressBadge(t *testing.T) {
	tests := []struct {
		name     string
		progress int
		expected string
	}{
		{name: "zero", progress: 0, expected: "0%"},
		{name: "mid", progress: 40, expected: "40%"},
		{name: "complete", progress: 100, expected: "100%"},
		{name: "clamped above", progress: 130, expected: "100%"},
		{name: "clamped below", progress: -5, expected: "0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ProgressBadge(tt.progress))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "100.00", FormatAmount(decimal.RequireFromString("100")))
	assert.Equal(t, "50.50", FormatAmount(decimal.RequireFromString("50.5")))
	assert.Equal(t, "0.10", FormatAmount(decimal.RequireFromString("0.1")))
}

func TestFormatNullAmount_AbsentDisplaysZero(t *testing.T) {
	assert.Equal(t, "0.00", FormatNullAmount(decimal.NullDecimal{}))
	assert.Equal(t, "1200.50", FormatNullAmount(decimal.NewNullDecimal(decimal.RequireFromString("1200.5"))))
}

func TestCredentialActions_OnlyLiveLinkSet(t *testing.T) {
	c := models.ProjectCredentials{
		ProjectName: "Portfolio relaunch",
		LiveLink:    "https://app.example.com",
	}

	actions := CredentialActions(c)

	assert.Len(t, actions, 1, "exactly one action group expected")
	assert.Equal(t, "live_link", actions[0].Field)
	assert.Equal(t, ActionOpen, actions[0].Kind)
	assert.Equal(t, "https://app.example.com", actions[0].Value)
}

func TestCredentialActions_NoneSetOmitsSection(t *testing.T) {
	c := models.ProjectCredentials{ProjectName: "Bare project"}

	assert.Empty(t, CredentialActions(c))
	assert.False(t, HasCredentialActions(c))
}

func TestCredentialActions_ArbitrarySubset(t *testing.T) {
	c := models.ProjectCredentials{
		ProjectName:       "Portfolio relaunch",
		DatabaseURL:       "postgres://example",
		ServerCredentials: "root / secret",
		FullVideoURL:      "https://videos.example.com/full.mp4",
	}

	actions := CredentialActions(c)

	fields := make([]string, len(actions))
	for i, a := range actions {
		fields[i] = a.Field
	}
	assert.Equal(t, []string{"database_url", "server_credentials", "full_video_url"}, fields)
}

func TestFilterProjectsByStatus_PreservesOrder(t *testing.T) {
	projects := []models.Project{
		{Name: "a", Status: models.StatusActive},
		{Name: "b", Status: models.StatusCompleted},
		{Name: "c", Status: models.StatusActive},
		{Name: "d", Status: models.StatusPlanning},
	}

	active := FilterProjectsByStatus(projects, models.StatusActive)

	assert.Len(t, active, 2)
	assert.Equal(t, "a", active[0].Name)
	assert.Equal(t, "c", active[1].Name)
}

func TestFilterProjectsByStatus_NoMatches(t *testing.T) {
	projects := []models.Project{{Status: models.StatusPlanning}}

	assert.Empty(t, FilterProjectsByStatus(projects, models.StatusOnHold))
	assert.Empty(t, FilterProjectsByStatus(nil, models.StatusActive))
}

func TestFirstN(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2, 3}, FirstN(items, 3))
	assert.Equal(t, items, FirstN(items, 10))
	assert.Empty(t, FirstN(items, 0))
	assert.Empty(t, FirstN(items, -1))
}
