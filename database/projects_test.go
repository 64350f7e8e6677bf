package database

import (
	"context"
	"testing"

	"portal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func seedClient(t *testing.T, db *DB) *models.Client {
	t.Helper()
	client, err := db.CreateClient(context.Background(), "Test Client")
	require.NoError(t, err)
	return client
}

func seedProject(t *testing.T, db *DB, clientID uuid.UUID, name string) *models.Project {
	t.Helper()
	project, err := db.CreateProject(context.Background(), models.ProjectPatch{
		Name:     strp(name),
		ClientID: &clientID,
	})
	require.NoError(t, err)
	return project
}

func TestCreateProject(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	client := seedClient(t, db)

	ctx := context.Background()
	status := models.StatusActive
	progress := 40
	project, err := db.CreateProject(ctx, models.ProjectPatch{
		Name:        strp("Portfolio relaunch"),
		ClientID:    &client.ID,
		Description: strp("New marketing site"),
		Status:      &status,
		Budget:      strp("1200.50"),
		Progress:    &progress,
		Deadline:    strp("2026-03-14"),
		HostingLink: strp("https://app.example.com"),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, project.ID)
	assert.Equal(t, client.ID, project.ClientID)
	assert.Equal(t, "Portfolio relaunch", project.Name)
	assert.Equal(t, models.StatusActive, project.Status)
	assert.Equal(t, 40, project.Progress)
	require.True(t, project.Budget.Valid)
	assert.True(t, project.Budget.Decimal.Equal(decimal.RequireFromString("1200.50")))
	require.NotNil(t, project.Deadline)
	assert.Equal(t, "2026-03-14", project.Deadline.Format("2006-01-02"))
	assert.Equal(t, "https://app.example.com", project.HostingLink)
	assert.False(t, project.CreatedAt.IsZero())
}

func TestCreateProject_Defaults(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	client := seedClient(t, db)
	project := seedProject(t, db, client.ID, "Bare project")

	assert.Equal(t, models.StatusPlanning, project.Status)
	assert.Equal(t, 0, project.Progress)
	assert.False(t, project.Budget.Valid)
	assert.Nil(t, project.Deadline)
	assert.Equal(t, "", project.Description)
	assert.Equal(t, "", project.HostingLink)
	assert.Equal(t, "", project.AdminPassword)
}

func TestCreateProject_RequiresNameAndClient(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()
	_, err := db.CreateProject(ctx, models.ProjectPatch{Name: strp("No client")})
	assert.Error(t, err)

	client := seedClient(t, db)
	_, err = db.CreateProject(ctx, models.ProjectPatch{ClientID: &client.ID})
	assert.Error(t, err)
}

func TestUpdateProject_PartialPatchPreservesOtherFields(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	client := seedClient(t, db)
	ctx := context.Background()
	created, err := db.CreateProject(ctx, models.ProjectPatch{
		Name:          strp("Portfolio relaunch"),
		ClientID:      &client.ID,
		HostingLink:   strp("https://app.example.com"),
		AdminUsername: strp("admin"),
	})
	require.NoError(t, err)

	progress := 75
	updated, err := db.UpdateProject(ctx, created.ID, models.ProjectPatch{Progress: &progress})
	require.NoError(t, err)

	assert.Equal(t, 75, updated.Progress)
	assert.Equal(t, "https://app.example.com", updated.HostingLink, "untouched field must survive a partial patch")
	assert.Equal(t, "admin", updated.AdminUsername)
	assert.Equal(t, created.Name, updated.Name)
}

func TestUpdateProject_EmptyStringClearsField(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	client := seedClient(t, db)
	ctx := context.Background()
	created, err := db.CreateProject(ctx, models.ProjectPatch{
		Name:          strp("Portfolio relaunch"),
		ClientID:      &client.ID,
		HostingLink:   strp("https://app.example.com"),
		ShortVideoURL: strp("https://videos.example.com/short.mp4"),
	})
	require.NoError(t, err)

	updated, err := db.UpdateProject(ctx, created.ID, models.ProjectPatch{HostingLink: strp("")})
	require.NoError(t, err)

	assert.Equal(t, "", updated.HostingLink, "explicit empty string clears the field")
	assert.Equal(t, "https://videos.example.com/short.mp4", updated.ShortVideoURL, "other fields untouched")
}

func TestUpdateProject_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	_, err := db.UpdateProject(context.Background(), uuid.New(), models.ProjectPatch{Name: strp("ghost")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetProject_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	_, err := db.GetProject(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListProjects_StatusFilter(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	client := seedClient(t, db)
	ctx := context.Background()

	active := models.StatusActive
	completed := models.StatusCompleted
	for _, tc := range []struct {
		name   string
		status *models.ProjectStatus
	}{
		{"one", &active},
		{"two", &completed},
		{"three", &active},
	} {
		_, err := db.CreateProject(ctx, models.ProjectPatch{
			Name:     strp(tc.name),
			ClientID: &client.ID,
			Status:   tc.status,
		})
		require.NoError(t, err)
	}

	projects, total, err := db.ListProjects(ctx, models.ProjectQueryParams{Status: "active"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, p := range projects {
		assert.Equal(t, models.StatusActive, p.Status)
	}

	all, total, err := db.ListProjects(ctx, models.ProjectQueryParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, all, 3)
}

func TestListProjects_ClientAndDeadlineFilters(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	first := seedClient(t, db)
	second := seedClient(t, db)
	ctx := context.Background()

	for _, tc := range []struct {
		name     string
		clientID uuid.UUID
		deadline string
	}{
		{"january", first.ID, "2026-01-15"},
		{"june", first.ID, "2026-06-15"},
		{"other client", second.ID, "2026-06-15"},
	} {
		_, err := db.CreateProject(ctx, models.ProjectPatch{
			Name:     strp(tc.name),
			ClientID: &tc.clientID,
			Deadline: strp(tc.deadline),
		})
		require.NoError(t, err)
	}

	projects, total, err := db.ListProjects(ctx, models.ProjectQueryParams{ClientID: first.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, p := range projects {
		assert.Equal(t, first.ID, p.ClientID)
	}

	projects, total, err = db.ListProjects(ctx, models.ProjectQueryParams{
		ClientID:      first.ID.String(),
		DeadlineAfter: "2026-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, projects, 1)
	assert.Equal(t, "june", projects[0].Name)

	_, _, err = db.ListProjects(ctx, models.ProjectQueryParams{DeadlineBefore: "2026-01-15"})
	require.NoError(t, err)

	_, _, err = db.ListProjects(ctx, models.ProjectQueryParams{ClientID: "not-a-uuid"})
	assert.Error(t, err)

	_, _, err = db.ListProjects(ctx, models.ProjectQueryParams{DeadlineAfter: "soon"})
	assert.Error(t, err)
}

func TestListProjects_Empty(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	projects, total, err := db.ListProjects(context.Background(), models.ProjectQueryParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestGetClientByAccessKey(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	created := seedClient(t, db)

	retrieved, err := db.GetClientByAccessKey(context.Background(), created.AccessKey)
	require.NoError(t, err)
	assert.Equal(t, created.ID, retrieved.ID)
	assert.Equal(t, created.Name, retrieved.Name)

	_, err = db.GetClientByAccessKey(context.Background(), "portal_nope")
	assert.Error(t, err)
}
