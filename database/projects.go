package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"portal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

const projectColumns = `
	id, client_id, name, COALESCE(description, ''), status, budget, progress, deadline,
	COALESCE(short_video_url, ''), COALESCE(full_feature_video_url, ''),
	COALESCE(hosting_link, ''), COALESCE(admin_login_link, ''),
	COALESCE(admin_username, ''), COALESCE(admin_password, ''),
	COALESCE(credentials_notes, ''),
	created_at, updated_at`

// CreateProject inserts a new project from a normalized patch. Name and
// client ID are required; everything else falls back to the create-flow
// defaults (status planning, progress 0, optionals null).
func (db *DB) CreateProject(ctx context.Context, patch models.ProjectPatch) (*models.Project, error) {
	if patch.Name == nil || *patch.Name == "" {
		return nil, fmt.Errorf("project name is required")
	}
	if patch.ClientID == nil {
		return nil, fmt.Errorf("client id is required")
	}

	status := models.StatusPlanning
	if patch.Status != nil {
		status = *patch.Status
	}
	progress := 0
	if patch.Progress != nil {
		progress = *patch.Progress
	}

	budget, err := budgetValue(patch.Budget)
	if err != nil {
		return nil, err
	}
	deadline, err := deadlineValue(patch.Deadline)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		INSERT INTO projects (
			client_id, name, description, status, budget, progress, deadline,
			short_video_url, full_feature_video_url, hosting_link,
			admin_login_link, admin_username, admin_password, credentials_notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING %s
	`, projectColumns)

	project, err := scanProject(db.Pool.QueryRow(ctx, query,
		*patch.ClientID, *patch.Name, textOrNil(patch.Description), status, budget, progress, deadline,
		textOrNil(patch.ShortVideoURL), textOrNil(patch.FullFeatureVideoURL), textOrNil(patch.HostingLink),
		textOrNil(patch.AdminLoginLink), textOrNil(patch.AdminUsername), textOrNil(patch.AdminPassword),
		textOrNil(patch.CredentialsNotes),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	log.Printf("Created project: %s (ID: %s)", project.Name, project.ID)
	return project, nil
}

// UpdateProject applies a partial patch. Nil fields are untouched; fields
// set to the empty string are cleared, so an edit can remove a previously
// set credential or video link.
func (db *DB) UpdateProject(ctx context.Context, projectID uuid.UUID, patch models.ProjectPatch) (*models.Project, error) {
	sets := []string{}
	args := []interface{}{}
	argNum := 1

	set := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argNum))
		args = append(args, value)
		argNum++
	}

	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.ClientID != nil {
		set("client_id", *patch.ClientID)
	}
	if patch.Description != nil {
		set("description", textOrNil(patch.Description))
	}
	if patch.Status != nil {
		set("status", *patch.Status)
	}
	if patch.Budget != nil {
		budget, err := budgetValue(patch.Budget)
		if err != nil {
			return nil, err
		}
		set("budget", budget)
	}
	if patch.Progress != nil {
		set("progress", *patch.Progress)
	}
	if patch.Deadline != nil {
		deadline, err := deadlineValue(patch.Deadline)
		if err != nil {
			return nil, err
		}
		set("deadline", deadline)
	}
	if patch.ShortVideoURL != nil {
		set("short_video_url", textOrNil(patch.ShortVideoURL))
	}
	if patch.FullFeatureVideoURL != nil {
		set("full_feature_video_url", textOrNil(patch.FullFeatureVideoURL))
	}
	if patch.HostingLink != nil {
		set("hosting_link", textOrNil(patch.HostingLink))
	}
	if patch.AdminLoginLink != nil {
		set("admin_login_link", textOrNil(patch.AdminLoginLink))
	}
	if patch.AdminUsername != nil {
		set("admin_username", textOrNil(patch.AdminUsername))
	}
	if patch.AdminPassword != nil {
		set("admin_password", textOrNil(patch.AdminPassword))
	}
	if patch.CredentialsNotes != nil {
		set("credentials_notes", textOrNil(patch.CredentialsNotes))
	}

	if len(sets) == 0 {
		return db.GetProject(ctx, projectID)
	}

	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf(`
		UPDATE projects
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argNum, projectColumns)
	args = append(args, projectID)

	project, err := scanProject(db.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	log.Printf("Updated project: %s", projectID)
	return project, nil
}

func (db *DB) GetProject(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE id = $1`, projectColumns)

	project, err := scanProject(db.Pool.QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return project, nil
}

// ListProjects retrieves projects with optional status, client and
// deadline-range filters plus pagination. Uses COUNT(*) OVER() to get the
// total in a single query. Returns an empty slice (not nil) when nothing
// matches.
func (db *DB) ListProjects(ctx context.Context, params models.ProjectQueryParams) ([]models.Project, int64, error) {
	start := time.Now()
	defer func() {
		log.Printf("ListProjects: duration=%v filters=[status=%s client=%s]", time.Since(start), params.Status, params.ClientID)
	}()

	limit := validateLimit(params.Limit, defaultLimit, maxLimit)
	offset := validateOffset(params.Offset)

	qb := NewQueryBuilder()
	if params.Status != "" {
		qb.AddCondition(columnStatus, params.Status)
	}
	if params.ClientID != "" {
		clientID, err := uuid.Parse(params.ClientID)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid client_id filter: %w", err)
		}
		qb.AddCondition(columnClientID, clientID)
	}
	if err := qb.AddDateRange(columnDeadline, params.DeadlineAfter, params.DeadlineBefore); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s,
			COUNT(*) OVER() as total_count
		FROM projects
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, projectColumns, qb.WhereClause(), qb.NextArgNum(), qb.NextArgNum()+1)

	args := append(qb.Args(), limit, offset)

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	return scanProjects(rows)
}

// AllProjects retrieves every project, for aggregation. No pagination: the
// stats snapshot must cover the whole collection.
func (db *DB) AllProjects(ctx context.Context) ([]models.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects ORDER BY created_at DESC`, projectColumns)

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}

// Helper functions

func scanProject(row rowScanner) (*models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID, &p.ClientID, &p.Name, &p.Description, &p.Status, &p.Budget, &p.Progress, &p.Deadline,
		&p.ShortVideoURL, &p.FullFeatureVideoURL,
		&p.HostingLink, &p.AdminLoginLink,
		&p.AdminUsername, &p.AdminPassword,
		&p.CredentialsNotes,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProjects(rows rowsScanner) ([]models.Project, int64, error) {
	projects := []models.Project{}
	var total int64

	for rows.Next() {
		var p models.Project
		err := rows.Scan(
			&p.ID, &p.ClientID, &p.Name, &p.Description, &p.Status, &p.Budget, &p.Progress, &p.Deadline,
			&p.ShortVideoURL, &p.FullFeatureVideoURL,
			&p.HostingLink, &p.AdminLoginLink,
			&p.AdminUsername, &p.AdminPassword,
			&p.CredentialsNotes,
			&p.CreatedAt, &p.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, total, nil
}

// textOrNil maps an empty or nil patch string to NULL so optional columns
// stay null rather than holding empty strings.
func textOrNil(s *string) interface{} {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}

func budgetValue(s *string) (interface{}, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, fmt.Errorf("invalid budget: %w", err)
	}
	return d, nil
}

func deadlineValue(s *string) (interface{}, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := parseDate(*s)
	if err != nil {
		return nil, fmt.Errorf("invalid deadline (expected %s): %w", dateLayout, err)
	}
	return t, nil
}
