package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"portal/models"

	"github.com/google/uuid"
)

const credentialColumns = `
	id, client_id, project_name,
	COALESCE(thumbnail_url, ''), COALESCE(hosting_platform, ''), COALESCE(short_description, ''),
	COALESCE(live_link, ''), COALESCE(admin_panel_link, ''), COALESCE(database_url, ''),
	COALESCE(server_credentials, ''), COALESCE(short_video_url, ''), COALESCE(full_video_url, ''),
	created_at, updated_at`

// ListClientCredentials retrieves the hand-off records visible to one
// client. These are authored by agency staff outside this API; the portal
// only reads them.
func (db *DB) ListClientCredentials(ctx context.Context, clientID uuid.UUID) ([]models.ProjectCredentials, error) {
	start := time.Now()
	defer func() {
		log.Printf("ListClientCredentials: duration=%v client=%s", time.Since(start), clientID)
	}()

	query := fmt.Sprintf(`
		SELECT %s
		FROM project_credentials
		WHERE client_id = $1
		ORDER BY created_at DESC
	`, credentialColumns)

	rows, err := db.Pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}
	defer rows.Close()

	records := []models.ProjectCredentials{}
	for rows.Next() {
		var c models.ProjectCredentials
		err := rows.Scan(
			&c.ID, &c.ClientID, &c.ProjectName,
			&c.ThumbnailURL, &c.HostingPlatform, &c.ShortDescription,
			&c.LiveLink, &c.AdminPanelLink, &c.DatabaseURL,
			&c.ServerCredentials, &c.ShortVideoURL, &c.FullVideoURL,
			&c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan credentials: %w", err)
		}
		records = append(records, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating credentials: %w", err)
	}

	return records, nil
}
