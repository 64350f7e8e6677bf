package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectCredentials is the delivery hand-off projection shown to a client:
// hosting links, admin access, demo videos. Authored by agency staff outside
// this API; the portal only lists and renders it. Every field beyond the
// project name is optional and independently so.
type ProjectCredentials struct {
	ID                uuid.UUID `json:"id"`
	ClientID          uuid.UUID `json:"client_id"`
	ProjectName       string    `json:"project_name"`
	ThumbnailURL      string    `json:"thumbnail_url"`
	HostingPlatform   string    `json:"hosting_platform"`
	ShortDescription  string    `json:"short_description"`
	LiveLink          string    `json:"live_link"`
	AdminPanelLink    string    `json:"admin_panel_link"`
	DatabaseURL       string    `json:"database_url"`
	ServerCredentials string    `json:"server_credentials"`
	ShortVideoURL     string    `json:"short_video_url"`
	FullVideoURL      string    `json:"full_video_url"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CredentialsResponse is the standard response format for credential listings.
type CredentialsResponse struct {
	Credentials []ProjectCredentials `json:"credentials"`
	Total       int                  `json:"total"`
}
