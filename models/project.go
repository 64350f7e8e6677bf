package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectStatus is the closed set of states a project can be in.
// Transitions are unconstrained: any status may follow any other.
type ProjectStatus string

const (
	StatusPlanning  ProjectStatus = "planning"
	StatusActive    ProjectStatus = "active"
	StatusOnHold    ProjectStatus = "on-hold"
	StatusCompleted ProjectStatus = "completed"
)

// ProjectStatuses lists every known project status, in display order.
var ProjectStatuses = []ProjectStatus{StatusPlanning, StatusActive, StatusOnHold, StatusCompleted}

// Project is the canonical engagement record exchanged with the store.
// Optional string fields are empty (never null) in API responses so form
// state always has a defined value to bind to. The delivery-metadata group
// (video URLs, hosting and admin access) is filled in as the project ships.
type Project struct {
	ID          uuid.UUID           `json:"id"`
	ClientID    uuid.UUID           `json:"client_id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Status      ProjectStatus       `json:"status"`
	Budget      decimal.NullDecimal `json:"budget"`
	Progress    int                 `json:"progress"`
	Deadline    *time.Time          `json:"deadline,omitempty"`

	ShortVideoURL       string `json:"short_video_url"`
	FullFeatureVideoURL string `json:"full_feature_video_url"`
	HostingLink         string `json:"hosting_link"`
	AdminLoginLink      string `json:"admin_login_link"`
	AdminUsername       string `json:"admin_username"`
	AdminPassword       string `json:"admin_password"`
	CredentialsNotes    string `json:"credentials_notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProjectPatch is the body of POST /api/projects and PATCH /api/projects/:id.
// Nil means "leave unchanged"; an explicit empty string clears the field, so
// a previously set credential or video link can be removed.
type ProjectPatch struct {
	Name        *string        `json:"name,omitempty"`
	ClientID    *uuid.UUID     `json:"client_id,omitempty"`
	Description *string        `json:"description,omitempty"`
	Status      *ProjectStatus `json:"status,omitempty"`
	Budget      *string        `json:"budget,omitempty"`
	Progress    *int           `json:"progress,omitempty"`
	Deadline    *string        `json:"deadline,omitempty"` // YYYY-MM-DD

	ShortVideoURL       *string `json:"short_video_url,omitempty"`
	FullFeatureVideoURL *string `json:"full_feature_video_url,omitempty"`
	HostingLink         *string `json:"hosting_link,omitempty"`
	AdminLoginLink      *string `json:"admin_login_link,omitempty"`
	AdminUsername       *string `json:"admin_username,omitempty"`
	AdminPassword       *string `json:"admin_password,omitempty"`
	CredentialsNotes    *string `json:"credentials_notes,omitempty"`
}

// ProjectQueryParams filters GET /api/projects. Deadline bounds are
// inclusive calendar dates (YYYY-MM-DD).
type ProjectQueryParams struct {
	Status         string `form:"status"`
	ClientID       string `form:"client_id"`
	DeadlineAfter  string `form:"deadline_after"`
	DeadlineBefore string `form:"deadline_before"`
	Limit          int    `form:"limit"`
	Offset         int    `form:"offset"`
}

// ProjectsResponse is the standard response format for project listings.
type ProjectsResponse struct {
	Projects []Project `json:"projects"`
	Total    int64     `json:"total"`
}
