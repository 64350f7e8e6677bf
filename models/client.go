package models

import (
	"time"

	"github.com/google/uuid"
)

// Client represents an external client of the agency.
// Each client has a unique access key used to authenticate portal requests.
// Read-only from the portal's perspective; projects reference it by ID.
type Client struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name" binding:"required,min=2,max=255"`
	AccessKey string    `json:"access_key"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientsResponse is the standard response format for client listings.
type ClientsResponse struct {
	Clients []Client `json:"clients"`
	Total   int      `json:"total"`
}
