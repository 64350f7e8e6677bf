package handlers

import (
	"net/http"

	"portal/database"
	"portal/models"
	"portal/view"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ListClientCredentials returns the hand-off records for the calling
// client, rendered as display-ready cards. Records with nothing to show
// still appear, with an empty action list, so the UI can decide to omit
// their credentials section.
func ListClientCredentials(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("client_id")
		clientID, ok := value.(uuid.UUID)
		if !exists || !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "client not resolved"})
			return
		}

		ctx := c.Request.Context()
		records, err := db.ListClientCredentials(ctx, clientID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list credentials"})
			return
		}

		cards := view.CredentialCards(records)
		c.JSON(http.StatusOK, gin.H{
			"credentials": cards,
			"total":       len(cards),
		})
	}
}

func ListClients(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		clients, err := db.ListClients(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list clients"})
			return
		}

		c.JSON(http.StatusOK, models.ClientsResponse{
			Clients: clients,
			Total:   len(clients),
		})
	}
}
