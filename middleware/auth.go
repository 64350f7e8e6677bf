package middleware

import (
	"net/http"
	"strings"

	"portal/database"

	"github.com/gin-gonic/gin"
)

func AuthRequired(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			c.Abort()
			return
		}

		accessKey := parts[1]

		// Validate access key against database
		ctx := c.Request.Context()
		client, err := db.GetClientByAccessKey(ctx, accessKey)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid access key"})
			c.Abort()
			return
		}

		// Store client in context for handlers to use
		c.Set("client_id", client.ID)
		c.Set("client", client)

		c.Next()
	}
}
