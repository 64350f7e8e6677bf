package handlers

import (
	"errors"
	"log"
	"net/http"

	"portal/database"
	"portal/forms"
	"portal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func ListProjects(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var params models.ProjectQueryParams
		if err := c.ShouldBindQuery(&params); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		projects, total, err := db.ListProjects(ctx, params)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list projects"})
			return
		}

		c.JSON(http.StatusOK, models.ProjectsResponse{
			Projects: projects,
			Total:    total,
		})
	}
}

func GetProject(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
			return
		}

		ctx := c.Request.Context()
		project, err := db.GetProject(ctx, projectID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
				return
			}
			log.Printf("GetProject database error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get project"})
			return
		}

		c.JSON(http.StatusOK, project)
	}
}

// GetProjectForm returns the project projected into editable form state:
// grouped details/videos/credentials with every optional field defined,
// ready for the edit flow to bind without null checks.
func GetProjectForm(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
			return
		}

		ctx := c.Request.Context()
		project, err := db.GetProject(ctx, projectID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
				return
			}
			log.Printf("GetProjectForm database error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get project"})
			return
		}

		c.JSON(http.StatusOK, forms.Load(*project))
	}
}

// NewProjectForm returns the initial form state for the create flow.
func NewProjectForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, forms.New())
	}
}

func CreateProject(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch models.ProjectPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			log.Printf("Bind error: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		patch, err := forms.NormalizePatch(patch)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		project, err := db.CreateProject(ctx, patch)
		if err != nil {
			log.Printf("CreateProject database error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "failed to create project",
				"details": err.Error(),
			})
			return
		}

		log.Printf("Project created: %s", project.ID)
		c.JSON(http.StatusCreated, project)
	}
}

func UpdateProject(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
			return
		}

		var patch models.ProjectPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			log.Printf("Bind error: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		patch, err = forms.NormalizePatch(patch)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		project, err := db.UpdateProject(ctx, projectID, patch)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
				return
			}
			log.Printf("UpdateProject database error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "failed to update project",
				"details": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, project)
	}
}
