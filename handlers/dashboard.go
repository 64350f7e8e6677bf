package handlers

import (
	"log"
	"net/http"

	"portal/dashboard"
	"portal/database"
	"portal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// GetDashboardStats recomputes the summary from a fresh snapshot of all
// three collections, fetched concurrently. A failed fetch is logged and
// contributes an empty collection rather than failing the whole summary,
// so the dashboard degrades instead of erroring. The aggregation runs only
// after every fetch has settled: stats never mix collections from
// different snapshots.
func GetDashboardStats(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var (
			projects []models.Project
			invoices []models.Invoice
			payments []models.Payment
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			if projects, err = db.AllProjects(gctx); err != nil {
				log.Printf("stats: projects fetch failed: %v", err)
				projects = []models.Project{}
			}
			return nil
		})
		g.Go(func() error {
			var err error
			if invoices, err = db.AllInvoices(gctx); err != nil {
				log.Printf("stats: invoices fetch failed: %v", err)
				invoices = []models.Invoice{}
			}
			return nil
		})
		g.Go(func() error {
			var err error
			if payments, err = db.AllPayments(gctx); err != nil {
				log.Printf("stats: payments fetch failed: %v", err)
				payments = []models.Payment{}
			}
			return nil
		})
		_ = g.Wait()

		c.JSON(http.StatusOK, dashboard.Aggregate(projects, invoices, payments))
	}
}
