package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/instituto-dashboard/internal/database"
	"github.com/01moynul/instituto-dashboard/internal/models"
)

type dashboardPage struct {
	Page
	Stats            models.Row
	AvailableCourses []models.Row
	Families         []models.FamilySummary
}

// Dashboard renders the institute overview.
// GET /
func (h *Handlers) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	data := dashboardPage{Page: Page{Title: "Panel de control"}}

	err := h.DB.WithConnection(ctx, func(q *database.Queries) error {
		var err error
		if data.Stats, err = q.InstituteStatistics(ctx); err != nil {
			return err
		}
		if data.AvailableCourses, err = q.AvailableCourses(ctx, database.MaxAvailableCourses); err != nil {
			return err
		}
		if data.Families, err = q.FamilySummary(ctx); err != nil {
			return err
		}
		data.Menu, err = q.CourseMenu(ctx)
		return err
	})
	if err != nil {
		h.renderFailure(c, err, "Error al cargar los datos")
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", data)
}

// loadMenu is the menu step shared by the listing pages.
func loadMenu(ctx context.Context, q *database.Queries, p *Page) error {
	menu, err := q.CourseMenu(ctx)
	if err != nil {
		return err
	}
	p.Menu = menu
	return nil
}
