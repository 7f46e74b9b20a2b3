package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/instituto-dashboard/internal/database"
	"github.com/01moynul/instituto-dashboard/internal/models"
)

type familiesPage struct {
	Page
	Families []models.FamilyListing
}

// Families renders the professional families with their aggregates.
// GET /familias
func (h *Handlers) Families(c *gin.Context) {
	ctx := c.Request.Context()
	data := familiesPage{Page: Page{Title: "Familias profesionales"}}

	err := h.DB.WithConnection(ctx, func(q *database.Queries) error {
		var err error
		if data.Families, err = q.FamilyListing(ctx); err != nil {
			return err
		}
		return loadMenu(ctx, q, &data.Page)
	})
	if err != nil {
		h.renderFailure(c, err, "Error al cargar las familias")
		return
	}

	c.HTML(http.StatusOK, "familias.html", data)
}
