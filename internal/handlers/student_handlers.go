package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/instituto-dashboard/internal/database"
	"github.com/01moynul/instituto-dashboard/internal/models"
)

type studentsPage struct {
	Page
	Students []models.Student
}

// Students renders every active student.
// GET /alumnos
func (h *Handlers) Students(c *gin.Context) {
	ctx := c.Request.Context()
	data := studentsPage{Page: Page{Title: "Listado general de alumnos"}}

	err := h.DB.WithConnection(ctx, func(q *database.Queries) error {
		var err error
		if data.Students, err = q.ActiveStudents(ctx); err != nil {
			return err
		}
		return loadMenu(ctx, q, &data.Page)
	})
	if err != nil {
		h.renderFailure(c, err, "Error al cargar los alumnos")
		return
	}

	c.HTML(http.StatusOK, "alumnos.html", data)
}
