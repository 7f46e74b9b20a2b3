package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/instituto-dashboard/internal/apperrors"
	"github.com/01moynul/instituto-dashboard/internal/database"
	"github.com/01moynul/instituto-dashboard/internal/models"
)

type coursePage struct {
	Page
	Course   models.Course
	Students []models.Student
}

// CourseDetail renders one course and its active students. A non-numeric or
// unknown id falls through to the 404 page.
// GET /curso/:id
func (h *Handlers) CourseDetail(c *gin.Context) {
	courseID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || courseID < 0 {
		h.NotFound(c)
		return
	}

	ctx := c.Request.Context()
	var data coursePage

	err = h.DB.WithConnection(ctx, func(q *database.Queries) error {
		var err error
		if data.Course, err = q.CourseDetail(ctx, courseID); err != nil {
			return err
		}
		if data.Students, err = q.StudentsByCourse(ctx, courseID); err != nil {
			return err
		}
		return loadMenu(ctx, q, &data.Page)
	})
	if errors.Is(err, apperrors.ErrNotFound) {
		h.NotFound(c)
		return
	}
	if err != nil {
		h.renderFailure(c, err, "Error al cargar el curso")
		return
	}

	data.Title = data.Course.Name
	c.HTML(http.StatusOK, "curso_detalle.html", data)
}
