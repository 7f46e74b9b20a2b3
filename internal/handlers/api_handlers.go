package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/instituto-dashboard/internal/apperrors"
	"github.com/01moynul/instituto-dashboard/internal/database"
	"github.com/01moynul/instituto-dashboard/internal/models"
)

// APIStatistics returns the institute statistics as one JSON object.
// GET /api/estadisticas
func (h *Handlers) APIStatistics(c *gin.Context) {
	ctx := c.Request.Context()
	var stats models.Row

	err := h.DB.WithConnection(ctx, func(q *database.Queries) error {
		var err error
		stats, err = q.InstituteStatistics(ctx)
		return err
	})
	if err != nil {
		h.jsonFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// APIStudents returns the active rows of the general student listing.
// GET /api/alumnos
func (h *Handlers) APIStudents(c *gin.Context) {
	ctx := c.Request.Context()
	var students []models.Row

	err := h.DB.WithConnection(ctx, func(q *database.Queries) error {
		var err error
		students, err = q.StudentDirectory(ctx)
		return err
	})
	if err != nil {
		h.jsonFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, students)
}

// Health reports whether a database connection can be opened.
// GET /healthz
func (h *Handlers) Health(c *gin.Context) {
	if err := h.DB.Ping(c.Request.Context()); err != nil {
		h.Logger.Warn().Str("cause", apperrors.Cause(err)).Msg("health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handlers) jsonFailure(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrConnection) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error de conexión"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.Cause(err)})
}
