package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/instituto-dashboard/internal/apperrors"
	"github.com/01moynul/instituto-dashboard/internal/database"
)

const (
	msgConnection = "Error de conexión con la base de datos"
	msgNotFound   = "Página no encontrada"
)

// renderFailure answers an HTML route whose database work failed. Connection
// failures get the generic connection message, everything else msg.
// Both errors were already logged where they happened.
func (h *Handlers) renderFailure(c *gin.Context, err error, msg string) {
	if errors.Is(err, apperrors.ErrConnection) {
		msg = msgConnection
	}
	_ = c.Error(err)
	c.HTML(http.StatusInternalServerError, "error.html", errorPage{
		Page:    Page{Title: "Error"},
		Message: msg,
	})
}

// NotFound renders the 404 page. The course menu is fetched on a fresh
// connection; when that fails the page is still served, with no menu.
func (h *Handlers) NotFound(c *gin.Context) {
	ctx := c.Request.Context()
	data := errorPage{Page: Page{Title: "Error 404"}, Message: msgNotFound}

	err := h.DB.WithConnection(ctx, func(q *database.Queries) error {
		return loadMenu(ctx, q, &data.Page)
	})
	if err != nil {
		h.Logger.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("404 page rendered without course menu")
		data.Menu = nil
	}

	c.HTML(http.StatusNotFound, "error.html", data)
}
