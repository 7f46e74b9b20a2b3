package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/01moynul/instituto-dashboard/internal/handlers"
	"github.com/01moynul/instituto-dashboard/internal/middleware"
	"github.com/01moynul/instituto-dashboard/internal/web"
)

// SetupRouter builds the gin engine with templates, middleware and every
// dashboard route.
func SetupRouter(h *handlers.Handlers, logger zerolog.Logger) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.SetHTMLTemplate(tmpl)

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		gin.Recovery(),
		middleware.HTMLCharset(),
	)

	// --- HTML pages ---
	router.GET("/", h.Dashboard)
	router.GET("/alumnos", h.Students)
	router.GET("/curso/:id", h.CourseDetail)
	router.GET("/familias", h.Families)

	// --- JSON ---
	api := router.Group("/api")
	{
		api.GET("/estadisticas", h.APIStatistics)
		api.GET("/alumnos", h.APIStudents)
	}

	router.GET("/healthz", h.Health)

	router.NoRoute(h.NotFound)

	return router, nil
}
