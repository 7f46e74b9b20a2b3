package handlers

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/01moynul/instituto-dashboard/internal/database"
	"github.com/01moynul/instituto-dashboard/internal/models"
)

// ConnectionProvider is the part of *database.Provider the handlers use.
type ConnectionProvider interface {
	WithConnection(ctx context.Context, fn func(q *database.Queries) error) error
	Ping(ctx context.Context) error
}

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	DB     ConnectionProvider
	Logger zerolog.Logger
}

// New creates the handler set.
func New(db ConnectionProvider, logger zerolog.Logger) *Handlers {
	return &Handlers{DB: db, Logger: logger}
}

// Page carries what the shared layout needs on every HTML page.
type Page struct {
	Title string
	Menu  []models.CourseMenuItem
}

type errorPage struct {
	Page
	Message string
}
