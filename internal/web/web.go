// Package web holds the embedded HTML templates of the dashboard.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"sort"
	"time"

	"github.com/01moynul/instituto-dashboard/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

const placeholder = "-"

// Templates parses every page template with the shared helpers.
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(FuncMap()).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// FuncMap returns the helpers available to every template.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"date":    formatDate,
		"str":     derefString,
		"num":     derefInt,
		"columns": columns,
		"cell":    cell,
	}
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return placeholder
	}
	return t.Format("02/01/2006")
}

func derefString(s *string) string {
	if s == nil || *s == "" {
		return placeholder
	}
	return *s
}

func derefInt(n *int64) int64 {
	if n == nil {
		return 0
	}
	return *n
}

// columns returns the sorted column names of the first row.
func columns(rows []models.Row) []string {
	if len(rows) == 0 {
		return nil
	}
	cols := make([]string, 0, len(rows[0]))
	for k := range rows[0] {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols
}

func cell(row models.Row, col string) string {
	v, ok := row[col]
	if !ok || v == nil {
		return placeholder
	}
	switch val := v.(type) {
	case time.Time:
		return val.Format("02/01/2006")
	case float64:
		return fmt.Sprintf("%.2f", val)
	default:
		return fmt.Sprint(val)
	}
}
