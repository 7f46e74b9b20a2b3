package web

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/01moynul/instituto-dashboard/internal/models"
)

type testPage struct {
	Title   string
	Menu    []models.CourseMenuItem
	Message string
}

func TestTemplates_ParseAllPages(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{"dashboard.html", "alumnos.html", "curso_detalle.html", "familias.html", "error.html"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestTemplates_ErrorPageRendersMenu(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "error.html", testPage{
		Title:   "Error",
		Message: "Página no encontrada",
		Menu:    []models.CourseMenuItem{{ID: 3, Name: "Mecatrónica", Slug: "mecatronica"}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Página no encontrada")
	assert.Contains(t, out, `href="/curso/3"`)
	assert.Contains(t, out, `id="curso-mecatronica"`)
}

func TestHelpers(t *testing.T) {
	date := time.Date(2024, 9, 16, 0, 0, 0, 0, time.UTC)
	phone := "600111222"
	empty := ""
	n := int64(12)

	assert.Equal(t, "16/09/2024", formatDate(&date))
	assert.Equal(t, placeholder, formatDate(nil))
	assert.Equal(t, phone, derefString(&phone))
	assert.Equal(t, placeholder, derefString(&empty))
	assert.Equal(t, placeholder, derefString(nil))
	assert.Equal(t, int64(12), derefInt(&n))
	assert.Equal(t, int64(0), derefInt(nil))
	assert.Equal(t, "-", derefString(nil))
	assert.Equal(t, "-", cell(models.Row{"plazas": nil}, "plazas"))
}

func TestColumnsAndCell(t *testing.T) {
	rows := []models.Row{{"nombre_curso": "DAW", "alumnos_matriculados": int64(20), "ocupacion": 66.666, "fecha": nil}}

	assert.Equal(t, []string{"alumnos_matriculados", "fecha", "nombre_curso", "ocupacion"}, columns(rows))
	assert.Nil(t, columns(nil))

	assert.Equal(t, "DAW", cell(rows[0], "nombre_curso"))
	assert.Equal(t, "20", cell(rows[0], "alumnos_matriculados"))
	assert.Equal(t, "66.67", cell(rows[0], "ocupacion"))
	assert.Equal(t, placeholder, cell(rows[0], "fecha"))
	assert.Equal(t, placeholder, cell(rows[0], "missing"))
}
