package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/01moynul/instituto-dashboard/internal/apperrors"
	"github.com/01moynul/instituto-dashboard/internal/database"
)

func newQueries(t *testing.T) (*database.Queries, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return database.NewQueries(db, zerolog.Nop()), mock
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Len(t, names, 9)
	assert.Contains(t, names, "estadisticas")
	assert.Contains(t, names, "alumnos-curso")
	assert.True(t, NeedsCourse("curso"))
	assert.False(t, NeedsCourse("familias"))
}

func TestBuild_UnknownReport(t *testing.T) {
	q, _ := newQueries(t)
	_, err := Build(context.Background(), q, "matriculas", 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownReport))
	assert.Contains(t, err.Error(), "directorio")
}

func TestBuild_PerCourseNeedsID(t *testing.T) {
	q, _ := newQueries(t)
	_, err := Build(context.Background(), q, "alumnos-curso", 0)
	assert.True(t, errors.Is(err, ErrCourseRequired))
}

func TestBuild_Menu(t *testing.T) {
	q, mock := newQueries(t)
	mock.ExpectQuery("SELECT id_curso, nombre_curso FROM cursos").WillReturnRows(
		sqlmock.NewRows([]string{"id_curso", "nombre_curso"}).AddRow(int64(4), "Cuidados Auxiliares de Enfermería"))

	tbl, err := Build(context.Background(), q, "menu", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"id_curso", "nombre_curso", "slug"}, tbl.Columns)
	assert.Equal(t, []any{int64(4), "Cuidados Auxiliares de Enfermería", "cuidados-auxiliares-de-enfermeria"}, tbl.Rows[0])
}

func TestBuild_QueryFailure(t *testing.T) {
	q, mock := newQueries(t)
	mock.ExpectQuery("FROM familias_profesionales").WillReturnError(errors.New("Error 1146"))

	_, err := Build(context.Background(), q, "familias", 0)
	assert.True(t, errors.Is(err, apperrors.ErrQuery))
}

func TestBuild_CourseNotFound(t *testing.T) {
	q, mock := newQueries(t)
	mock.ExpectQuery(`WHERE c\.id_curso = \?`).WithArgs(int64(7)).WillReturnRows(
		sqlmock.NewRows([]string{"id_curso", "nombre_curso", "alumnos_matriculados", "capacidad_maxima", "nombre_familia"}))

	_, err := Build(context.Background(), q, "curso", 7)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestRender_Table(t *testing.T) {
	enrolled := time.Date(2024, 9, 16, 0, 0, 0, 0, time.UTC)
	tbl := Table{
		Columns: []string{"dni", "telefono", "fecha_matricula"},
		Rows: [][]any{
			{"12345678Z", (*string)(nil), &enrolled},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, tbl, FormatTable))

	out := buf.String()
	assert.Contains(t, out, "DNI")
	assert.Contains(t, out, "12345678Z")
	assert.Contains(t, out, "NULL")
	assert.Contains(t, out, "2024-09-16")
	assert.Contains(t, out, "(1 rows)")
}

func TestRender_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Table{}, FormatTable))
	assert.Equal(t, "(0 rows)\n", buf.String())
}

func TestRender_JSON(t *testing.T) {
	total := int64(30)
	tbl := Table{
		Columns: []string{"nombre_familia", "total_alumnos", "descripcion"},
		Rows:    [][]any{{"Sanidad", &total, (*string)(nil)}},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, tbl, FormatJSON))

	var out []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, float64(30), out[0]["total_alumnos"])
	assert.Nil(t, out[0]["descripcion"])
}

func TestRender_EmptyJSONIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Table{}, FormatJSON))
	assert.JSONEq(t, `[]`, buf.String())
}

func TestRender_UnknownFormat(t *testing.T) {
	assert.Error(t, Render(&bytes.Buffer{}, Table{}, "xml"))
}
