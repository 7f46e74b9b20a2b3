// Package report runs one dashboard query and prints it for the terminal.
package report

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/01moynul/instituto-dashboard/internal/database"
	"github.com/01moynul/instituto-dashboard/internal/models"
)

// ErrUnknownReport is returned for a name missing from Names.
var ErrUnknownReport = errors.New("unknown report")

// ErrCourseRequired is returned when a per-course report has no course id.
var ErrCourseRequired = errors.New("report needs a course id")

// Table is a query result with a fixed column order.
type Table struct {
	Columns []string
	Rows    [][]any
}

type builder struct {
	perCourse bool
	build     func(ctx context.Context, q *database.Queries, courseID int64) (Table, error)
}

var reports = map[string]builder{
	"estadisticas": {build: func(ctx context.Context, q *database.Queries, _ int64) (Table, error) {
		row, err := q.InstituteStatistics(ctx)
		if err != nil {
			return Table{}, err
		}
		if len(row) == 0 {
			return Table{}, nil
		}
		return fromRows([]models.Row{row}), nil
	}},
	"disponibles": {build: func(ctx context.Context, q *database.Queries, _ int64) (Table, error) {
		rows, err := q.AvailableCourses(ctx, database.MaxAvailableCourses)
		return fromRows(rows), err
	}},
	"resumen-familias": {build: func(ctx context.Context, q *database.Queries, _ int64) (Table, error) {
		families, err := q.FamilySummary(ctx)
		t := Table{Columns: []string{"nombre_familia", "total_cursos", "total_alumnos"}}
		for _, f := range families {
			t.Rows = append(t.Rows, []any{f.Name, f.TotalCourses, f.TotalStudents})
		}
		return t, err
	}},
	"menu": {build: func(ctx context.Context, q *database.Queries, _ int64) (Table, error) {
		menu, err := q.CourseMenu(ctx)
		t := Table{Columns: []string{"id_curso", "nombre_curso", "slug"}}
		for _, m := range menu {
			t.Rows = append(t.Rows, []any{m.ID, m.Name, m.Slug})
		}
		return t, err
	}},
	"alumnos": {build: func(ctx context.Context, q *database.Queries, _ int64) (Table, error) {
		students, err := q.ActiveStudents(ctx)
		t := Table{Columns: []string{"dni", "apellidos", "nombre", "telefono", "email", "fecha_matricula", "nombre_curso", "nombre_familia"}}
		for _, s := range students {
			t.Rows = append(t.Rows, []any{s.DNI, s.Surname, s.Name, s.Phone, s.Email, s.EnrollmentDate, s.CourseName, s.FamilyName})
		}
		return t, err
	}},
	"curso": {perCourse: true, build: func(ctx context.Context, q *database.Queries, courseID int64) (Table, error) {
		c, err := q.CourseDetail(ctx, courseID)
		if err != nil {
			return Table{}, err
		}
		return Table{
			Columns: []string{"id_curso", "nombre_curso", "alumnos_matriculados", "capacidad_maxima", "plazas_libres", "nombre_familia"},
			Rows:    [][]any{{c.ID, c.Name, c.Enrolled, c.Capacity, c.AvailableSeats(), c.FamilyName}},
		}, nil
	}},
	"alumnos-curso": {perCourse: true, build: func(ctx context.Context, q *database.Queries, courseID int64) (Table, error) {
		students, err := q.StudentsByCourse(ctx, courseID)
		t := Table{Columns: []string{"dni", "apellidos", "nombre", "telefono", "email", "fecha_matricula"}}
		for _, s := range students {
			t.Rows = append(t.Rows, []any{s.DNI, s.Surname, s.Name, s.Phone, s.Email, s.EnrollmentDate})
		}
		return t, err
	}},
	"familias": {build: func(ctx context.Context, q *database.Queries, _ int64) (Table, error) {
		families, err := q.FamilyListing(ctx)
		t := Table{Columns: []string{"id_familia", "nombre_familia", "descripcion", "total_cursos", "total_alumnos", "capacidad_total"}}
		for _, f := range families {
			t.Rows = append(t.Rows, []any{f.ID, f.Name, f.Description, f.TotalCourses, f.TotalStudents, f.TotalCapacity})
		}
		return t, err
	}},
	"directorio": {build: func(ctx context.Context, q *database.Queries, _ int64) (Table, error) {
		rows, err := q.StudentDirectory(ctx)
		return fromRows(rows), err
	}},
}

// Names lists the available reports in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(reports))
	for name := range reports {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NeedsCourse reports whether name takes a course id.
func NeedsCourse(name string) bool {
	return reports[name].perCourse
}

// Build runs the named report on q. courseID is only read by per-course
// reports and must be positive there.
func Build(ctx context.Context, q *database.Queries, name string, courseID int64) (Table, error) {
	b, ok := reports[name]
	if !ok {
		return Table{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownReport, name, strings.Join(Names(), ", "))
	}
	if b.perCourse && courseID <= 0 {
		return Table{}, fmt.Errorf("%s: %w", name, ErrCourseRequired)
	}

	t, err := b.build(ctx, q, courseID)
	if err != nil {
		return Table{}, err
	}
	return t, nil
}

// fromRows lays out view rows with columns sorted by name.
func fromRows(rows []models.Row) Table {
	if len(rows) == 0 {
		return Table{}
	}
	t := Table{Columns: make([]string, 0, len(rows[0]))}
	for col := range rows[0] {
		t.Columns = append(t.Columns, col)
	}
	sort.Strings(t.Columns)

	for _, r := range rows {
		values := make([]any, len(t.Columns))
		for i, col := range t.Columns {
			values[i] = r[col]
		}
		t.Rows = append(t.Rows, values)
	}
	return t
}
