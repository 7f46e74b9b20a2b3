package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog"

	"github.com/01moynul/instituto-dashboard/internal/apperrors"
	"github.com/01moynul/instituto-dashboard/internal/models"
)

// MaxAvailableCourses caps the availability listing.
const MaxAvailableCourses = 10

const (
	queryInstituteStatistics = `SELECT * FROM v_estadisticas_instituto`

	queryAvailableCourses = `SELECT * FROM v_cursos_disponibilidad LIMIT ?`

	queryFamilySummary = `
		SELECT
			fp.nombre_familia,
			COUNT(DISTINCT c.id_curso) AS total_cursos,
			SUM(c.alumnos_matriculados) AS total_alumnos
		FROM familias_profesionales fp
		LEFT JOIN cursos c ON fp.id_familia = c.id_familia
		GROUP BY fp.id_familia, fp.nombre_familia
		ORDER BY fp.nombre_familia`

	queryCourseMenu = `SELECT id_curso, nombre_curso FROM cursos ORDER BY nombre_curso`

	queryActiveStudents = `
		SELECT a.dni, a.nombre, a.apellidos, a.telefono, a.email,
		       a.fecha_matricula, a.id_curso,
		       c.nombre_curso, fp.nombre_familia
		FROM alumnos a
		INNER JOIN cursos c ON a.id_curso = c.id_curso
		INNER JOIN familias_profesionales fp ON c.id_familia = fp.id_familia
		WHERE a.activo = TRUE
		ORDER BY a.apellidos, a.nombre`

	queryCourseDetail = `
		SELECT c.id_curso, c.nombre_curso, c.alumnos_matriculados,
		       c.capacidad_maxima, fp.nombre_familia
		FROM cursos c
		INNER JOIN familias_profesionales fp ON c.id_familia = fp.id_familia
		WHERE c.id_curso = ?`

	queryStudentsByCourse = `
		SELECT a.dni, a.nombre, a.apellidos, a.telefono,
		       a.email, a.fecha_matricula
		FROM alumnos a
		WHERE a.id_curso = ? AND a.activo = TRUE
		ORDER BY a.apellidos, a.nombre`

	queryFamilyListing = `
		SELECT
			fp.id_familia,
			fp.nombre_familia,
			fp.descripcion,
			COUNT(c.id_curso) AS total_cursos,
			SUM(c.alumnos_matriculados) AS total_alumnos,
			SUM(c.capacidad_maxima) AS capacidad_total
		FROM familias_profesionales fp
		LEFT JOIN cursos c ON fp.id_familia = c.id_familia
		GROUP BY fp.id_familia, fp.nombre_familia, fp.descripcion
		ORDER BY fp.nombre_familia`

	queryStudentDirectory = `SELECT * FROM v_listado_general_alumnos WHERE activo = TRUE`
)

// Queries runs the dashboard's fixed read queries on one connection.
// A Queries value lives for one request and holds no shared state.
type Queries struct {
	conn   Querier
	logger zerolog.Logger
}

// NewQueries binds the queries to an acquired connection.
func NewQueries(conn Querier, logger zerolog.Logger) *Queries {
	return &Queries{conn: conn, logger: logger}
}

func (q *Queries) fail(op string, err error) error {
	q.logger.Error().Err(err).Str("query", op).Msg("Error en la consulta")
	return apperrors.NewQueryError(op, err)
}

// InstituteStatistics returns the single aggregate row of the statistics
// view, or an empty Row when the view has no rows.
func (q *Queries) InstituteStatistics(ctx context.Context) (models.Row, error) {
	rows, err := q.conn.QueryContext(ctx, queryInstituteStatistics)
	if err != nil {
		return nil, q.fail("institute statistics", err)
	}
	defer rows.Close()

	result, err := scanRowMaps(rows)
	if err != nil {
		return nil, q.fail("institute statistics", err)
	}
	if len(result) == 0 {
		return models.Row{}, nil
	}
	return result[0], nil
}

// AvailableCourses lists courses from least to most filled. limit is clamped
// to 1..MaxAvailableCourses; zero or negative means the maximum.
func (q *Queries) AvailableCourses(ctx context.Context, limit int) ([]models.Row, error) {
	if limit <= 0 || limit > MaxAvailableCourses {
		limit = MaxAvailableCourses
	}

	rows, err := q.conn.QueryContext(ctx, queryAvailableCourses, limit)
	if err != nil {
		return nil, q.fail("available courses", err)
	}
	defer rows.Close()

	result, err := scanRowMaps(rows)
	if err != nil {
		return nil, q.fail("available courses", err)
	}
	return result, nil
}

// FamilySummary returns one row per family, families without courses
// included with a nil student total.
func (q *Queries) FamilySummary(ctx context.Context) ([]models.FamilySummary, error) {
	rows, err := q.conn.QueryContext(ctx, queryFamilySummary)
	if err != nil {
		return nil, q.fail("family summary", err)
	}
	defer rows.Close()

	families := []models.FamilySummary{}
	for rows.Next() {
		var f models.FamilySummary
		if err := rows.Scan(&f.Name, &f.TotalCourses, &f.TotalStudents); err != nil {
			return nil, q.fail("family summary", err)
		}
		families = append(families, f)
	}
	if err := rows.Err(); err != nil {
		return nil, q.fail("family summary", err)
	}
	return families, nil
}

// CourseMenu returns every course id/name pair ordered by name.
func (q *Queries) CourseMenu(ctx context.Context) ([]models.CourseMenuItem, error) {
	rows, err := q.conn.QueryContext(ctx, queryCourseMenu)
	if err != nil {
		return nil, q.fail("course menu", err)
	}
	defer rows.Close()

	menu := []models.CourseMenuItem{}
	for rows.Next() {
		var item models.CourseMenuItem
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, q.fail("course menu", err)
		}
		item.Slug = slug.Make(item.Name)
		menu = append(menu, item)
	}
	if err := rows.Err(); err != nil {
		return nil, q.fail("course menu", err)
	}
	return menu, nil
}

// ActiveStudents lists every active student with course and family names,
// ordered by surname then name.
func (q *Queries) ActiveStudents(ctx context.Context) ([]models.Student, error) {
	rows, err := q.conn.QueryContext(ctx, queryActiveStudents)
	if err != nil {
		return nil, q.fail("active students", err)
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		var s models.Student
		err := rows.Scan(&s.DNI, &s.Name, &s.Surname, &s.Phone, &s.Email,
			&s.EnrollmentDate, &s.CourseID, &s.CourseName, &s.FamilyName)
		if err != nil {
			return nil, q.fail("active students", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, q.fail("active students", err)
	}
	return students, nil
}

// CourseDetail returns one course with its family name. An unknown id
// yields an error matching apperrors.ErrNotFound.
func (q *Queries) CourseDetail(ctx context.Context, courseID int64) (models.Course, error) {
	var c models.Course
	err := q.conn.QueryRowContext(ctx, queryCourseDetail, courseID).
		Scan(&c.ID, &c.Name, &c.Enrolled, &c.Capacity, &c.FamilyName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Course{}, fmt.Errorf("course %d: %w", courseID, apperrors.ErrNotFound)
		}
		return models.Course{}, q.fail("course detail", err)
	}
	return c, nil
}

// StudentsByCourse lists the active students of one course, ordered by
// surname then name.
func (q *Queries) StudentsByCourse(ctx context.Context, courseID int64) ([]models.Student, error) {
	rows, err := q.conn.QueryContext(ctx, queryStudentsByCourse, courseID)
	if err != nil {
		return nil, q.fail("students by course", err)
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		s := models.Student{CourseID: courseID}
		if err := rows.Scan(&s.DNI, &s.Name, &s.Surname, &s.Phone, &s.Email, &s.EnrollmentDate); err != nil {
			return nil, q.fail("students by course", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, q.fail("students by course", err)
	}
	return students, nil
}

// FamilyListing returns every family with course, enrollment and capacity
// aggregates, ordered by name.
func (q *Queries) FamilyListing(ctx context.Context) ([]models.FamilyListing, error) {
	rows, err := q.conn.QueryContext(ctx, queryFamilyListing)
	if err != nil {
		return nil, q.fail("family listing", err)
	}
	defer rows.Close()

	families := []models.FamilyListing{}
	for rows.Next() {
		var f models.FamilyListing
		err := rows.Scan(&f.ID, &f.Name, &f.Description, &f.TotalCourses, &f.TotalStudents, &f.TotalCapacity)
		if err != nil {
			return nil, q.fail("family listing", err)
		}
		families = append(families, f)
	}
	if err := rows.Err(); err != nil {
		return nil, q.fail("family listing", err)
	}
	return families, nil
}

// StudentDirectory returns the active rows of the general student listing
// view, as published by the JSON API.
func (q *Queries) StudentDirectory(ctx context.Context) ([]models.Row, error) {
	rows, err := q.conn.QueryContext(ctx, queryStudentDirectory)
	if err != nil {
		return nil, q.fail("student directory", err)
	}
	defer rows.Close()

	result, err := scanRowMaps(rows)
	if err != nil {
		return nil, q.fail("student directory", err)
	}
	return result, nil
}
