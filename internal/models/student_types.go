package models

import "time"

// Student is a row of the 'alumnos' table, joined with its course and family
// where the query asks for them.
type Student struct {
	DNI            string     `json:"dni" db:"dni"`
	Name           string     `json:"name" db:"nombre"`
	Surname        string     `json:"surname" db:"apellidos"`
	Phone          *string    `json:"phone,omitempty" db:"telefono"`
	Email          *string    `json:"email,omitempty" db:"email"`
	EnrollmentDate *time.Time `json:"enrollmentDate,omitempty" db:"fecha_matricula"`

	// Joins (only filled by the general listing)
	CourseID   int64  `json:"courseId,omitempty" db:"id_curso"`
	CourseName string `json:"courseName,omitempty" db:"nombre_curso"`
	FamilyName string `json:"familyName,omitempty" db:"nombre_familia"`
}

// FullName renders "Surname, Name" the way the listings sort.
func (s Student) FullName() string {
	if s.Surname == "" {
		return s.Name
	}
	return s.Surname + ", " + s.Name
}
