package models

// Course is a row of the 'cursos' table with its family name.
// The database enforces Enrolled <= Capacity.
type Course struct {
	ID         int64  `json:"id" db:"id_curso"`
	Name       string `json:"name" db:"nombre_curso"`
	Enrolled   int    `json:"enrolled" db:"alumnos_matriculados"`
	Capacity   int    `json:"capacity" db:"capacidad_maxima"`
	FamilyName string `json:"familyName" db:"nombre_familia"`
}

// FillRatio is enrolled / capacity, 0 for a course without capacity.
func (c Course) FillRatio() float64 {
	if c.Capacity <= 0 {
		return 0
	}
	return float64(c.Enrolled) / float64(c.Capacity)
}

// FillPercent is FillRatio as a whole percentage.
func (c Course) FillPercent() int {
	return int(c.FillRatio()*100 + 0.5)
}

// AvailableSeats never goes below zero.
func (c Course) AvailableSeats() int {
	if c.Enrolled >= c.Capacity {
		return 0
	}
	return c.Capacity - c.Enrolled
}

// CourseMenuItem is one entry of the navigation menu shown on every page.
type CourseMenuItem struct {
	ID   int64  `json:"id" db:"id_curso"`
	Name string `json:"name" db:"nombre_curso"`
	Slug string `json:"slug" db:"-"`
}
