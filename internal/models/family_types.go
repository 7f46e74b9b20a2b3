package models

// FamilySummary is the per-family aggregate shown on the dashboard.
// TotalStudents is nil for a family without courses.
type FamilySummary struct {
	Name          string `json:"name" db:"nombre_familia"`
	TotalCourses  int64  `json:"totalCourses" db:"total_cursos"`
	TotalStudents *int64 `json:"totalStudents" db:"total_alumnos"`
}

// FamilyListing is the per-family aggregate of the families page.
type FamilyListing struct {
	ID            int64   `json:"id" db:"id_familia"`
	Name          string  `json:"name" db:"nombre_familia"`
	Description   *string `json:"description,omitempty" db:"descripcion"`
	TotalCourses  int64   `json:"totalCourses" db:"total_cursos"`
	TotalStudents *int64  `json:"totalStudents" db:"total_alumnos"`
	TotalCapacity *int64  `json:"totalCapacity" db:"capacidad_total"`
}

// OccupancyPercent is students over capacity, 0 when either is unknown.
func (f FamilyListing) OccupancyPercent() int {
	if f.TotalStudents == nil || f.TotalCapacity == nil || *f.TotalCapacity <= 0 {
		return 0
	}
	return int(float64(*f.TotalStudents)/float64(*f.TotalCapacity)*100 + 0.5)
}

// Students returns TotalStudents or 0.
func (f FamilyListing) Students() int64 {
	if f.TotalStudents == nil {
		return 0
	}
	return *f.TotalStudents
}
