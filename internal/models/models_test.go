package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourse_FillRatio(t *testing.T) {
	tests := []struct {
		name      string
		course    Course
		ratio     float64
		percent   int
		available int
	}{
		{"half full", Course{Enrolled: 15, Capacity: 30}, 0.5, 50, 15},
		{"full", Course{Enrolled: 30, Capacity: 30}, 1, 100, 0},
		{"empty", Course{Enrolled: 0, Capacity: 25}, 0, 0, 25},
		{"no capacity", Course{Enrolled: 0, Capacity: 0}, 0, 0, 0},
		{"rounding", Course{Enrolled: 2, Capacity: 3}, 2.0 / 3.0, 67, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.ratio, tt.course.FillRatio(), 1e-9)
			assert.Equal(t, tt.percent, tt.course.FillPercent())
			assert.Equal(t, tt.available, tt.course.AvailableSeats())
		})
	}
}

func TestFamilyListing_OccupancyPercent(t *testing.T) {
	students, capacity := int64(45), int64(60)
	zero := int64(0)

	assert.Equal(t, 75, FamilyListing{TotalStudents: &students, TotalCapacity: &capacity}.OccupancyPercent())
	assert.Equal(t, 0, FamilyListing{}.OccupancyPercent())
	assert.Equal(t, 0, FamilyListing{TotalStudents: &students, TotalCapacity: &zero}.OccupancyPercent())
	assert.Equal(t, int64(45), FamilyListing{TotalStudents: &students}.Students())
	assert.Equal(t, int64(0), FamilyListing{}.Students())
}

func TestStudent_FullName(t *testing.T) {
	assert.Equal(t, "García López, Ana", Student{Name: "Ana", Surname: "García López"}.FullName())
	assert.Equal(t, "Ana", Student{Name: "Ana"}.FullName())
}
