package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yigit/unibrowser/internal/app/models"
)

func TestSearchQuery_ToCriteria(t *testing.T) {
	q := SearchQuery{
		Building:   "Science Hall",
		Room:       "lab",
		Name:       "phys",
		Title:      "calc",
		Department: "Mathematics",
		Min:        "10",
		Max:        "20",
	}
	r := models.Range{Min: "10", Max: "20"}

	tests := []struct {
		category models.Category
		want     models.Criteria
	}{
		{models.CategoryClassrooms, models.ClassroomCriteria{Building: "Science Hall", Room: "lab", Capacity: r}},
		{models.CategoryDepartments, models.DepartmentCriteria{Name: "phys", Building: "Science Hall", Budget: r}},
		{models.CategoryCourses, models.CourseCriteria{Title: "calc", Department: "Mathematics", Credits: r}},
		{models.CategoryInstructors, models.InstructorCriteria{Name: "phys", Department: "Mathematics", Salary: r}},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.want, q.ToCriteria(tt.category))
		})
	}
}

func TestSearchQuery_EmptyIsBlank(t *testing.T) {
	for _, c := range models.Categories {
		assert.True(t, SearchQuery{}.ToCriteria(c).IsBlank(), c)
	}
}

func TestErrorDetail_Builders(t *testing.T) {
	d := NewErrorDetail(ErrorCodeValidationFailed, "bad").WithField("min").WithSeverity(ErrorSeverityWarning).WithDetails("x")

	assert.Equal(t, "min", d.Field)
	assert.Equal(t, ErrorSeverityWarning, d.Severity)
	assert.Equal(t, "x", d.Details)

	resp := NewErrorResponse(d)
	assert.False(t, resp.Success)
	assert.Same(t, d, resp.Error)
}
