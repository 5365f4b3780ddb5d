package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBound(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"25", 25, true},
		{" 25 ", 25, true},
		{"25.9", 25, true},
		{"80000abc", 80000, true},
		{"+7", 7, true},
		{"-3", -3, true},
		{"007", 7, true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"-", 0, false},
		{"1,000", 1, true},
		{"99999999999999999999999", int(^uint(0) >> 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseBound(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRange_Contains(t *testing.T) {
	assert.True(t, Range{}.Contains(10))
	assert.True(t, Range{Min: "25", Max: "25"}.Contains(25), "bounds are inclusive")
	assert.False(t, Range{Min: "25", Max: "25"}.Contains(24))
	assert.False(t, Range{Min: "25", Max: "25"}.Contains(26))
	assert.True(t, Range{Min: "abc"}.Contains(0), "unparsable min is no bound")
	assert.True(t, Range{Max: "lots"}.Contains(1_000_000), "unparsable max is no bound")
	assert.False(t, Range{Min: "abc", Max: "10"}.Contains(11))
}

func TestEmptyCriteria(t *testing.T) {
	for _, c := range Categories {
		criteria := EmptyCriteria(c)
		assert.Equal(t, c, criteria.Category())
		assert.True(t, criteria.IsBlank())
	}
}

func TestBuildAndFlattenCriteria(t *testing.T) {
	fields := CriteriaFields{Exact: "CS", Text: "bob", Min: "1", Max: "80000"}

	assert.Equal(t, ClassroomCriteria{Building: "CS", Room: "bob", Capacity: Range{Min: "1", Max: "80000"}},
		BuildCriteria(CategoryClassrooms, fields))
	assert.Equal(t, InstructorCriteria{Department: "CS", Name: "bob", Salary: Range{Min: "1", Max: "80000"}},
		BuildCriteria(CategoryInstructors, fields))

	for _, c := range Categories {
		assert.Equal(t, fields, FlattenCriteria(BuildCriteria(c, fields)), "category %s", c)
	}
}

func TestCriteria_IsBlank(t *testing.T) {
	assert.False(t, CourseCriteria{Credits: Range{Max: "x"}}.IsBlank())
	assert.False(t, DepartmentCriteria{Name: "a"}.IsBlank())
	assert.True(t, DepartmentCriteria{}.IsBlank())
}
