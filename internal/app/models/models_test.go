package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/unibrowser/internal/pkg/apperrors"
)

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" Courses ")
	require.NoError(t, err)
	assert.Equal(t, CategoryCourses, c)

	_, err = ParseCategory("students")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCategory)
}

func TestCategory_Label(t *testing.T) {
	assert.Equal(t, "Classroom Search", CategoryClassrooms.Label())
	assert.Equal(t, "Instructor Search", CategoryInstructors.Label())
}

func TestRecordFields_KeepDeclarationOrder(t *testing.T) {
	keys := func(r Record) []string {
		var out []string
		for _, f := range r.Fields() {
			out = append(out, f.Key)
		}
		return out
	}

	assert.Equal(t, []string{"building", "room", "capacity"}, keys(Classroom{}))
	assert.Equal(t, []string{"name", "building", "budget", "faculty", "students"}, keys(Department{}))
	assert.Equal(t, []string{"id", "title", "department", "credits", "enrollment", "semester"}, keys(Course{}))
	assert.Equal(t, []string{"id", "name", "department", "salary", "courses", "publications"}, keys(Instructor{}))
}

func TestDataset_ReturnsCopies(t *testing.T) {
	doc := Document{Classrooms: []Classroom{{Building: "Hall A", Room: "101", Capacity: 30}}}
	ds := NewDataset(doc)

	doc.Classrooms[0].Room = "changed"
	got := ds.Classrooms()
	got[0].Capacity = 0

	assert.Equal(t, "101", ds.Classrooms()[0].Room)
	assert.Equal(t, 30, ds.Classrooms()[0].Capacity)
}

func TestDataset_Records(t *testing.T) {
	ds := NewDataset(Document{
		Courses: []Course{{ID: "C1"}, {ID: "C2"}},
	})

	records := ds.Records(CategoryCourses)
	require.Len(t, records, 2)
	assert.Equal(t, Course{ID: "C2"}, records[1])
	assert.Equal(t, 2, ds.Len(CategoryCourses))

	assert.NotNil(t, ds.Records(CategoryInstructors))
	assert.Empty(t, ds.Records(CategoryInstructors))
	assert.Empty(t, ds.Records(Category("bogus")))
}
