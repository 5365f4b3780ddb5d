package models

import (
	"strings"

	"github.com/yigit/unibrowser/internal/pkg/apperrors"
)

// Category selects one of the four entity lists of the dataset
type Category string

const (
	CategoryClassrooms  Category = "classrooms"
	CategoryDepartments Category = "departments"
	CategoryCourses     Category = "courses"
	CategoryInstructors Category = "instructors"
)

// Categories lists every category in the order the browser offers them
var Categories = []Category{
	CategoryClassrooms,
	CategoryDepartments,
	CategoryCourses,
	CategoryInstructors,
}

// DefaultCategory is active when a session starts
const DefaultCategory = CategoryClassrooms

// ParseCategory converts a path or form value into a Category
func ParseCategory(name string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(name)))
	if !c.Valid() {
		return "", apperrors.NewInvalidCategoryError(name)
	}
	return c, nil
}

// Valid reports whether c is one of the four known categories
func (c Category) Valid() bool {
	switch c {
	case CategoryClassrooms, CategoryDepartments, CategoryCourses, CategoryInstructors:
		return true
	}
	return false
}

// Label is the human readable name used in the category select
func (c Category) Label() string {
	switch c {
	case CategoryClassrooms:
		return "Classroom Search"
	case CategoryDepartments:
		return "Department Search"
	case CategoryCourses:
		return "Course Search"
	case CategoryInstructors:
		return "Instructor Search"
	}
	return string(c)
}

// Field is one named column of a record, in declaration order
type Field struct {
	Key   string
	Value interface{}
}

// Record is implemented by the four entity types
type Record interface {
	Category() Category
	Fields() []Field
}
