package models

import "unicode"

// Range is a pair of optional inclusive bounds kept as the text the user typed.
// Text that does not start with an integer is treated as no bound.
type Range struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

// IsBlank reports whether neither bound carries any text
func (r Range) IsBlank() bool {
	return r.Min == "" && r.Max == ""
}

// Contains reports whether v satisfies both bounds; absent bounds always pass
func (r Range) Contains(v int) bool {
	if min, ok := ParseBound(r.Min); ok && v < min {
		return false
	}
	if max, ok := ParseBound(r.Max); ok && v > max {
		return false
	}
	return true
}

// ParseBound reads a leading integer from text: optional whitespace and sign,
// then decimal digits up to the first other character. "25", " 25 " and
// "25.9" all give 25; "", "abc" and "-" give no bound.
func ParseBound(text string) (int, bool) {
	runes := []rune(text)
	i := 0
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}

	negative := false
	if i < len(runes) && (runes[i] == '+' || runes[i] == '-') {
		negative = runes[i] == '-'
		i++
	}

	const limit = int(^uint(0) >> 1)
	value, digits := 0, 0
	for ; i < len(runes) && runes[i] >= '0' && runes[i] <= '9'; i++ {
		d := int(runes[i] - '0')
		if value > (limit-d)/10 {
			value = limit
		} else {
			value = value*10 + d
		}
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if negative {
		value = -value
	}
	return value, true
}

// Criteria is the per-category filter set. Exactly one struct type exists per
// category, so swapping the active category means swapping the whole value.
type Criteria interface {
	Category() Category
	// IsBlank reports whether every field is empty
	IsBlank() bool
}

// ClassroomCriteria filters classrooms
type ClassroomCriteria struct {
	Building string `json:"building"` // exact match
	Room     string `json:"room"`     // case-insensitive substring
	Capacity Range  `json:"capacity"`
}

// DepartmentCriteria filters departments
type DepartmentCriteria struct {
	Name     string `json:"name"`     // case-insensitive substring
	Building string `json:"building"` // exact match
	Budget   Range  `json:"budget"`
}

// CourseCriteria filters courses
type CourseCriteria struct {
	Title      string `json:"title"`      // case-insensitive substring
	Department string `json:"department"` // exact match
	Credits    Range  `json:"credits"`
}

// InstructorCriteria filters instructors
type InstructorCriteria struct {
	Name       string `json:"name"`       // case-insensitive substring
	Department string `json:"department"` // exact match
	Salary     Range  `json:"salary"`
}

func (ClassroomCriteria) Category() Category  { return CategoryClassrooms }
func (DepartmentCriteria) Category() Category { return CategoryDepartments }
func (CourseCriteria) Category() Category     { return CategoryCourses }
func (InstructorCriteria) Category() Category { return CategoryInstructors }

func (c ClassroomCriteria) IsBlank() bool {
	return c.Building == "" && c.Room == "" && c.Capacity.IsBlank()
}

func (c DepartmentCriteria) IsBlank() bool {
	return c.Name == "" && c.Building == "" && c.Budget.IsBlank()
}

func (c CourseCriteria) IsBlank() bool {
	return c.Title == "" && c.Department == "" && c.Credits.IsBlank()
}

func (c InstructorCriteria) IsBlank() bool {
	return c.Name == "" && c.Department == "" && c.Salary.IsBlank()
}

// EmptyCriteria returns the blank criteria value of a category
func EmptyCriteria(category Category) Criteria {
	switch category {
	case CategoryDepartments:
		return DepartmentCriteria{}
	case CategoryCourses:
		return CourseCriteria{}
	case CategoryInstructors:
		return InstructorCriteria{}
	default:
		return ClassroomCriteria{}
	}
}

// CriteriaFields is the flat form the browser and the query string use.
// Text is the substring field (room, name or title), Exact the select field
// (building or department) and Min/Max the category's numeric range.
type CriteriaFields struct {
	Exact string
	Text  string
	Min   string
	Max   string
}

// BuildCriteria maps flat fields onto the criteria type of a category
func BuildCriteria(category Category, f CriteriaFields) Criteria {
	r := Range{Min: f.Min, Max: f.Max}
	switch category {
	case CategoryDepartments:
		return DepartmentCriteria{Name: f.Text, Building: f.Exact, Budget: r}
	case CategoryCourses:
		return CourseCriteria{Title: f.Text, Department: f.Exact, Credits: r}
	case CategoryInstructors:
		return InstructorCriteria{Name: f.Text, Department: f.Exact, Salary: r}
	default:
		return ClassroomCriteria{Building: f.Exact, Room: f.Text, Capacity: r}
	}
}

// FlattenCriteria is the inverse of BuildCriteria
func FlattenCriteria(c Criteria) CriteriaFields {
	switch v := c.(type) {
	case ClassroomCriteria:
		return CriteriaFields{Exact: v.Building, Text: v.Room, Min: v.Capacity.Min, Max: v.Capacity.Max}
	case DepartmentCriteria:
		return CriteriaFields{Exact: v.Building, Text: v.Name, Min: v.Budget.Min, Max: v.Budget.Max}
	case CourseCriteria:
		return CriteriaFields{Exact: v.Department, Text: v.Title, Min: v.Credits.Min, Max: v.Credits.Max}
	case InstructorCriteria:
		return CriteriaFields{Exact: v.Department, Text: v.Name, Min: v.Salary.Min, Max: v.Salary.Max}
	}
	return CriteriaFields{}
}
