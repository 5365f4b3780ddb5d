package models

// Course represents a course offered by a department.
// Department holds the department name, not an identifier.
type Course struct {
	ID         string `json:"id" yaml:"id" db:"id"`
	Title      string `json:"title" yaml:"title" db:"title"`
	Department string `json:"department" yaml:"department" db:"department"`
	Credits    int    `json:"credits" yaml:"credits" db:"credits"`
	Enrollment int    `json:"enrollment" yaml:"enrollment" db:"enrollment"`
	Semester   int    `json:"semester" yaml:"semester" db:"semester"`
}

// Category implements Record
func (Course) Category() Category { return CategoryCourses }

// Fields implements Record
func (c Course) Fields() []Field {
	return []Field{
		{Key: "id", Value: c.ID},
		{Key: "title", Value: c.Title},
		{Key: "department", Value: c.Department},
		{Key: "credits", Value: c.Credits},
		{Key: "enrollment", Value: c.Enrollment},
		{Key: "semester", Value: c.Semester},
	}
}
