package models

// Instructor is a member of teaching staff
type Instructor struct {
	ID           string `json:"id" yaml:"id" db:"id"`
	Name         string `json:"name" yaml:"name" db:"name"`
	Department   string `json:"department" yaml:"department" db:"department"`
	Salary       int    `json:"salary" yaml:"salary" db:"salary"`
	Courses      int    `json:"courses" yaml:"courses" db:"courses"`
	Publications int    `json:"publications" yaml:"publications" db:"publications"`
}

// Category implements Record
func (Instructor) Category() Category { return CategoryInstructors }

// Fields implements Record
func (i Instructor) Fields() []Field {
	return []Field{
		{Key: "id", Value: i.ID},
		{Key: "name", Value: i.Name},
		{Key: "department", Value: i.Department},
		{Key: "salary", Value: i.Salary},
		{Key: "courses", Value: i.Courses},
		{Key: "publications", Value: i.Publications},
	}
}
