package models

// Department is an academic department housed in a building
type Department struct {
	Name     string `json:"name" yaml:"name" db:"name"`
	Building string `json:"building" yaml:"building" db:"building"`
	Budget   int    `json:"budget" yaml:"budget" db:"budget"`
	Faculty  int    `json:"faculty" yaml:"faculty" db:"faculty"`
	Students int    `json:"students" yaml:"students" db:"students"`
}

// Category implements Record
func (Department) Category() Category { return CategoryDepartments }

// Fields implements Record
func (d Department) Fields() []Field {
	return []Field{
		{Key: "name", Value: d.Name},
		{Key: "building", Value: d.Building},
		{Key: "budget", Value: d.Budget},
		{Key: "faculty", Value: d.Faculty},
		{Key: "students", Value: d.Students},
	}
}
