package models

// Classroom is a room in a campus building
type Classroom struct {
	Building string `json:"building" yaml:"building" db:"building"`
	Room     string `json:"room" yaml:"room" db:"room"`
	Capacity int    `json:"capacity" yaml:"capacity" db:"capacity"`
}

// Category implements Record
func (Classroom) Category() Category { return CategoryClassrooms }

// Fields implements Record
func (c Classroom) Fields() []Field {
	return []Field{
		{Key: "building", Value: c.Building},
		{Key: "room", Value: c.Room},
		{Key: "capacity", Value: c.Capacity},
	}
}
