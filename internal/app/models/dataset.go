package models

// Document is the on-disk shape of the dataset: four named arrays
type Document struct {
	Classrooms  []Classroom  `json:"classrooms" yaml:"classrooms"`
	Departments []Department `json:"departments" yaml:"departments"`
	Courses     []Course     `json:"courses" yaml:"courses"`
	Instructors []Instructor `json:"instructors" yaml:"instructors"`
}

// Dataset is the immutable snapshot of all four entity lists.
// It is built once at startup and only hands out copies, so it can be
// shared by every request without locking.
type Dataset struct {
	classrooms  []Classroom
	departments []Department
	courses     []Course
	instructors []Instructor
}

// NewDataset copies the document lists into a read-only snapshot
func NewDataset(doc Document) *Dataset {
	return &Dataset{
		classrooms:  append([]Classroom(nil), doc.Classrooms...),
		departments: append([]Department(nil), doc.Departments...),
		courses:     append([]Course(nil), doc.Courses...),
		instructors: append([]Instructor(nil), doc.Instructors...),
	}
}

// Classrooms returns a copy of the classroom list in source order
func (d *Dataset) Classrooms() []Classroom {
	return append([]Classroom(nil), d.classrooms...)
}

// Departments returns a copy of the department list in source order
func (d *Dataset) Departments() []Department {
	return append([]Department(nil), d.departments...)
}

// Courses returns a copy of the course list in source order
func (d *Dataset) Courses() []Course {
	return append([]Course(nil), d.courses...)
}

// Instructors returns a copy of the instructor list in source order
func (d *Dataset) Instructors() []Instructor {
	return append([]Instructor(nil), d.instructors...)
}

// Records returns the full list of a category as generic records
func (d *Dataset) Records(category Category) []Record {
	switch category {
	case CategoryClassrooms:
		return toRecords(d.classrooms)
	case CategoryDepartments:
		return toRecords(d.departments)
	case CategoryCourses:
		return toRecords(d.courses)
	case CategoryInstructors:
		return toRecords(d.instructors)
	}
	return []Record{}
}

// Len returns the number of records in a category
func (d *Dataset) Len(category Category) int {
	switch category {
	case CategoryClassrooms:
		return len(d.classrooms)
	case CategoryDepartments:
		return len(d.departments)
	case CategoryCourses:
		return len(d.courses)
	case CategoryInstructors:
		return len(d.instructors)
	}
	return 0
}

func toRecords[T Record](items []T) []Record {
	records := make([]Record, 0, len(items))
	for _, item := range items {
		records = append(records, item)
	}
	return records
}
