package dto

import "github.com/yigit/unibrowser/internal/app/models"

// SearchQuery carries the filter inputs of every category. Only the fields
// that belong to the requested category are read; the rest are ignored.
// Both the JSON API (query string) and the browser form bind to it.
// Inputs carry no length limits: an unparsable bound counts as absent.
type SearchQuery struct {
	Building   string `form:"building" json:"building"`
	Room       string `form:"room" json:"room"`
	Name       string `form:"name" json:"name"`
	Title      string `form:"title" json:"title"`
	Department string `form:"department" json:"department"`
	Min        string `form:"min" json:"min"`
	Max        string `form:"max" json:"max"`
}

// ToCriteria builds the criteria variant of a category from the query
func (q SearchQuery) ToCriteria(category models.Category) models.Criteria {
	fields := models.CriteriaFields{Min: q.Min, Max: q.Max}
	switch category {
	case models.CategoryClassrooms:
		fields.Exact, fields.Text = q.Building, q.Room
	case models.CategoryDepartments:
		fields.Exact, fields.Text = q.Building, q.Name
	case models.CategoryCourses:
		fields.Exact, fields.Text = q.Department, q.Title
	case models.CategoryInstructors:
		fields.Exact, fields.Text = q.Department, q.Name
	}
	return models.BuildCriteria(category, fields)
}

// SearchResponse is returned by the search endpoint
type SearchResponse struct {
	Category      models.Category `json:"category" example:"classrooms"`
	Records       []models.Record `json:"records"`
	Table         TableData       `json:"table"`
	Count         int             `json:"count" example:"1"`
	IgnoredBounds []string        `json:"ignoredBounds,omitempty"`
}

// CategoryResponse describes one selectable category
type CategoryResponse struct {
	Name    models.Category `json:"name" example:"classrooms"`
	Label   string          `json:"label" example:"Classroom Search"`
	Records int             `json:"records" example:"12"`
}

// OptionsResponse lists the values offered by the select inputs
type OptionsResponse struct {
	Buildings   []string `json:"buildings"`
	Departments []string `json:"departments"`
}
