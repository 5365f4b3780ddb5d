package views

import (
	"embed"
	"html/template"

	"github.com/yigit/unibrowser/internal/app/models"
	"github.com/yigit/unibrowser/internal/app/models/dto"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"contains": func(list []string, s string) bool {
			for _, v := range list {
				if v == s {
					return true
				}
			}
			return false
		},
	}).ParseFS(templateFS, "templates/*.html")
}

// Form describes the three inputs of a category's filter form
type Form struct {
	ExactName    string
	ExactLabel   string
	ExactOptions []string
	TextName     string
	TextLabel    string
	RangeLabel   string
	Exact        string
	Text         string
	Min          string
	Max          string
}

// FormFor maps a category and its criteria onto form inputs. Input names
// match the search query parameters.
func FormFor(category models.Category, criteria models.Criteria, options dto.OptionsResponse) Form {
	fields := models.FlattenCriteria(criteria)
	form := Form{Exact: fields.Exact, Text: fields.Text, Min: fields.Min, Max: fields.Max}

	switch category {
	case models.CategoryClassrooms:
		form.ExactName, form.ExactLabel, form.ExactOptions = "building", "Building", options.Buildings
		form.TextName, form.TextLabel, form.RangeLabel = "room", "Room", "Capacity"
	case models.CategoryDepartments:
		form.ExactName, form.ExactLabel, form.ExactOptions = "building", "Building", options.Buildings
		form.TextName, form.TextLabel, form.RangeLabel = "name", "Department name", "Budget"
	case models.CategoryCourses:
		form.ExactName, form.ExactLabel, form.ExactOptions = "department", "Department", options.Departments
		form.TextName, form.TextLabel, form.RangeLabel = "title", "Course title", "Credits"
	case models.CategoryInstructors:
		form.ExactName, form.ExactLabel, form.ExactOptions = "department", "Department", options.Departments
		form.TextName, form.TextLabel, form.RangeLabel = "name", "Instructor name", "Salary"
	}
	return form
}

// Page is the data of the browser page
type Page struct {
	Categories    []dto.CategoryResponse
	Category      models.Category
	Form          Form
	IgnoredBounds []string
	Searched      bool
	Table         dto.TableData
	Count         int
	Chart         dto.ChartConfig
	ChartSVG      template.HTML
	DetailKeys    []dto.ChartPoint
	Detail        *dto.ChartDetail
	Semester      int
	Error         string
}

// DetailKeys lists the selectable data points of a chart, one per key, in
// the order they are plotted
func DetailKeys(chart dto.ChartConfig) []dto.ChartPoint {
	keys := make([]dto.ChartPoint, 0)
	seen := make(map[string]bool)
	for _, series := range chart.Series {
		for _, p := range series.Data {
			if seen[p.Key] {
				continue
			}
			seen[p.Key] = true
			keys = append(keys, dto.ChartPoint{Key: p.Key, Label: p.Label})
		}
	}
	return keys
}
