package services

import (
	"github.com/yigit/unibrowser/internal/app/models"
	"github.com/yigit/unibrowser/internal/app/models/dto"
)

// CatalogService describes the categories and the values offered by the
// building and department selects
type CatalogService interface {
	Categories() []dto.CategoryResponse
	Options() dto.OptionsResponse
}

type catalogServiceImpl struct {
	dataset *models.Dataset
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(dataset *models.Dataset) CatalogService {
	return &catalogServiceImpl{dataset: dataset}
}

func (s *catalogServiceImpl) Categories() []dto.CategoryResponse {
	categories := make([]dto.CategoryResponse, 0, len(models.Categories))
	for _, c := range models.Categories {
		categories = append(categories, dto.CategoryResponse{
			Name:    c,
			Label:   c.Label(),
			Records: s.dataset.Len(c),
		})
	}
	return categories
}

// Options lists classroom buildings in order of first appearance and
// department names in dataset order
func (s *catalogServiceImpl) Options() dto.OptionsResponse {
	buildings := make([]string, 0)
	seen := make(map[string]struct{})
	for _, c := range s.dataset.Classrooms() {
		if _, ok := seen[c.Building]; ok {
			continue
		}
		seen[c.Building] = struct{}{}
		buildings = append(buildings, c.Building)
	}

	departments := make([]string, 0)
	for _, d := range s.dataset.Departments() {
		departments = append(departments, d.Name)
	}

	return dto.OptionsResponse{
		Buildings:   buildings,
		Departments: departments,
	}
}
