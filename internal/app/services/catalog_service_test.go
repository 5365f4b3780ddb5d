package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yigit/unibrowser/internal/app/models"
	"github.com/yigit/unibrowser/internal/app/models/dto"
)

func TestCatalogService_Options(t *testing.T) {
	opts := NewCatalogService(testDataset()).Options()

	assert.Equal(t, []string{"Hall A", "Hall B"}, opts.Buildings)
	assert.Equal(t, []string{"Computer Science", "History"}, opts.Departments)
}

func TestCatalogService_OptionsOnEmptyDataset(t *testing.T) {
	opts := NewCatalogService(models.NewDataset(models.Document{})).Options()

	assert.NotNil(t, opts.Buildings)
	assert.Empty(t, opts.Buildings)
	assert.NotNil(t, opts.Departments)
}

func TestCatalogService_Categories(t *testing.T) {
	got := NewCatalogService(testDataset()).Categories()

	assert.Equal(t, []dto.CategoryResponse{
		{Name: models.CategoryClassrooms, Label: "Classroom Search", Records: 4},
		{Name: models.CategoryDepartments, Label: "Department Search", Records: 2},
		{Name: models.CategoryCourses, Label: "Course Search", Records: 3},
		{Name: models.CategoryInstructors, Label: "Instructor Search", Records: 2},
	}, got)
}
