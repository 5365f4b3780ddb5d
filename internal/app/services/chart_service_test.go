package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/unibrowser/internal/app/models"
	"github.com/yigit/unibrowser/internal/app/models/dto"
	"github.com/yigit/unibrowser/internal/pkg/apperrors"
	"github.com/yigit/unibrowser/internal/pkg/helpers"
)

func newChartService() ChartService {
	return NewChartService(testDataset(), helpers.NewNumberFormatter("en-US"))
}

func TestBucketFor_Boundaries(t *testing.T) {
	assert.Equal(t, BucketSmall, BucketFor(0))
	assert.Equal(t, BucketSmall, BucketFor(25))
	assert.Equal(t, BucketMedium, BucketFor(26))
	assert.Equal(t, BucketMedium, BucketFor(50))
	assert.Equal(t, BucketLarge, BucketFor(51))
}

func TestClassroomBuckets_OnePerClass(t *testing.T) {
	got := ClassroomBuckets([]models.Classroom{
		{Building: "Hall C", Room: "1", Capacity: 10},
		{Building: "Hall C", Room: "2", Capacity: 30},
		{Building: "Hall C", Room: "3", Capacity: 60},
	})
	assert.Equal(t, []BuildingBuckets{{Building: "Hall C", SmallRooms: 1, MediumRooms: 1, LargeRooms: 1}}, got)
}

func TestClassroomBuckets_FirstAppearanceOrder(t *testing.T) {
	got := ClassroomBuckets([]models.Classroom{
		{Building: "B", Capacity: 100},
		{Building: "A", Capacity: 5},
		{Building: "B", Capacity: 40},
	})
	assert.Equal(t, []BuildingBuckets{
		{Building: "B", MediumRooms: 1, LargeRooms: 1},
		{Building: "A", SmallRooms: 1},
	}, got)
}

func TestChart_Classrooms(t *testing.T) {
	chart, err := newChartService().Chart(models.CategoryClassrooms, ChartOptions{})
	require.NoError(t, err)

	assert.Equal(t, dto.ChartTypeStackedBar, chart.ChartType)
	assert.Equal(t, "Classroom Distribution by Building", chart.Title)
	assert.Equal(t, []string{"Hall A", "Hall B"}, chart.Categories)
	require.Len(t, chart.Series, 3)
	assert.Equal(t, "smallRooms", chart.Series[0].Name)
	// Hall A: 30 medium, 20 small; Hall B: 60 large, 25 small
	assert.Equal(t, []float64{1, 1}, values(chart.Series[0]))
	assert.Equal(t, []float64{1, 0}, values(chart.Series[1]))
	assert.Equal(t, []float64{0, 1}, values(chart.Series[2]))
}

func TestChart_DepartmentsUseSecondaryAxisForPeople(t *testing.T) {
	chart, err := newChartService().Chart(models.CategoryDepartments, ChartOptions{})
	require.NoError(t, err)

	assert.Equal(t, dto.ChartTypeBar, chart.ChartType)
	require.Len(t, chart.Series, 3)
	assert.False(t, chart.Series[0].SecondaryAxis)
	assert.True(t, chart.Series[1].SecondaryAxis)
	assert.True(t, chart.Series[2].SecondaryAxis)
	assert.Equal(t, []float64{2000000, 500000}, values(chart.Series[0]))
}

func TestChart_CoursesScatterAndSemester(t *testing.T) {
	svc := newChartService()

	chart, err := svc.Chart(models.CategoryCourses, ChartOptions{})
	require.NoError(t, err)
	assert.Equal(t, dto.ChartTypeScatter, chart.ChartType)
	require.Len(t, chart.Series[0].Data, 3)
	assert.Equal(t, dto.ChartPoint{Key: "C1", Label: "Intro to Programming", X: 4, Value: 120}, chart.Series[0].Data[0])

	chart, err = svc.Chart(models.CategoryCourses, ChartOptions{Semester: 2})
	require.NoError(t, err)
	require.Len(t, chart.Series[0].Data, 1)
	assert.Equal(t, "C2", chart.Series[0].Data[0].Key)
}

func TestChart_InstructorsIgnoreSearchResults(t *testing.T) {
	chart, err := newChartService().Chart(models.CategoryInstructors, ChartOptions{})
	require.NoError(t, err)

	assert.Equal(t, "Instructor Salary and Publications", chart.Title)
	assert.Len(t, chart.Series[0].Data, 2)
	assert.Equal(t, 90000.0, chart.Series[0].Data[0].X)
}

func TestChart_InvalidCategory(t *testing.T) {
	_, err := newChartService().Chart(models.Category("labs"), ChartOptions{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCategory)
}

func TestDetail(t *testing.T) {
	svc := newChartService()

	d, err := svc.Detail(models.CategoryClassrooms, "Hall B")
	require.NoError(t, err)
	assert.Equal(t, []dto.DetailItem{
		{Label: "Small Rooms", Value: "1"},
		{Label: "Medium Rooms", Value: "0"},
		{Label: "Large Rooms", Value: "1"},
	}, d.Fields)

	d, err = svc.Detail(models.CategoryInstructors, "I1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", d.Title)
	assert.Contains(t, d.Fields, dto.DetailItem{Label: "Salary", Value: "$90,000"})

	d, err = svc.Detail(models.CategoryCourses, "C3")
	require.NoError(t, err)
	assert.Contains(t, d.Fields, dto.DetailItem{Label: "Semester", Value: "1"})

	d, err = svc.Detail(models.CategoryDepartments, "History")
	require.NoError(t, err)
	assert.Contains(t, d.Fields, dto.DetailItem{Label: "Budget", Value: "$500,000"})
}

func TestDetail_UnknownKey(t *testing.T) {
	_, err := newChartService().Detail(models.CategoryCourses, "NOPE")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	_, err = newChartService().Detail(models.Category("labs"), "x")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCategory)
}

func values(s dto.ChartSeries) []float64 {
	out := make([]float64, 0, len(s.Data))
	for _, p := range s.Data {
		out = append(out, p.Value)
	}
	return out
}
