package services

import (
	"strconv"

	"github.com/yigit/unibrowser/internal/app/models"
	"github.com/yigit/unibrowser/internal/app/models/dto"
	"github.com/yigit/unibrowser/internal/pkg/apperrors"
	"github.com/yigit/unibrowser/internal/pkg/helpers"
)

// Room size buckets. A capacity on a boundary belongs to the lower bucket.
const (
	SmallRoomMaxCapacity  = 25
	MediumRoomMaxCapacity = 50
)

// Bucket is a classroom size class used by the classroom chart
type Bucket string

const (
	BucketSmall  Bucket = "small"
	BucketMedium Bucket = "medium"
	BucketLarge  Bucket = "large"
)

// BucketFor classifies a capacity: small <= 25 < medium <= 50 < large
func BucketFor(capacity int) Bucket {
	switch {
	case capacity <= SmallRoomMaxCapacity:
		return BucketSmall
	case capacity <= MediumRoomMaxCapacity:
		return BucketMedium
	default:
		return BucketLarge
	}
}

// BuildingBuckets counts the rooms of one building per size class
type BuildingBuckets struct {
	Building    string `json:"building"`
	SmallRooms  int    `json:"smallRooms"`
	MediumRooms int    `json:"mediumRooms"`
	LargeRooms  int    `json:"largeRooms"`
}

// ClassroomBuckets aggregates classrooms per building, buildings in order
// of first appearance
func ClassroomBuckets(classrooms []models.Classroom) []BuildingBuckets {
	buckets := make([]BuildingBuckets, 0)
	index := make(map[string]int)

	for _, c := range classrooms {
		i, ok := index[c.Building]
		if !ok {
			i = len(buckets)
			index[c.Building] = i
			buckets = append(buckets, BuildingBuckets{Building: c.Building})
		}
		switch BucketFor(c.Capacity) {
		case BucketSmall:
			buckets[i].SmallRooms++
		case BucketMedium:
			buckets[i].MediumRooms++
		case BucketLarge:
			buckets[i].LargeRooms++
		}
	}
	return buckets
}

// ChartOptions narrows what a chart plots. Semester applies to the course
// chart only; zero plots every semester.
type ChartOptions struct {
	Semester int
}

// ChartService builds the fixed chart of a category from the full list
type ChartService interface {
	Chart(category models.Category, opts ChartOptions) (dto.ChartConfig, error)
	Detail(category models.Category, key string) (*dto.ChartDetail, error)
}

type chartServiceImpl struct {
	dataset *models.Dataset
	format  helpers.NumberFormatter
}

// NewChartService creates a new chart service instance
func NewChartService(dataset *models.Dataset, format helpers.NumberFormatter) ChartService {
	return &chartServiceImpl{
		dataset: dataset,
		format:  format,
	}
}

// chartColors is the series palette, one entry per series index
var chartColors = []string{"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6"}

func (s *chartServiceImpl) Chart(category models.Category, opts ChartOptions) (dto.ChartConfig, error) {
	switch category {
	case models.CategoryClassrooms:
		return s.classroomChart(), nil
	case models.CategoryDepartments:
		return s.departmentChart(), nil
	case models.CategoryCourses:
		return s.courseChart(opts.Semester), nil
	case models.CategoryInstructors:
		return s.instructorChart(), nil
	}
	return dto.ChartConfig{}, apperrors.NewInvalidCategoryError(string(category))
}

func (s *chartServiceImpl) classroomChart() dto.ChartConfig {
	buckets := ClassroomBuckets(s.dataset.Classrooms())

	small := dto.ChartSeries{Name: "smallRooms", Label: "Small Rooms", Color: chartColors[0], Data: []dto.ChartPoint{}}
	medium := dto.ChartSeries{Name: "mediumRooms", Label: "Medium Rooms", Color: chartColors[1], Data: []dto.ChartPoint{}}
	large := dto.ChartSeries{Name: "largeRooms", Label: "Large Rooms", Color: chartColors[2], Data: []dto.ChartPoint{}}
	buildings := make([]string, 0, len(buckets))

	for _, b := range buckets {
		buildings = append(buildings, b.Building)
		small.Data = append(small.Data, dto.ChartPoint{Key: b.Building, Label: b.Building, Value: float64(b.SmallRooms)})
		medium.Data = append(medium.Data, dto.ChartPoint{Key: b.Building, Label: b.Building, Value: float64(b.MediumRooms)})
		large.Data = append(large.Data, dto.ChartPoint{Key: b.Building, Label: b.Building, Value: float64(b.LargeRooms)})
	}

	return dto.ChartConfig{
		ChartType:   dto.ChartTypeStackedBar,
		Title:       "Classroom Distribution by Building",
		Description: "Overview of room sizes across buildings",
		XAxis:       "Building",
		YAxis:       "Rooms",
		Categories:  buildings,
		Series:      []dto.ChartSeries{small, medium, large},
		Colors:      chartColors[:3],
		ShowLegend:  true,
		ShowGrid:    true,
	}
}

func (s *chartServiceImpl) departmentChart() dto.ChartConfig {
	departments := s.dataset.Departments()

	budget := dto.ChartSeries{Name: "budget", Label: "Budget", Color: chartColors[0], Data: []dto.ChartPoint{}}
	faculty := dto.ChartSeries{Name: "faculty", Label: "Faculty", Color: chartColors[1], Data: []dto.ChartPoint{}, SecondaryAxis: true}
	students := dto.ChartSeries{Name: "students", Label: "Students", Color: chartColors[2], Data: []dto.ChartPoint{}, SecondaryAxis: true}
	names := make([]string, 0, len(departments))

	for _, d := range departments {
		names = append(names, d.Name)
		budget.Data = append(budget.Data, dto.ChartPoint{Key: d.Name, Label: d.Name, Value: float64(d.Budget)})
		faculty.Data = append(faculty.Data, dto.ChartPoint{Key: d.Name, Label: d.Name, Value: float64(d.Faculty)})
		students.Data = append(students.Data, dto.ChartPoint{Key: d.Name, Label: d.Name, Value: float64(d.Students)})
	}

	return dto.ChartConfig{
		ChartType:   dto.ChartTypeBar,
		Title:       "Department Budget and Size Comparison",
		Description: "Overview of department budgets, faculty, and students",
		XAxis:       "Department",
		YAxis:       "Budget",
		Y2Axis:      "People",
		Categories:  names,
		Series:      []dto.ChartSeries{budget, faculty, students},
		Colors:      chartColors[:3],
		ShowLegend:  true,
		ShowGrid:    true,
	}
}

func (s *chartServiceImpl) courseChart(semester int) dto.ChartConfig {
	series := dto.ChartSeries{Name: "courses", Label: "Courses", Color: chartColors[0], Data: []dto.ChartPoint{}}
	for _, c := range s.dataset.Courses() {
		if semester != 0 && c.Semester != semester {
			continue
		}
		series.Data = append(series.Data, dto.ChartPoint{
			Key:   c.ID,
			Label: c.Title,
			X:     float64(c.Credits),
			Value: float64(c.Enrollment),
		})
	}

	description := "Relationship between course credits and enrollment"
	if semester != 0 {
		description += ", semester " + strconv.Itoa(semester)
	}

	return dto.ChartConfig{
		ChartType:   dto.ChartTypeScatter,
		Title:       "Course Enrollment and Credits",
		Description: description,
		XAxis:       "Credits",
		YAxis:       "Enrollment",
		Series:      []dto.ChartSeries{series},
		Colors:      chartColors[:1],
		ShowLegend:  false,
		ShowGrid:    true,
	}
}

func (s *chartServiceImpl) instructorChart() dto.ChartConfig {
	series := dto.ChartSeries{Name: "instructors", Label: "Instructors", Color: chartColors[0], Data: []dto.ChartPoint{}}
	for _, i := range s.dataset.Instructors() {
		series.Data = append(series.Data, dto.ChartPoint{
			Key:   i.ID,
			Label: i.Name,
			X:     float64(i.Salary),
			Value: float64(i.Publications),
		})
	}

	return dto.ChartConfig{
		ChartType:   dto.ChartTypeScatter,
		Title:       "Instructor Salary and Publications",
		Description: "Overview of instructor salaries and publication counts",
		XAxis:       "Salary",
		YAxis:       "Publications",
		Series:      []dto.ChartSeries{series},
		Colors:      chartColors[:1],
		ShowLegend:  false,
		ShowGrid:    true,
	}
}

// Detail looks up the data point a chart highlights: a building for
// classrooms, a department name, a course id or an instructor id
func (s *chartServiceImpl) Detail(category models.Category, key string) (*dto.ChartDetail, error) {
	switch category {
	case models.CategoryClassrooms:
		for _, b := range ClassroomBuckets(s.dataset.Classrooms()) {
			if b.Building == key {
				return &dto.ChartDetail{Key: key, Title: b.Building, Fields: []dto.DetailItem{
					{Label: "Small Rooms", Value: s.format.Int(b.SmallRooms)},
					{Label: "Medium Rooms", Value: s.format.Int(b.MediumRooms)},
					{Label: "Large Rooms", Value: s.format.Int(b.LargeRooms)},
				}}, nil
			}
		}
	case models.CategoryDepartments:
		for _, d := range s.dataset.Departments() {
			if d.Name == key {
				return &dto.ChartDetail{Key: key, Title: d.Name, Fields: []dto.DetailItem{
					{Label: "Budget", Value: s.format.Money(d.Budget)},
					{Label: "Faculty", Value: s.format.Int(d.Faculty)},
					{Label: "Students", Value: s.format.Int(d.Students)},
				}}, nil
			}
		}
	case models.CategoryCourses:
		for _, c := range s.dataset.Courses() {
			if c.ID == key {
				return &dto.ChartDetail{Key: key, Title: c.Title, Fields: []dto.DetailItem{
					{Label: "Course ID", Value: c.ID},
					{Label: "Credits", Value: s.format.Int(c.Credits)},
					{Label: "Enrollment", Value: s.format.Int(c.Enrollment)},
					{Label: "Semester", Value: strconv.Itoa(c.Semester)},
				}}, nil
			}
		}
	case models.CategoryInstructors:
		for _, i := range s.dataset.Instructors() {
			if i.ID == key {
				return &dto.ChartDetail{Key: key, Title: i.Name, Fields: []dto.DetailItem{
					{Label: "Department", Value: i.Department},
					{Label: "Salary", Value: s.format.Money(i.Salary)},
					{Label: "Courses", Value: s.format.Int(i.Courses)},
					{Label: "Publications", Value: s.format.Int(i.Publications)},
				}}, nil
			}
		}
	default:
		return nil, apperrors.NewInvalidCategoryError(string(category))
	}

	return nil, apperrors.NewResourceNotFoundError("no " + string(category) + " chart point for " + strconv.Quote(key))
}
