package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/unibrowser/internal/app/models"
	"github.com/yigit/unibrowser/internal/pkg/apperrors"
	"github.com/yigit/unibrowser/internal/pkg/metrics"
)

// SearchService defines the interface for dataset searches
type SearchService interface {
	Search(ctx context.Context, category models.Category, criteria models.Criteria) ([]models.Record, error)
}

// searchServiceImpl implements the SearchService interface
type searchServiceImpl struct {
	dataset *models.Dataset
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// NewSearchService creates a new search service instance
func NewSearchService(dataset *models.Dataset, m *metrics.Metrics, lgr zerolog.Logger) SearchService {
	return &searchServiceImpl{
		dataset: dataset,
		metrics: m,
		logger:  lgr.With().Str("component", "search").Logger(),
	}
}

// Search checks that the criteria belong to the category and runs the query.
// Nil criteria mean no constraint.
func (s *searchServiceImpl) Search(ctx context.Context, category models.Category, criteria models.Criteria) ([]models.Record, error) {
	if !category.Valid() {
		return nil, apperrors.NewInvalidCategoryError(string(category))
	}
	if criteria == nil {
		criteria = models.EmptyCriteria(category)
	}
	if criteria.Category() != category {
		return nil, fmt.Errorf("%w: got %s criteria for %s", apperrors.ErrCategoryMismatch, criteria.Category(), category)
	}

	results := Search(s.dataset, criteria)
	ignored := IgnoredBounds(criteria)

	s.metrics.ObserveSearch(string(category), len(results), len(ignored))
	s.logger.Debug().
		Str("category", string(category)).
		Int("results", len(results)).
		Strs("ignoredBounds", ignored).
		Msg("Search evaluated")

	return results, nil
}

// Search filters the list selected by the criteria variant. Every non-blank
// criterion must match; blank ones always do. The result is a new slice in
// dataset order and is empty, never nil, when nothing matches.
func Search(dataset *models.Dataset, criteria models.Criteria) []models.Record {
	switch c := criteria.(type) {
	case models.ClassroomCriteria:
		return filter(dataset.Classrooms(), func(r models.Classroom) bool {
			return matchesExact(r.Building, c.Building) &&
				containsFold(r.Room, c.Room) &&
				c.Capacity.Contains(r.Capacity)
		})
	case models.DepartmentCriteria:
		return filter(dataset.Departments(), func(r models.Department) bool {
			return containsFold(r.Name, c.Name) &&
				matchesExact(r.Building, c.Building) &&
				c.Budget.Contains(r.Budget)
		})
	case models.CourseCriteria:
		return filter(dataset.Courses(), func(r models.Course) bool {
			return containsFold(r.Title, c.Title) &&
				matchesExact(r.Department, c.Department) &&
				c.Credits.Contains(r.Credits)
		})
	case models.InstructorCriteria:
		return filter(dataset.Instructors(), func(r models.Instructor) bool {
			return containsFold(r.Name, c.Name) &&
				matchesExact(r.Department, c.Department) &&
				c.Salary.Contains(r.Salary)
		})
	}
	return []models.Record{}
}

// IgnoredBounds names the range bounds that carry text but no leading
// integer. Such bounds do not constrain the search; the page only points
// them out.
func IgnoredBounds(criteria models.Criteria) []string {
	if criteria == nil {
		return nil
	}
	fields := models.FlattenCriteria(criteria)

	var ignored []string
	if _, ok := models.ParseBound(fields.Min); fields.Min != "" && !ok {
		ignored = append(ignored, "min")
	}
	if _, ok := models.ParseBound(fields.Max); fields.Max != "" && !ok {
		ignored = append(ignored, "max")
	}
	return ignored
}

func filter[T models.Record](items []T, match func(T) bool) []models.Record {
	results := make([]models.Record, 0)
	for _, item := range items {
		if match(item) {
			results = append(results, item)
		}
	}
	return results
}

// containsFold is case-insensitive containment; an empty term matches anything
func containsFold(value, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(term))
}

// matchesExact is full string equality; an empty want matches anything
func matchesExact(value, want string) bool {
	return want == "" || value == want
}
