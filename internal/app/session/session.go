package session

import (
	"encoding/json"
	"fmt"

	"github.com/yigit/unibrowser/internal/app/models"
	"github.com/yigit/unibrowser/internal/pkg/apperrors"
)

// Session is the transient browser state of one visitor: the active
// category, the criteria being edited and the criteria of the last search.
// Results are not stored; the dataset is immutable, so running LastQuery
// again yields the same list.
type Session struct {
	ID        string
	Category  models.Category
	Criteria  models.Criteria
	LastQuery models.Criteria
}

// New starts a session on the default category with blank criteria and no results
func New(id string) *Session {
	return &Session{
		ID:       id,
		Category: models.DefaultCategory,
		Criteria: models.EmptyCriteria(models.DefaultCategory),
	}
}

// SwitchCategory replaces the criteria with the blank criteria of the new
// category and drops the results. Re-selecting the active category resets
// it too.
func (s *Session) SwitchCategory(category models.Category) error {
	if !category.Valid() {
		return apperrors.NewInvalidCategoryError(string(category))
	}
	s.Category = category
	s.Criteria = models.EmptyCriteria(category)
	s.LastQuery = nil
	return nil
}

// UpdateCriteria replaces the draft criteria. Criteria of another category
// are rejected and leave the session untouched.
func (s *Session) UpdateCriteria(criteria models.Criteria) error {
	if criteria == nil {
		criteria = models.EmptyCriteria(s.Category)
	}
	if criteria.Category() != s.Category {
		return fmt.Errorf("%w: %s criteria while %s is active", apperrors.ErrCategoryMismatch, criteria.Category(), s.Category)
	}
	s.Criteria = criteria
	return nil
}

// MarkSearched makes the draft criteria the query whose results are shown
func (s *Session) MarkSearched() {
	s.LastQuery = s.Criteria
}

// HasResults reports whether a search has run since the last category switch
func (s *Session) HasResults() bool {
	return s.LastQuery != nil
}

// envelope is the stored form of a Session; criteria are decoded by category
type envelope struct {
	ID        string          `json:"id"`
	Category  models.Category `json:"category"`
	Criteria  json.RawMessage `json:"criteria"`
	LastQuery json.RawMessage `json:"lastQuery,omitempty"`
}

// MarshalJSON implements json.Marshaler
func (s *Session) MarshalJSON() ([]byte, error) {
	env := envelope{ID: s.ID, Category: s.Category}

	var err error
	if env.Criteria, err = json.Marshal(s.Criteria); err != nil {
		return nil, err
	}
	if s.LastQuery != nil {
		if env.LastQuery, err = json.Marshal(s.LastQuery); err != nil {
			return nil, err
		}
	}
	return json.Marshal(env)
}

// UnmarshalJSON implements json.Unmarshaler
func (s *Session) UnmarshalJSON(data []byte) error {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	if !env.Category.Valid() {
		return apperrors.NewInvalidCategoryError(string(env.Category))
	}

	criteria, err := decodeCriteria(env.Category, env.Criteria)
	if err != nil {
		return err
	}

	var lastQuery models.Criteria
	if len(env.LastQuery) > 0 {
		if lastQuery, err = decodeCriteria(env.Category, env.LastQuery); err != nil {
			return err
		}
	}

	*s = Session{
		ID:        env.ID,
		Category:  env.Category,
		Criteria:  criteria,
		LastQuery: lastQuery,
	}
	return nil
}

func decodeCriteria(category models.Category, raw json.RawMessage) (models.Criteria, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return models.EmptyCriteria(category), nil
	}

	switch category {
	case models.CategoryClassrooms:
		var c models.ClassroomCriteria
		err := json.Unmarshal(raw, &c)
		return c, err
	case models.CategoryDepartments:
		var c models.DepartmentCriteria
		err := json.Unmarshal(raw, &c)
		return c, err
	case models.CategoryCourses:
		var c models.CourseCriteria
		err := json.Unmarshal(raw, &c)
		return c, err
	case models.CategoryInstructors:
		var c models.InstructorCriteria
		err := json.Unmarshal(raw, &c)
		return c, err
	}
	return nil, apperrors.NewInvalidCategoryError(string(category))
}
