package session

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/unibrowser/internal/app/models"
	"github.com/yigit/unibrowser/internal/pkg/apperrors"
)

func TestNew(t *testing.T) {
	s := New("abc")

	assert.Equal(t, "abc", s.ID)
	assert.Equal(t, models.CategoryClassrooms, s.Category)
	assert.Equal(t, models.ClassroomCriteria{}, s.Criteria)
	assert.False(t, s.HasResults())
}

func TestSwitchCategory_ResetsCriteriaAndResults(t *testing.T) {
	s := New("abc")
	require.NoError(t, s.SwitchCategory(models.CategoryCourses))
	require.NoError(t, s.UpdateCriteria(models.CourseCriteria{Title: "calc", Credits: models.Range{Min: "3"}}))
	s.MarkSearched()
	require.True(t, s.HasResults())

	require.NoError(t, s.SwitchCategory(models.CategoryInstructors))

	assert.Equal(t, models.CategoryInstructors, s.Category)
	assert.Equal(t, models.InstructorCriteria{}, s.Criteria)
	assert.False(t, s.HasResults())
}

func TestSwitchCategory_SameCategoryStillResets(t *testing.T) {
	s := New("abc")
	require.NoError(t, s.UpdateCriteria(models.ClassroomCriteria{Room: "101"}))
	s.MarkSearched()

	require.NoError(t, s.SwitchCategory(models.CategoryClassrooms))

	assert.True(t, s.Criteria.IsBlank())
	assert.False(t, s.HasResults())
}

func TestSwitchCategory_Invalid(t *testing.T) {
	s := New("abc")
	err := s.SwitchCategory(models.Category("labs"))

	assert.ErrorIs(t, err, apperrors.ErrInvalidCategory)
	assert.Equal(t, models.CategoryClassrooms, s.Category)
}

func TestUpdateCriteria_RejectsOtherCategory(t *testing.T) {
	s := New("abc")
	err := s.UpdateCriteria(models.CourseCriteria{Title: "x"})

	assert.ErrorIs(t, err, apperrors.ErrCategoryMismatch)
	assert.Equal(t, models.ClassroomCriteria{}, s.Criteria)
}

func TestMarkSearched_SnapshotsDraft(t *testing.T) {
	s := New("abc")
	require.NoError(t, s.UpdateCriteria(models.ClassroomCriteria{Building: "Hall A"}))
	s.MarkSearched()
	require.NoError(t, s.UpdateCriteria(models.ClassroomCriteria{Building: "Hall B"}))

	assert.Equal(t, models.ClassroomCriteria{Building: "Hall A"}, s.LastQuery)
	assert.Equal(t, models.ClassroomCriteria{Building: "Hall B"}, s.Criteria)
}

func TestSessionJSON_RoundTripKeepsVariant(t *testing.T) {
	s := New("abc")
	require.NoError(t, s.SwitchCategory(models.CategoryInstructors))
	require.NoError(t, s.UpdateCriteria(models.InstructorCriteria{Department: "CS", Salary: models.Range{Max: "80000"}}))
	s.MarkSearched()

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded Session
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *s, decoded)
}

func TestSessionJSON_RejectsUnknownCategory(t *testing.T) {
	var s Session
	err := json.Unmarshal([]byte(`{"id":"x","category":"labs","criteria":{}}`), &s)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCategory)
}
