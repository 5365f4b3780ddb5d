package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	return rec.Body.String()
}

func TestObserveSearch(t *testing.T) {
	m := NewMetrics()

	m.ObserveSearch("classrooms", 3, 0)
	m.ObserveSearch("classrooms", 0, 2)

	body := scrape(t, m)
	assert.Contains(t, body, `unibrowser_searches_total{category="classrooms"} 2`)
	assert.Contains(t, body, `unibrowser_ignored_bounds_total{category="classrooms"} 2`)
	assert.Contains(t, body, `unibrowser_search_results_count{category="classrooms"} 2`)
	assert.NotContains(t, body, `unibrowser_searches_total{category="courses"}`)
}

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveSearch("courses", 1, 1)
		m.ObserveCategorySwitch("courses")
		m.ObserveSessionError("save")
		m.SetDatasetRecords("courses", 4)
	})
}

func TestHandlerExposesRuntimeAndDatasetMetrics(t *testing.T) {
	m := NewMetrics()
	m.SetDatasetRecords("instructors", 10)
	m.ObserveCategorySwitch("courses")

	body := scrape(t, m)
	assert.Contains(t, body, `unibrowser_dataset_records{category="instructors"} 10`)
	assert.Contains(t, body, `unibrowser_category_switches_total{category="courses"} 1`)
	assert.Contains(t, body, "go_goroutines")
}

func TestSeparateInstancesDoNotCollide(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetrics()
		NewMetrics()
	})
}
