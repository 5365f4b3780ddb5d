package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/unibrowser/internal/app/models"
	"github.com/yigit/unibrowser/internal/pkg/apperrors"
	"github.com/yigit/unibrowser/internal/pkg/dberrors"
)

// PostgresDatasetRepository reads the four dataset tables once.
// Rows come back in insertion order, which stands in for document order.
type PostgresDatasetRepository struct {
	db *pgxpool.Pool
}

// NewPostgresDatasetRepository creates a new postgres dataset repository
func NewPostgresDatasetRepository(db *pgxpool.Pool) *PostgresDatasetRepository {
	return &PostgresDatasetRepository{
		db: db,
	}
}

// Load selects every table and builds the snapshot
func (r *PostgresDatasetRepository) Load(ctx context.Context) (*models.Dataset, error) {
	var (
		doc models.Document
		err error
	)

	doc.Classrooms, err = selectAll[models.Classroom](ctx, r.db, `
		SELECT building, room, capacity
		FROM classrooms
		ORDER BY position
	`)
	if err != nil {
		return nil, loadError("classrooms", err)
	}

	doc.Departments, err = selectAll[models.Department](ctx, r.db, `
		SELECT name, building, budget, faculty, students
		FROM departments
		ORDER BY position
	`)
	if err != nil {
		return nil, loadError("departments", err)
	}

	doc.Courses, err = selectAll[models.Course](ctx, r.db, `
		SELECT id, title, department, credits, enrollment, semester
		FROM courses
		ORDER BY position
	`)
	if err != nil {
		return nil, loadError("courses", err)
	}

	doc.Instructors, err = selectAll[models.Instructor](ctx, r.db, `
		SELECT id, name, department, salary, courses, publications
		FROM instructors
		ORDER BY position
	`)
	if err != nil {
		return nil, loadError("instructors", err)
	}

	return models.NewDataset(doc), nil
}

// selectAll maps every row onto T by its db tags
func selectAll[T any](ctx context.Context, db *pgxpool.Pool, query string) ([]T, error) {
	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[T])
}

// loadError wraps a failed select. A missing table or column means the
// schema was never migrated, which is reported as an unavailable dataset.
func loadError(table string, err error) error {
	if dberrors.IsSchemaMismatch(err) {
		return fmt.Errorf("%w: %w: %s: %v", apperrors.ErrDatasetLoad, apperrors.ErrDatasetUnavailable, table, err)
	}
	return fmt.Errorf("%w: %s: %v", apperrors.ErrDatasetLoad, table, err)
}
