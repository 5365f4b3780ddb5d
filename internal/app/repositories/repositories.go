package repositories

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/unibrowser/internal/pkg/apperrors"
)

// Dataset sources
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Repositories holds all the repository instances
type Repositories struct {
	DatasetRepository DatasetRepository
}

// NewRepositories picks the dataset repository for a source. The pool is
// only used by the postgres source and may be nil otherwise.
func NewRepositories(source, path string, db *pgxpool.Pool) (*Repositories, error) {
	switch source {
	case "", SourceFile:
		return &Repositories{DatasetRepository: NewFileDatasetRepository(path)}, nil
	case SourcePostgres:
		if db == nil {
			return nil, fmt.Errorf("%w: postgres source requires a database pool", apperrors.ErrUnsupportedSource)
		}
		return &Repositories{DatasetRepository: NewPostgresDatasetRepository(db)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedSource, source)
	}
}
