package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yigit/unibrowser/internal/app/models"
	"github.com/yigit/unibrowser/internal/pkg/apperrors"
	"github.com/yigit/unibrowser/internal/seed"
	"gopkg.in/yaml.v3"
)

// DatasetRepository loads the immutable dataset snapshot
type DatasetRepository interface {
	Load(ctx context.Context) (*models.Dataset, error)
}

// FileDatasetRepository reads the dataset from a JSON or YAML document
type FileDatasetRepository struct {
	path string
}

// NewFileDatasetRepository creates a file repository. An empty path selects
// the embedded default dataset.
func NewFileDatasetRepository(path string) *FileDatasetRepository {
	return &FileDatasetRepository{path: path}
}

// Load reads and decodes the document
func (r *FileDatasetRepository) Load(ctx context.Context) (*models.Dataset, error) {
	if r.path == "" {
		doc, err := DecodeDocument(seed.UniversityData, ".json")
		if err != nil {
			return nil, err
		}
		return models.NewDataset(doc), nil
	}

	content, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatasetLoad, err)
	}

	doc, err := DecodeDocument(content, filepath.Ext(r.path))
	if err != nil {
		return nil, err
	}
	return models.NewDataset(doc), nil
}

// DecodeDocument decodes a dataset document by file extension
func DecodeDocument(content []byte, ext string) (models.Document, error) {
	var doc models.Document

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(content, &doc); err != nil {
			return models.Document{}, fmt.Errorf("%w: invalid JSON document: %v", apperrors.ErrDatasetLoad, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &doc); err != nil {
			return models.Document{}, fmt.Errorf("%w: invalid YAML document: %v", apperrors.ErrDatasetLoad, err)
		}
	default:
		return models.Document{}, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedFormat, ext)
	}

	return doc, nil
}
