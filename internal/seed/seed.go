package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/yigit/unibrowser/internal/app/models"
)

// UniversityData is the default dataset document, used when no dataset path
// is configured and as the fixture for empty PostgreSQL tables.
//
//go:embed universityData.json
var UniversityData []byte

// DefaultDocument decodes the embedded dataset
func DefaultDocument() (models.Document, error) {
	var doc models.Document
	if err := json.Unmarshal(UniversityData, &doc); err != nil {
		return models.Document{}, fmt.Errorf("failed to decode embedded dataset: %w", err)
	}
	return doc, nil
}

// CreateDefaultData fills the dataset tables from the embedded document.
// Tables that already hold rows are left untouched, so running it on every
// startup is safe.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	doc, err := DefaultDocument()
	if err != nil {
		return err
	}

	lgr.Info().Msg("Checking/Creating default dataset rows...")
	var finalErr error

	tables := []struct {
		name string
		fill func(batch *pgx.Batch)
	}{
		{"classrooms", func(b *pgx.Batch) {
			for _, c := range doc.Classrooms {
				b.Queue(`INSERT INTO classrooms (building, room, capacity) VALUES ($1, $2, $3)`,
					c.Building, c.Room, c.Capacity)
			}
		}},
		{"departments", func(b *pgx.Batch) {
			for _, d := range doc.Departments {
				b.Queue(`INSERT INTO departments (name, building, budget, faculty, students) VALUES ($1, $2, $3, $4, $5)`,
					d.Name, d.Building, d.Budget, d.Faculty, d.Students)
			}
		}},
		{"courses", func(b *pgx.Batch) {
			for _, c := range doc.Courses {
				b.Queue(`INSERT INTO courses (id, title, department, credits, enrollment, semester) VALUES ($1, $2, $3, $4, $5, $6)`,
					c.ID, c.Title, c.Department, c.Credits, c.Enrollment, c.Semester)
			}
		}},
		{"instructors", func(b *pgx.Batch) {
			for _, i := range doc.Instructors {
				b.Queue(`INSERT INTO instructors (id, name, department, salary, courses, publications) VALUES ($1, $2, $3, $4, $5, $6)`,
					i.ID, i.Name, i.Department, i.Salary, i.Courses, i.Publications)
			}
		}},
	}

	for _, table := range tables {
		var count int
		if err := dbPool.QueryRow(ctx, "SELECT COUNT(*) FROM "+table.name).Scan(&count); err != nil {
			lgr.Error().Err(err).Str("table", table.name).Msg("Error counting dataset rows")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if count > 0 {
			lgr.Debug().Str("table", table.name).Int("rows", count).Msg("Table already populated, skipping")
			continue
		}

		batch := &pgx.Batch{}
		table.fill(batch)
		if err := dbPool.SendBatch(ctx, batch).Close(); err != nil {
			lgr.Error().Err(err).Str("table", table.name).Msg("Error inserting default rows")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		lgr.Info().Str("table", table.name).Int("rows", batch.Len()).Msg("Default rows created")
	}

	return finalErr
}
