package services

import (
	"github.com/yigit/unibrowser/internal/app/models"
	"github.com/yigit/unibrowser/internal/app/models/dto"
	"github.com/yigit/unibrowser/internal/pkg/helpers"
)

// TableService turns search results into display rows
type TableService interface {
	Build(records []models.Record) dto.TableData
}

type tableServiceImpl struct {
	format helpers.NumberFormatter
}

// NewTableService creates a table builder for a display locale
func NewTableService(format helpers.NumberFormatter) TableService {
	return &tableServiceImpl{format: format}
}

// Build takes its columns from the first record; rows keep the record order.
// No records means no columns and no rows.
func (s *tableServiceImpl) Build(records []models.Record) dto.TableData {
	table := dto.TableData{
		Title:   "Search Results",
		Columns: []dto.Column{},
		Rows:    [][]string{},
	}
	if len(records) == 0 {
		return table
	}

	for _, field := range records[0].Fields() {
		column := dto.Column{Key: field.Key, Label: field.Key, Type: "text", Align: "left"}
		if _, ok := field.Value.(int); ok {
			column.Type, column.Align = "number", "right"
		}
		table.Columns = append(table.Columns, column)
	}

	for _, record := range records {
		fields := record.Fields()
		row := make([]string, 0, len(fields))
		for _, field := range fields {
			row = append(row, s.format.Value(field.Value))
		}
		table.Rows = append(table.Rows, row)
	}

	return table
}
