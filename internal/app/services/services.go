package services

import (
	"github.com/rs/zerolog"
	"github.com/yigit/unibrowser/internal/app/models"
	"github.com/yigit/unibrowser/internal/pkg/helpers"
	"github.com/yigit/unibrowser/internal/pkg/metrics"
)

// Services holds every service built over one dataset snapshot:
// - SearchService: the query engine
// - CatalogService: categories and select options
// - TableService: result tables
// - ChartService: category charts and their detail points
type Services struct {
	Search  SearchService
	Catalog CatalogService
	Table   TableService
	Chart   ChartService
}

// NewServices wires the services to a dataset and display locale
func NewServices(dataset *models.Dataset, locale string, m *metrics.Metrics, lgr zerolog.Logger) *Services {
	format := helpers.NewNumberFormatter(locale)
	return &Services{
		Search:  NewSearchService(dataset, m, lgr),
		Catalog: NewCatalogService(dataset),
		Table:   NewTableService(format),
		Chart:   NewChartService(dataset, format),
	}
}
