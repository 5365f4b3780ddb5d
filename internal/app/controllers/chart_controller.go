package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unibrowser/internal/app/models"
	"github.com/yigit/unibrowser/internal/app/models/dto"
	"github.com/yigit/unibrowser/internal/app/services"
	"github.com/yigit/unibrowser/internal/app/views"
	"github.com/yigit/unibrowser/internal/middleware"
	"github.com/yigit/unibrowser/internal/pkg/apperrors"
	"github.com/yigit/unibrowser/internal/pkg/helpers"
)

// ChartController serves category charts as JSON and SVG
type ChartController struct {
	chartService services.ChartService
	format       helpers.NumberFormatter
}

// NewChartController creates a new ChartController
func NewChartController(chartService services.ChartService, format helpers.NumberFormatter) *ChartController {
	return &ChartController{
		chartService: chartService,
		format:       format,
	}
}

// GetChart returns the chart of a category, and one data point's detail
// when a key is given
// @Summary Get a category chart
// @Description Charts always cover the full category list, never search results.
// @Tags charts
// @Produce json
// @Param category path string true "Category" Enums(classrooms, departments, courses, instructors)
// @Param detail query string false "Data point key (building, department name, course id or instructor id)"
// @Param semester query int false "Narrow the course chart to one semester"
// @Success 200 {object} dto.APIResponse{data=dto.ChartResponse}
// @Failure 400 {object} dto.ErrorResponse "Unknown category or invalid semester"
// @Failure 404 {object} dto.ErrorResponse "Unknown detail key"
// @Router /charts/{category} [get]
func (c *ChartController) GetChart(ctx *gin.Context) {
	category, err := models.ParseCategory(ctx.Param("category"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	opts, err := chartOptions(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	chart, err := c.chartService.Chart(category, opts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.ChartResponse{Chart: chart}
	if key := ctx.Query("detail"); key != "" {
		detail, err := c.chartService.Detail(category, key)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		response.Detail = detail
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(response))
}

// GetChartSVG renders the chart of a category as a standalone SVG image.
// The path segment is "<category>.svg".
func (c *ChartController) GetChartSVG(ctx *gin.Context) {
	file := ctx.Param("file")
	name, ok := strings.CutSuffix(file, ".svg")
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewResourceNotFoundError("unknown chart: "+file))
		return
	}

	category, err := models.ParseCategory(name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	opts, err := chartOptions(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	chart, err := c.chartService.Chart(category, opts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "image/svg+xml; charset=utf-8", []byte(views.RenderSVG(chart, c.format)))
}

// chartOptions reads the optional semester filter
func chartOptions(ctx *gin.Context) (services.ChartOptions, error) {
	raw := ctx.Query("semester")
	if raw == "" {
		return services.ChartOptions{}, nil
	}
	semester, err := strconv.Atoi(raw)
	if err != nil || semester < 0 {
		return services.ChartOptions{}, apperrors.NewBadRequestError("semester must be a non-negative number")
	}
	return services.ChartOptions{Semester: semester}, nil
}
