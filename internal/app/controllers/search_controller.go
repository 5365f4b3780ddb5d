// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unibrowser/internal/app/models"
	"github.com/yigit/unibrowser/internal/app/models/dto"
	"github.com/yigit/unibrowser/internal/app/services"
	"github.com/yigit/unibrowser/internal/middleware"
)

// SearchController serves the JSON search API
type SearchController struct {
	searchService services.SearchService
	tableService  services.TableService
}

// NewSearchController creates a new SearchController
func NewSearchController(searchService services.SearchService, tableService services.TableService) *SearchController {
	return &SearchController{
		searchService: searchService,
		tableService:  tableService,
	}
}

// Search filters one category with criteria taken from the query string
// @Summary Search a category
// @Description Returns the records of a category that satisfy every non-blank criterion, in dataset order. A bound that is not a number is ignored and reported in ignoredBounds.
// @Tags search
// @Produce json
// @Param category path string true "Category" Enums(classrooms, departments, courses, instructors)
// @Param building query string false "Exact building (classrooms, departments)"
// @Param room query string false "Room substring (classrooms)"
// @Param name query string false "Name substring (departments, instructors)"
// @Param title query string false "Title substring (courses)"
// @Param department query string false "Exact department (courses, instructors)"
// @Param min query string false "Lower bound of the numeric range"
// @Param max query string false "Upper bound of the numeric range"
// @Success 200 {object} dto.APIResponse{data=dto.SearchResponse} "Matching records"
// @Failure 400 {object} dto.ErrorResponse "Unknown category or invalid query"
// @Router /search/{category} [get]
func (c *SearchController) Search(ctx *gin.Context) {
	category, err := models.ParseCategory(ctx.Param("category"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var query dto.SearchQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}

	criteria := query.ToCriteria(category)
	records, err := c.searchService.Search(ctx.Request.Context(), category, criteria)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SearchResponse{
		Category:      category,
		Records:       records,
		Table:         c.tableService.Build(records),
		Count:         len(records),
		IgnoredBounds: services.IgnoredBounds(criteria),
	}))
}
