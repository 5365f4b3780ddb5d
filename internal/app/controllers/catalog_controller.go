package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unibrowser/internal/app/models/dto"
	"github.com/yigit/unibrowser/internal/app/services"
)

// CatalogController lists categories and select options
type CatalogController struct {
	catalogService services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// GetCategories returns the four categories in display order
// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CategoryResponse}
// @Router /categories [get]
func (c *CatalogController) GetCategories(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.catalogService.Categories()))
}

// GetOptions returns the distinct buildings and the department names
// @Summary List select options
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.OptionsResponse}
// @Router /options [get]
func (c *CatalogController) GetOptions(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.catalogService.Options()))
}
