package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/unibrowser/internal/app/controllers"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Search  *controllers.SearchController
	Catalog *controllers.CatalogController
	Chart   *controllers.ChartController
	Health  *controllers.HealthController
	Browser *controllers.BrowserController
}

// SetupRouter configures all application routes. sessions is applied to
// the browser page routes only; the JSON API is stateless.
func SetupRouter(router *gin.Engine, c Controllers, sessions gin.HandlerFunc) {
	// API version group
	v1 := router.Group("/api/v1")
	{
		v1.GET("/categories", c.Catalog.GetCategories)
		v1.GET("/options", c.Catalog.GetOptions)
		v1.GET("/search/:category", c.Search.Search)
		v1.GET("/charts/:category", c.Chart.GetChart)

		// Health check endpoint (public)
		v1.GET("/health", c.Health.Health)
	}

	router.GET("/ping", c.Health.Ping)

	// Standalone chart images, "/chart/<category>.svg"
	router.GET("/chart/:file", c.Chart.GetChartSVG)

	// --- Browser page, session backed ---
	page := router.Group("/")
	page.Use(sessions)
	{
		page.GET("", c.Browser.Index)
		page.POST("/category", c.Browser.SwitchCategory)
		page.POST("/search", c.Browser.SubmitSearch)
	}
}
