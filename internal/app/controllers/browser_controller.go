package controllers

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unibrowser/internal/app/models"
	"github.com/yigit/unibrowser/internal/app/models/dto"
	"github.com/yigit/unibrowser/internal/app/services"
	"github.com/yigit/unibrowser/internal/app/session"
	"github.com/yigit/unibrowser/internal/app/views"
	"github.com/yigit/unibrowser/internal/middleware"
	"github.com/yigit/unibrowser/internal/pkg/apperrors"
	"github.com/yigit/unibrowser/internal/pkg/helpers"
	"github.com/yigit/unibrowser/internal/pkg/logger"
	"github.com/yigit/unibrowser/internal/pkg/metrics"
)

// BrowserController serves the HTML browser page. Form posts update the
// session and redirect back to the page.
type BrowserController struct {
	services *services.Services
	format   helpers.NumberFormatter
	metrics  *metrics.Metrics
}

// NewBrowserController creates a new BrowserController
func NewBrowserController(svc *services.Services, format helpers.NumberFormatter, m *metrics.Metrics) *BrowserController {
	return &BrowserController{
		services: svc,
		format:   format,
		metrics:  m,
	}
}

// Index renders the page for the session's category, criteria and results
func (c *BrowserController) Index(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)

	opts, err := chartOptions(ctx)
	if err != nil {
		opts = services.ChartOptions{}
	}

	page, err := c.buildPage(ctx, sess, opts, ctx.Query("detail"))
	if err != nil {
		c.renderError(ctx, sess, err)
		return
	}
	ctx.HTML(http.StatusOK, "index.html", page)
}

// SwitchCategory handles the category selector. The criteria always reset,
// even when the active category is chosen again.
func (c *BrowserController) SwitchCategory(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)

	category, err := models.ParseCategory(ctx.PostForm("category"))
	if err == nil {
		err = sess.SwitchCategory(category)
	}
	if err != nil {
		c.renderError(ctx, sess, err)
		return
	}

	c.metrics.ObserveCategorySwitch(string(category))
	ctx.Redirect(http.StatusSeeOther, "/")
}

// SubmitSearch stores the submitted criteria and marks them as searched
func (c *BrowserController) SubmitSearch(ctx *gin.Context) {
	sess := middleware.GetSession(ctx)

	var query dto.SearchQuery
	if err := ctx.ShouldBind(&query); err != nil {
		c.renderError(ctx, sess, apperrors.NewBadRequestError("invalid search form"))
		return
	}

	if err := sess.UpdateCriteria(query.ToCriteria(sess.Category)); err != nil {
		c.renderError(ctx, sess, err)
		return
	}
	sess.MarkSearched()

	ctx.Redirect(http.StatusSeeOther, "/")
}

func (c *BrowserController) buildPage(ctx *gin.Context, sess *session.Session, opts services.ChartOptions, detailKey string) (views.Page, error) {
	options := c.services.Catalog.Options()
	page := views.Page{
		Categories:    c.services.Catalog.Categories(),
		Category:      sess.Category,
		Form:          views.FormFor(sess.Category, sess.Criteria, options),
		IgnoredBounds: services.IgnoredBounds(sess.Criteria),
		Searched:      sess.HasResults(),
		Semester:      opts.Semester,
	}

	if sess.HasResults() {
		records, err := c.services.Search.Search(ctx.Request.Context(), sess.Category, sess.LastQuery)
		if err != nil {
			return page, err
		}
		page.Table = c.services.Table.Build(records)
		page.Count = len(records)
	}

	chart, err := c.services.Chart.Chart(sess.Category, opts)
	if err != nil {
		return page, err
	}
	page.Chart = chart
	page.ChartSVG = template.HTML(views.RenderSVG(chart, c.format))
	page.DetailKeys = views.DetailKeys(chart)

	if detailKey != "" {
		detail, err := c.services.Chart.Detail(sess.Category, detailKey)
		if err != nil {
			page.Error = err.Error()
		} else {
			page.Detail = detail
		}
	}

	return page, nil
}

// renderError shows the page again with a message and the status of err
func (c *BrowserController) renderError(ctx *gin.Context, sess *session.Session, err error) {
	status, detail := middleware.ErrorDetailFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Msg("Failed to render browser page")
	}

	page, buildErr := c.buildPage(ctx, sess, services.ChartOptions{}, "")
	if buildErr != nil {
		middleware.HandleAPIError(ctx, buildErr)
		return
	}
	page.Error = detail.Message
	ctx.HTML(status, "index.html", page)
}
