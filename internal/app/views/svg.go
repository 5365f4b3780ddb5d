package views

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/yigit/unibrowser/internal/app/models/dto"
	"github.com/yigit/unibrowser/internal/pkg/helpers"
)

// Canvas geometry of a rendered chart, in SVG user units
const (
	svgWidth     = 720
	svgHeight    = 360
	marginLeft   = 80
	marginRight  = 70
	marginTop    = 48
	marginBottom = 72
	yTicks       = 5
)

const (
	plotWidth  = svgWidth - marginLeft - marginRight
	plotHeight = svgHeight - marginTop - marginBottom
)

// RenderSVG draws a chart as a standalone SVG document fragment.
// Stacked bars sum their series per category, plain bars are grouped with
// SecondaryAxis series scaled against the right axis, scatter charts plot
// X against Value.
func RenderSVG(chart dto.ChartConfig, format helpers.NumberFormatter) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d" role="img" aria-label="%s" font-family="sans-serif">`,
		svgWidth, svgHeight, svgWidth, svgHeight, esc(chart.Title))
	fmt.Fprintf(&b, `<title>%s</title>`, esc(chart.Title))
	fmt.Fprintf(&b, `<text x="%d" y="24" font-size="16" font-weight="bold">%s</text>`, marginLeft, esc(chart.Title))

	switch chart.ChartType {
	case dto.ChartTypeStackedBar:
		renderStackedBars(&b, chart, format)
	case dto.ChartTypeBar:
		renderGroupedBars(&b, chart, format)
	case dto.ChartTypeScatter:
		renderScatter(&b, chart, format)
	}

	if chart.ShowLegend {
		renderLegend(&b, chart.Series)
	}
	b.WriteString(`</svg>`)
	return b.String()
}

func renderStackedBars(b *strings.Builder, chart dto.ChartConfig, format helpers.NumberFormatter) {
	n := len(chart.Categories)
	totals := make([]float64, n)
	for _, s := range chart.Series {
		for i, p := range s.Data {
			if i < n {
				totals[i] += p.Value
			}
		}
	}
	top := niceCeil(maxOf(totals))

	renderYAxis(b, top, chart.ShowGrid, marginLeft, "end", format)
	renderAxisLabels(b, chart.XAxis, chart.YAxis, "")
	if n == 0 {
		return
	}

	band := float64(plotWidth) / float64(n)
	barWidth := band * 0.6
	for i, category := range chart.Categories {
		x := float64(marginLeft) + band*float64(i) + (band-barWidth)/2
		base := float64(marginTop + plotHeight)
		for _, s := range chart.Series {
			if i >= len(s.Data) || s.Data[i].Value <= 0 {
				continue
			}
			h := s.Data[i].Value / top * plotHeight
			base -= h
			fmt.Fprintf(b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"><title>%s %s: %s</title></rect>`,
				x, base, barWidth, h, esc(s.Color), esc(category), esc(s.Label), format.Int(int(s.Data[i].Value)))
		}
		renderCategoryLabel(b, float64(marginLeft)+band*float64(i)+band/2, category)
	}
}

func renderGroupedBars(b *strings.Builder, chart dto.ChartConfig, format helpers.NumberFormatter) {
	var primary, secondary []float64
	for _, s := range chart.Series {
		for _, p := range s.Data {
			if s.SecondaryAxis {
				secondary = append(secondary, p.Value)
			} else {
				primary = append(primary, p.Value)
			}
		}
	}
	topPrimary := niceCeil(maxOf(primary))
	topSecondary := niceCeil(maxOf(secondary))

	renderYAxis(b, topPrimary, chart.ShowGrid, marginLeft, "end", format)
	if len(secondary) > 0 {
		renderYAxis(b, topSecondary, false, marginLeft+plotWidth, "start", format)
	}
	renderAxisLabels(b, chart.XAxis, chart.YAxis, chart.Y2Axis)

	n := len(chart.Categories)
	if n == 0 || len(chart.Series) == 0 {
		return
	}

	band := float64(plotWidth) / float64(n)
	barWidth := band * 0.8 / float64(len(chart.Series))
	for i, category := range chart.Categories {
		start := float64(marginLeft) + band*float64(i) + band*0.1
		for j, s := range chart.Series {
			if i >= len(s.Data) {
				continue
			}
			top := topPrimary
			if s.SecondaryAxis {
				top = topSecondary
			}
			h := s.Data[i].Value / top * plotHeight
			fmt.Fprintf(b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"><title>%s %s: %s</title></rect>`,
				start+barWidth*float64(j), float64(marginTop+plotHeight)-h, barWidth, h, esc(s.Color),
				esc(category), esc(s.Label), format.Int(int(s.Data[i].Value)))
		}
		renderCategoryLabel(b, float64(marginLeft)+band*float64(i)+band/2, category)
	}
}

func renderScatter(b *strings.Builder, chart dto.ChartConfig, format helpers.NumberFormatter) {
	var xs, ys []float64
	for _, s := range chart.Series {
		for _, p := range s.Data {
			xs = append(xs, p.X)
			ys = append(ys, p.Value)
		}
	}

	xMin, xMax := niceFloor(minOf(xs)), niceCeil(maxOf(xs))
	if xMax <= xMin {
		xMax = xMin + 1
	}
	yTop := niceCeil(maxOf(ys))

	renderYAxis(b, yTop, chart.ShowGrid, marginLeft, "end", format)
	renderXTicks(b, xMin, xMax, format)
	renderAxisLabels(b, chart.XAxis, chart.YAxis, "")

	for _, s := range chart.Series {
		for _, p := range s.Data {
			cx := float64(marginLeft) + (p.X-xMin)/(xMax-xMin)*plotWidth
			cy := float64(marginTop+plotHeight) - p.Value/yTop*plotHeight
			fmt.Fprintf(b, `<circle cx="%.1f" cy="%.1f" r="5" fill="%s" fill-opacity="0.8" data-key="%s"><title>%s: %s %s, %s %s</title></circle>`,
				cx, cy, esc(s.Color), esc(p.Key), esc(p.Label),
				esc(chart.XAxis), format.Int(int(p.X)), esc(chart.YAxis), format.Int(int(p.Value)))
		}
	}
}

// renderYAxis draws a vertical axis with tick labels at x. Labels sit on
// the anchor side: "end" for the left axis, "start" for the right one.
func renderYAxis(b *strings.Builder, top float64, grid bool, x int, anchor string, format helpers.NumberFormatter) {
	fmt.Fprintf(b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#6B7280"/>`, x, marginTop, x, marginTop+plotHeight)

	offset := -6
	if anchor == "start" {
		offset = 6
	}
	for i := 0; i <= yTicks; i++ {
		value := top / yTicks * float64(i)
		y := float64(marginTop+plotHeight) - float64(plotHeight)/yTicks*float64(i)
		if grid && i > 0 {
			fmt.Fprintf(b, `<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" stroke="#E5E7EB"/>`, marginLeft, y, marginLeft+plotWidth, y)
		}
		fmt.Fprintf(b, `<text x="%d" y="%.1f" font-size="11" text-anchor="%s" dominant-baseline="middle">%s</text>`,
			x+offset, y, anchor, format.Int(int(math.Round(value))))
	}
}

func renderXTicks(b *strings.Builder, min, max float64, format helpers.NumberFormatter) {
	for i := 0; i <= yTicks; i++ {
		value := min + (max-min)/yTicks*float64(i)
		x := float64(marginLeft) + float64(plotWidth)/yTicks*float64(i)
		fmt.Fprintf(b, `<text x="%.1f" y="%d" font-size="11" text-anchor="middle">%s</text>`,
			x, marginTop+plotHeight+16, format.Int(int(math.Round(value))))
	}
}

func renderAxisLabels(b *strings.Builder, xLabel, yLabel, y2Label string) {
	base := marginTop + plotHeight
	fmt.Fprintf(b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#6B7280"/>`, marginLeft, base, marginLeft+plotWidth, base)
	if xLabel != "" {
		fmt.Fprintf(b, `<text x="%d" y="%d" font-size="12" text-anchor="middle">%s</text>`,
			marginLeft+plotWidth/2, svgHeight-12, esc(xLabel))
	}
	if yLabel != "" {
		fmt.Fprintf(b, `<text x="14" y="%d" font-size="12" text-anchor="middle" transform="rotate(-90 14 %d)">%s</text>`,
			marginTop+plotHeight/2, marginTop+plotHeight/2, esc(yLabel))
	}
	if y2Label != "" {
		x := svgWidth - 10
		fmt.Fprintf(b, `<text x="%d" y="%d" font-size="12" text-anchor="middle" transform="rotate(90 %d %d)">%s</text>`,
			x, marginTop+plotHeight/2, x, marginTop+plotHeight/2, esc(y2Label))
	}
}

func renderCategoryLabel(b *strings.Builder, x float64, label string) {
	fmt.Fprintf(b, `<text x="%.1f" y="%d" font-size="11" text-anchor="middle">%s</text>`,
		x, marginTop+plotHeight+16, esc(label))
}

func renderLegend(b *strings.Builder, series []dto.ChartSeries) {
	x := marginLeft + plotWidth - 140*len(series)
	for _, s := range series {
		fmt.Fprintf(b, `<rect x="%d" y="30" width="10" height="10" fill="%s"/><text x="%d" y="39" font-size="11">%s</text>`,
			x, esc(s.Color), x+14, esc(s.Label))
		x += 140
	}
}

// niceCeil rounds v up to 1, 2 or 5 times a power of ten; zero and
// negative values give 1 so scales never divide by zero
func niceCeil(v float64) float64 {
	if v <= 0 {
		return 1
	}
	exp := math.Pow(10, math.Floor(math.Log10(v)))
	for _, step := range []float64{1, 2, 5, 10} {
		if v <= step*exp {
			return step * exp
		}
	}
	return 10 * exp
}

// niceFloor rounds v down to a multiple of the power of ten below it
func niceFloor(v float64) float64 {
	if v <= 0 {
		return 0
	}
	exp := math.Pow(10, math.Floor(math.Log10(v)))
	return math.Floor(v/exp) * exp
}

func maxOf(values []float64) float64 {
	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	return max
}

func minOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

func esc(s string) string {
	return html.EscapeString(s)
}
