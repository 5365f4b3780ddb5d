package dto

// Chart types
const (
	ChartTypeBar        = "bar"
	ChartTypeStackedBar = "stacked_bar"
	ChartTypeScatter    = "scatter"
)

// ChartConfig defines how to render a chart
type ChartConfig struct {
	ChartType   string        `json:"chartType" example:"stacked_bar"`
	Title       string        `json:"title" example:"Classroom Distribution by Building"`
	Description string        `json:"description,omitempty"`
	XAxis       string        `json:"xAxis,omitempty"`
	YAxis       string        `json:"yAxis,omitempty"`
	Y2Axis      string        `json:"y2Axis,omitempty"`
	Categories  []string      `json:"categories,omitempty"`
	Series      []ChartSeries `json:"series"`
	Colors      []string      `json:"colors,omitempty"`
	ShowLegend  bool          `json:"showLegend"`
	ShowGrid    bool          `json:"showGrid"`
}

// ChartSeries represents a data series in a chart
type ChartSeries struct {
	Name  string       `json:"name"`
	Label string       `json:"label"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
	// SecondaryAxis plots the series against the right hand axis
	SecondaryAxis bool `json:"secondaryAxis,omitempty"`
}

// ChartPoint represents a single data point. Bar charts use Label and
// Value; scatter charts use X and Value with Label naming the record.
type ChartPoint struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	X     float64 `json:"x,omitempty"`
	Value float64 `json:"value"`
}

// ChartDetail is the highlighted data point of a chart
type ChartDetail struct {
	Key    string       `json:"key"`
	Title  string       `json:"title"`
	Fields []DetailItem `json:"fields"`
}

// DetailItem is one labelled line of a ChartDetail
type DetailItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ChartResponse is returned by the chart endpoint
type ChartResponse struct {
	Chart  ChartConfig  `json:"chart"`
	Detail *ChartDetail `json:"detail,omitempty"`
}
