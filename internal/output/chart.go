package output

import (
	"github.com/guptarohit/asciigraph"
)

// ChartTitle heads the visualize view.
const ChartTitle = "Sentiment Score Over Time"

// DefaultChartHeight is used when the caller passes a non-positive height.
const DefaultChartHeight = 10

// RenderChart draws scores as a line chart over insertion order with the
// y axis fixed to [0, 1]. An empty series renders NoDataMessage.
func RenderChart(scores []float64, height int) string {
	if len(scores) == 0 {
		return NoDataMessage + "\n"
	}
	if height <= 0 {
		height = DefaultChartHeight
	}

	graph := asciigraph.Plot(scores,
		asciigraph.Height(height),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Precision(2),
		asciigraph.Caption("Sentiment Score by entry"),
	)

	return ChartTitle + "\n\n" + graph + "\n"
}
