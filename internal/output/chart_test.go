package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderChart_Empty(t *testing.T) {
	assert.Equal(t, NoDataMessage+"\n", RenderChart(nil, 10))
}

func TestRenderChart_Series(t *testing.T) {
	out := RenderChart([]float64{0.82, 0.23, 0.5}, 5)

	assert.Contains(t, out, ChartTitle)
	assert.Contains(t, out, "Sentiment Score by entry")
	assert.Contains(t, out, "1.00")
	assert.Contains(t, out, "0.00")
	assert.NotContains(t, out, NoDataMessage)
}
