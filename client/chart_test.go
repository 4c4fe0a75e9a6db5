package client_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wingscafe/inventory/client"
)

func TestQuantityBars(t *testing.T) {
	bars := client.QuantityBars([]client.Product{
		{Name: "Coffee", Quantity: 10},
		{Name: "Tea", Quantity: 0},
	})

	require.Len(t, bars, 2)
	assert.Equal(t, client.Bar{Label: "Coffee", Value: 10}, bars[0])
	assert.Equal(t, client.Bar{Label: "Tea", Value: 0}, bars[1])
}

func TestRenderQuantityChart(t *testing.T) {
	var out strings.Builder
	err := client.RenderQuantityChart(&out, []client.Product{
		{Name: "Coffee", Quantity: 10},
		{Name: "Tea", Quantity: 5},
		{Name: "Milk", Quantity: 0},
	}, 10)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	// Longest bar belongs to the largest quantity and fills the full width.
	assert.Equal(t, 10, strings.Count(lines[0], "█"))
	assert.Equal(t, 5, strings.Count(lines[1], "█"))
	assert.Equal(t, 0, strings.Count(lines[2], "█"))
	assert.Contains(t, lines[0], "Coffee")
	assert.Contains(t, lines[2], "0")
}

func TestRenderQuantityChartTinyValuesStayVisible(t *testing.T) {
	var out strings.Builder
	err := client.RenderQuantityChart(&out, []client.Product{
		{Name: "Bulk", Quantity: 1000},
		{Name: "Rare", Quantity: 1},
	}, 10)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, 1, strings.Count(lines[1], "█"))
}

func TestRenderQuantityChartEmpty(t *testing.T) {
	var out strings.Builder
	require.NoError(t, client.RenderQuantityChart(&out, nil, 10))
	assert.Equal(t, "no products\n", out.String())
}
