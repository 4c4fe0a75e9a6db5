package client

import (
	"fmt"
	"io"
	"strings"

	"github.com/wingscafe/inventory/internal/models"
)

// Bar is one row of the quantity chart.
type Bar struct {
	Label string
	Value int
}

// QuantityBars derives the product-name-vs-quantity bars shown on the
// dashboard chart, in product order.
func QuantityBars(products []models.Product) []Bar {
	bars := make([]Bar, len(products))
	for i, p := range products {
		bars[i] = Bar{Label: p.Name, Value: p.Quantity}
	}
	return bars
}

// RenderQuantityChart writes a text bar chart, bars scaled to the largest
// quantity. width is the length of the longest bar in characters.
func RenderQuantityChart(w io.Writer, products []models.Product, width int) error {
	bars := QuantityBars(products)
	if len(bars) == 0 {
		_, err := fmt.Fprintln(w, "no products")
		return err
	}
	if width <= 0 {
		width = 40
	}

	maxValue := 0
	labelWidth := 0
	for _, b := range bars {
		if b.Value > maxValue {
			maxValue = b.Value
		}
		if len(b.Label) > labelWidth {
			labelWidth = len(b.Label)
		}
	}

	for _, b := range bars {
		length := 0
		if maxValue > 0 {
			length = b.Value * width / maxValue
		}
		if b.Value > 0 && length == 0 {
			length = 1
		}
		_, err := fmt.Fprintf(w, "%-*s %s %d\n", labelWidth, b.Label, strings.Repeat("█", length), b.Value)
		if err != nil {
			return err
		}
	}
	return nil
}
