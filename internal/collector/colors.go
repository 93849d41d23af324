package collector

import (
	"fmt"

	"rfetch/internal/model"
)

// ColorScheme returns the sixteen swatch cells: the eight standard background
// colors followed by their bright variants.
func (c *Collector) ColorScheme() []model.Color {
	colors := make([]model.Color, 0, 16)
	for code := 40; code <= 47; code++ {
		colors = append(colors, model.Color(fmt.Sprintf("\x1b[%dm", code)))
	}
	for code := 100; code <= 107; code++ {
		colors = append(colors, model.Color(fmt.Sprintf("\x1b[%dm", code)))
	}
	return colors
}
