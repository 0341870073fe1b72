// Package width implements contacts.WidthCalculator using the East Asian
// Width properties from golang.org/x/text/width.
package width

import (
	"strings"

	"github.com/fwojciec/contacts"
	"golang.org/x/text/width"
)

// Ensure Calculator implements contacts.WidthCalculator at compile time.
var _ contacts.WidthCalculator = (*Calculator)(nil)

// Calculator measures strings in terminal cells.
// Wide (W) and Fullwidth (F) runes take two cells; all other runes,
// including ambiguous, combining and control runes, take one.
type Calculator struct{}

// NewCalculator returns a new Calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// RuneWidth returns the number of cells r occupies.
func (c *Calculator) RuneWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// DisplayWidth returns the number of cells s occupies.
func (c *Calculator) DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		n += c.RuneWidth(r)
	}
	return n
}

// Pad appends spaces to s until it is target cells wide.
// s is returned unchanged when it is already at least that wide.
func (c *Calculator) Pad(s string, target int) string {
	padding := target - c.DisplayWidth(s)
	if padding <= 0 {
		return s
	}
	return s + strings.Repeat(" ", padding)
}
