package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// buttonGap is the spacing between buttons on a row.
const buttonGap = 1

// button is one rendered chip plus its display width. Width is computed
// from the unstyled label so ANSI sequences never skew the layout math.
type button struct {
	text  string
	width int
}

func makeButton(label string, style lipgloss.Style, noColor bool) button {
	chip := " " + label + " "
	w := runewidth.StringWidth(chip)
	if noColor {
		return button{text: chip, width: w}
	}
	return button{text: style.Render(chip), width: w}
}

// wrapButtons lays out buttons left to right, starting a new row whenever
// the next button would overflow maxWidth. A button wider than the row
// gets a row of its own rather than being dropped.
func wrapButtons(buttons []button, maxWidth int) string {
	if len(buttons) == 0 {
		return ""
	}
	if maxWidth <= 0 {
		maxWidth = 80
	}

	var rows []string
	var row strings.Builder
	rowWidth := 0
	for _, b := range buttons {
		needed := b.width
		if rowWidth > 0 {
			needed += buttonGap
		}
		if rowWidth > 0 && rowWidth+needed > maxWidth {
			rows = append(rows, row.String())
			row.Reset()
			rowWidth = 0
			needed = b.width
		}
		if rowWidth > 0 {
			row.WriteString(strings.Repeat(" ", buttonGap))
		}
		row.WriteString(b.text)
		rowWidth += needed
	}
	rows = append(rows, row.String())
	return strings.Join(rows, "\n")
}
