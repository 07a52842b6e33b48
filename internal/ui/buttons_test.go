package ui

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func plainButtons(labels ...string) []button {
	style := lipgloss.NewStyle()
	buttons := make([]button, 0, len(labels))
	for _, l := range labels {
		buttons = append(buttons, makeButton(l, style, true))
	}
	return buttons
}

func TestWrapButtonsSingleRow(t *testing.T) {
	out := wrapButtons(plainButtons("a", "b", "c"), 40)
	if strings.Contains(out, "\n") {
		t.Fatalf("expected single row, got %q", out)
	}
}

func TestWrapButtonsBreaksRows(t *testing.T) {
	// Each chip is " name " = 6 wide, plus gaps. Width 14 fits two.
	out := wrapButtons(plainButtons("aaaa", "bbbb", "cccc"), 14)
	rows := strings.Split(out, "\n")
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d: %q", len(rows), out)
	}
	if !strings.Contains(rows[0], "aaaa") || !strings.Contains(rows[0], "bbbb") {
		t.Fatalf("unexpected first row %q", rows[0])
	}
	if !strings.Contains(rows[1], "cccc") {
		t.Fatalf("unexpected second row %q", rows[1])
	}
}

func TestWrapButtonsOverwideButtonKept(t *testing.T) {
	out := wrapButtons(plainButtons("averyverylongname"), 5)
	if !strings.Contains(out, "averyverylongname") {
		t.Fatalf("overwide button must not be dropped: %q", out)
	}
}

func TestWrapButtonsEmpty(t *testing.T) {
	if out := wrapButtons(nil, 40); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}
