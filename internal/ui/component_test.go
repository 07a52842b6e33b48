package ui

import (
	"strings"
	"testing"
)

func TestSetThemeByName(t *testing.T) {
	t.Cleanup(func() { SetTheme(darkTheme()) })

	if err := SetThemeByName("light"); err != nil {
		t.Fatalf("light theme: %v", err)
	}
	if CurrentTheme().GroupBG != lightTheme().GroupBG {
		t.Fatalf("expected light palette active")
	}
	if err := SetThemeByName("neon"); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}

func TestAvailableThemeNamesSorted(t *testing.T) {
	names := AvailableThemeNames()
	if len(names) < 2 {
		t.Fatalf("expected at least two presets, got %v", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}

func TestStatusViewShowsError(t *testing.T) {
	m := NewStatusModel()
	m.NoColor = true
	m.ErrMsg = "no such group"
	out := m.View()
	if !strings.Contains(out, "no such group") {
		t.Fatalf("expected error message, got %q", out)
	}
}

func TestStatusViewShowsPositionAndSelection(t *testing.T) {
	m := NewStatusModel()
	m.NoColor = true
	m.CursorIndex = 2
	m.TotalRows = 5
	m.Selected = "status"
	out := m.View()
	if !strings.Contains(out, "2/5") || !strings.Contains(out, "selected: status") {
		t.Fatalf("expected position and selection, got %q", out)
	}
}

func TestStatusViewPadsToWidth(t *testing.T) {
	m := NewStatusModel()
	m.NoColor = true
	m.SetWidth(40)
	out := m.View()
	if len(out) != 40 {
		t.Fatalf("expected width 40, got %d: %q", len(out), out)
	}
}

func TestFooterViewHasHints(t *testing.T) {
	m := NewFooterModel()
	m.NoColor = true
	out := m.View()
	for _, want := range []string{"open", "back/fwd", "help", "quit"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in footer: %q", want, out)
		}
	}
}

func TestHelpViewListsBindings(t *testing.T) {
	m := HelpModel{NoColor: true}
	out := m.View()
	for _, want := range []string{"Key bindings", "enter", "history", "quit"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in help:\n%s", want, out)
		}
	}
}
