package formatter

import (
	"strings"
	"testing"
)

func TestStringifyScalars(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, "null"},
		{"plain", "plain"},
		{"two\nlines", "two\\nlines"},
		{true, "true"},
		{false, "false"},
		{42, "42"},
		{float64(3), "3"},
		{2.5, "2.5"},
	}
	for _, c := range cases {
		if got := Stringify(c.in); got != c.want {
			t.Fatalf("Stringify(%v): expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestStringifyMapIsSingleLine(t *testing.T) {
	got := Stringify(map[string]any{"steps": 100})
	if strings.Contains(got, "\n") {
		t.Fatalf("expected single line, got %q", got)
	}
	if !strings.Contains(got, "steps: 100") {
		t.Fatalf("expected yaml-ish content, got %q", got)
	}
}

func TestRenderPayloadStringVerbatim(t *testing.T) {
	in := "line one\r\nline two"
	if got := RenderPayload(in); got != "line one\nline two" {
		t.Fatalf("expected verbatim text with normalized newlines, got %q", got)
	}
}

func TestRenderPayloadMapAsYAML(t *testing.T) {
	got := RenderPayload(map[string]any{"method": "cg", "steps": 100})
	if !strings.Contains(got, "method: cg") || !strings.Contains(got, "steps: 100") {
		t.Fatalf("expected yaml rendering, got %q", got)
	}
	if strings.HasSuffix(got, "\n") {
		t.Fatalf("expected trailing newline trimmed, got %q", got)
	}
}

func TestRenderPayloadScalar(t *testing.T) {
	if got := RenderPayload(-12.5); got != "-12.5" {
		t.Fatalf("expected -12.5, got %q", got)
	}
	if got := RenderPayload(nil); got != "" {
		t.Fatalf("expected empty for nil, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("expected untouched, got %q", got)
	}
	if got := Truncate("abcdefghij", 8); got != "abcde..." {
		t.Fatalf("expected ellipsis cut, got %q", got)
	}
	if got := Truncate("abcdefghij", 2); got != "ab" {
		t.Fatalf("narrow cut should skip the ellipsis, got %q", got)
	}
	if got := Truncate("anything", 0); got != "anything" {
		t.Fatalf("zero width disables truncation, got %q", got)
	}
}
