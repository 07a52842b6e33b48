// Package formatter turns payload values into display text for the
// payload pane and for non-interactive snapshots.
package formatter

import (
	"fmt"
	"reflect"
	"strings"

	"charm.land/lipgloss/v2"
	"gopkg.in/yaml.v3"
)

// Stringify returns a compact single-line representation of a payload
// value, for button hints and tree leaves.
func Stringify(v any) string {
	if v == nil {
		return "null"
	}
	switch t := v.(type) {
	case string:
		return strings.ReplaceAll(strings.ReplaceAll(t, "\r\n", "\n"), "\n", "\\n")
	case bool:
		if t {
			return "true"
		}
		return "false"
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	case int, int8, int16, int32, int64, uint, uint64, float32:
		return fmt.Sprint(t)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		if b, err := yaml.Marshal(v); err == nil {
			return strings.ReplaceAll(strings.TrimRight(string(b), "\n"), "\n", " | ")
		}
	}
	return fmt.Sprintf("%v", v)
}

// RenderPayload turns a payload into the multi-line text shown in the
// payload pane. Strings come through verbatim; structured values render
// as YAML so nested keys stay readable.
func RenderPayload(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.ReplaceAll(s, "\r\n", "\n")
	}
	switch v.(type) {
	case bool, int, int8, int16, int32, int64, uint, uint64, float32, float64:
		return Stringify(v)
	}
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return strings.TrimRight(string(b), "\n")
}

// Truncate shortens a string to a display width, appending an ellipsis
// when it had to cut. Widths are measured with lipgloss so wide runes
// count correctly.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 || lipgloss.Width(s) <= maxWidth {
		return s
	}
	target := maxWidth
	ellipsis := ""
	if maxWidth > 3 {
		target = maxWidth - 3
		ellipsis = "..."
	}
	var b strings.Builder
	width := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if width+rw > target {
			break
		}
		b.WriteRune(r)
		width += rw
	}
	return b.String() + ellipsis
}
