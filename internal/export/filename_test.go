package export_test

import (
	"testing"

	"lectern/internal/export"
)

func TestFileName(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"C# OOP Presentation", "C#_OOP_Presentation.pptx"},
		{"  spaced  out  ", "spaced__out.pptx"},
		{"תכנות מונחה עצמים", "תכנות_מונחה_עצמים.pptx"},
		{"a/b: c?", "a-b-_c.pptx"},
		{"", "presentation.pptx"},
		{"...", "presentation.pptx"},
	}
	for _, tt := range tests {
		if got := export.FileName(tt.title); got != tt.want {
			t.Errorf("FileName(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}
