package main

import (
	"strings"
	"testing"

	"lectern/internal/lesson"
	"lectern/internal/session"
	"lectern/internal/slides"
)

func TestRenderStatusLine(t *testing.T) {
	line := renderStatusLine("Export", statusOK, "deck.pptx", false)
	if line != "  Export:        [OK] deck.pptx" {
		t.Fatalf("unexpected line %q", line)
	}
	colored := renderStatusLine("Export", statusError, "", true)
	if !strings.HasPrefix(colored, ansiRed) || !strings.HasSuffix(colored, ansiReset) {
		t.Fatalf("expected red line, got %q", colored)
	}
}

func TestRenderSlideLine(t *testing.T) {
	topic := lesson.Topic{Topic: "Inheritance", Type: lesson.TypeConcept}
	snap := session.Snapshot{Position: 1, Total: 4, Topic: &topic}

	if got := renderSlideLine(snap, false); !strings.Contains(got, "[WARN] Inheritance: no content") {
		t.Fatalf("unexpected empty line %q", got)
	}

	snap.Error = "boom"
	if got := renderSlideLine(snap, false); !strings.Contains(got, "[ERROR] Inheritance: boom") {
		t.Fatalf("unexpected error line %q", got)
	}

	snap.Slide = &slides.Content{Title: "Inheritance basics"}
	got := renderSlideLine(snap, false)
	if !strings.Contains(got, "Slide 2/4:") || !strings.Contains(got, "[OK] Inheritance basics") {
		t.Fatalf("unexpected slide line %q", got)
	}
}
