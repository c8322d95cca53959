package i18n_test

import (
	"testing"

	"lectern/internal/i18n"
)

func TestHebrewIsDefault(t *testing.T) {
	for _, locale := range []string{"", "he", "zz-invalid-!"} {
		l := i18n.New(locale)
		if l.Lang() != "he" {
			t.Fatalf("locale %q: expected he, got %s", locale, l.Lang())
		}
		if l.Dir() != "rtl" {
			t.Fatalf("locale %q: expected rtl", locale)
		}
	}
}

func TestGenerationErrorMessage(t *testing.T) {
	if got := i18n.New("he").T(i18n.GenerationFailed); got != "שגיאה ביצירת השקופית. אנא נסה שוב." {
		t.Fatalf("unexpected hebrew message %q", got)
	}
	if got := i18n.New("en").T(i18n.GenerationFailed); got != "Error generating the slide. Please try again." {
		t.Fatalf("unexpected english message %q", got)
	}
}

func TestEnglishRegionMatches(t *testing.T) {
	l := i18n.New("en-GB")
	if l.Lang() != "en" || l.Dir() != "ltr" {
		t.Fatalf("expected en/ltr, got %s/%s", l.Lang(), l.Dir())
	}
}

func TestFormattedMessages(t *testing.T) {
	l := i18n.New("en")
	if got := l.T(i18n.Footer, "2026", "Intro"); got != "© 2026 Intro" {
		t.Fatalf("unexpected footer %q", got)
	}
	if got := i18n.New("he").T(i18n.Footer, "2026", "מבוא"); got != "© 2026 מבוא" {
		t.Fatalf("unexpected hebrew footer %q", got)
	}
	if got := l.T(i18n.SlideCounter, 2, 14); got != "Slide 2 of 14" {
		t.Fatalf("unexpected counter %q", got)
	}
}

func TestEveryKeyTranslated(t *testing.T) {
	keys := []string{
		i18n.AppTitle, i18n.WelcomeStart, i18n.NavPrev, i18n.NavNext, i18n.ExportButton,
		i18n.ExportNoSlides, i18n.ExportPreparing, i18n.ExportSucceeded, i18n.ExportFailed,
		i18n.MissingKeyTitle, i18n.MissingKeyLine1, i18n.MissingKeyLine2,
		i18n.FailureTitle, i18n.FailureLine1, i18n.FailureLine2,
	}
	for _, locale := range []string{"he", "en"} {
		l := i18n.New(locale)
		for _, key := range keys {
			if got := l.T(key); got == key || got == "" {
				t.Fatalf("%s: missing translation for %s", locale, key)
			}
		}
	}
}

func TestLanguageName(t *testing.T) {
	if got := i18n.New("he").LanguageName(); got != "עברית" {
		t.Fatalf("unexpected hebrew self name %q", got)
	}
	if got := i18n.New("en").LanguageName(); got != "English" {
		t.Fatalf("unexpected english self name %q", got)
	}
}
