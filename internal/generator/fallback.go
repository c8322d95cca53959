package generator

import (
	"lectern/internal/i18n"
	"lectern/internal/slides"
)

// MissingKeyContent is shown when no upstream credential is configured.
func MissingKeyContent(l *i18n.Localizer) slides.Content {
	return slides.Content{
		Title:   l.T(i18n.MissingKeyTitle),
		Content: []string{l.T(i18n.MissingKeyLine1), l.T(i18n.MissingKeyLine2)},
	}
}

// FailureContent is shown when the upstream call or response parsing fails.
func FailureContent(l *i18n.Localizer) slides.Content {
	return slides.Content{
		Title:   l.T(i18n.FailureTitle),
		Content: []string{l.T(i18n.FailureLine1), l.T(i18n.FailureLine2)},
	}
}
