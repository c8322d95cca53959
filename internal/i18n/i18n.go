// Package i18n provides the localized user-facing strings for the viewer,
// export status messages, and fallback slide content.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	AppTitle         = "app.title"
	AppSubtitle      = "app.subtitle"
	WelcomeHeading   = "welcome.heading"
	WelcomeBody      = "welcome.body"
	WelcomeStart     = "welcome.start"
	NavPrev          = "nav.prev"
	NavNext          = "nav.next"
	NavGenerating    = "nav.generating"
	ExportButton     = "export.button"
	ExportExporting  = "export.exporting"
	ExportNoSlides   = "export.no_slides"
	ExportPreparing  = "export.preparing"
	ExportSucceeded  = "export.succeeded"
	ExportFailed     = "export.failed"
	ExportDownload   = "export.download"
	GenerationFailed = "generation.failed"
	LoadingTopic     = "loading.topic"
	ErrorHeading     = "error.heading"
	RetryButton      = "error.retry"
	ReadyPlaceholder = "slide.ready"
	SlideCounter     = "slide.counter"
	Footer           = "export.footer"

	MissingKeyTitle = "fallback.missing_key.title"
	MissingKeyLine1 = "fallback.missing_key.line1"
	MissingKeyLine2 = "fallback.missing_key.line2"
	FailureTitle    = "fallback.failure.title"
	FailureLine1    = "fallback.failure.line1"
	FailureLine2    = "fallback.failure.line2"
)

var supported = []language.Tag{language.Hebrew, language.English}

var matcher = language.NewMatcher(supported)

var cat = buildCatalog()

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.Hebrew))
	for tag, entries := range map[language.Tag]map[string]string{
		language.Hebrew:  hebrew,
		language.English: english,
	} {
		for key, msg := range entries {
			if err := b.SetString(tag, key, msg); err != nil {
				panic("i18n: " + key + ": " + err.Error())
			}
		}
	}
	return b
}

// Localizer renders message keys in one language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a localizer for locale, falling back to Hebrew for unknown or
// unsupported values.
func New(locale string) *Localizer {
	tag := language.Hebrew
	if parsed, err := language.Parse(strings.TrimSpace(locale)); err == nil {
		_, idx, confidence := matcher.Match(parsed)
		if confidence != language.No {
			tag = supported[idx]
		}
	}
	return &Localizer{tag: tag, printer: message.NewPrinter(tag, message.Catalog(cat))}
}

// T translates key, formatting args with the catalog's verbs.
func (l *Localizer) T(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

// Tag returns the resolved language.
func (l *Localizer) Tag() language.Tag { return l.tag }

// Lang returns the BCP 47 code for HTML lang attributes.
func (l *Localizer) Lang() string { return l.tag.String() }

// Dir returns the text direction for the language.
func (l *Localizer) Dir() string {
	if l.tag == language.Hebrew {
		return "rtl"
	}
	return "ltr"
}

// LanguageName returns the language's own name, for instructing the content
// provider which language to write in.
func (l *Localizer) LanguageName() string {
	return display.Self.Name(l.tag)
}
