package server

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"net/url"

	"lectern/internal/i18n"
	"lectern/internal/session"
)

//go:embed templates/viewer.html
var templateFS embed.FS

type viewer struct {
	localizer *i18n.Localizer
	tmpl      *template.Template
}

type viewData struct {
	Lang    string
	Dir     string
	Refresh bool
	Snap    session.Snapshot
}

func newViewer(localizer *i18n.Localizer) *viewer {
	funcs := template.FuncMap{
		"t":          localizer.T,
		"inc":        func(i int) int { return i + 1 },
		"pathescape": url.PathEscape,
	}
	tmpl := template.Must(template.New("viewer.html").Funcs(funcs).ParseFS(templateFS, "templates/viewer.html"))
	return &viewer{localizer: localizer, tmpl: tmpl}
}

func (v *viewer) render(w io.Writer, snap session.Snapshot) error {
	data := viewData{
		Lang:    v.localizer.Lang(),
		Dir:     v.localizer.Dir(),
		Refresh: snap.Loading || snap.Exporting || !snap.Status.Empty(),
		Snap:    snap,
	}
	var buf bytes.Buffer
	if err := v.tmpl.Execute(&buf, data); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
