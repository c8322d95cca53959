package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	ppt "github.com/VantageDataChat/GoPPT"

	"lectern/internal/fileutil"
	"lectern/internal/i18n"
	"lectern/internal/slides"
)

// ErrNoSlides is returned when an export is requested before any slide exists.
var ErrNoSlides = errors.New("export requires at least one slide")

// Exporter turns an ordered list of slides into a presentation file.
type Exporter interface {
	Export(ctx context.Context, deck []slides.Content, title string) (Result, error)
}

// Result describes a written presentation.
type Result struct {
	Path     string `json:"path"`
	FileName string `json:"file_name"`
	Slides   int    `json:"slides"`
	Bytes    int64  `json:"bytes"`
}

const emuPerInch = 914400

func inches(v float64) int64 { return int64(v * emuPerInch) }

// Palette, ARGB.
const (
	colorBackground = "FF1A202C"
	colorTitle      = "FF38BDF8"
	colorBody       = "FFFFFFFF"
	colorFooter     = "FFCCCCCC"
	colorCodeFill   = "FFF5F5F5"
	colorCodeText   = "FF333333"
)

const (
	fontTitle      = 32
	fontColumn     = 16
	fontFullWidth  = 18
	fontCode       = 12
	fontFooter     = 10
	bulletMarker   = "● "
	defaultCreator = "AI Presentation Generator"

	faceText = "Arial"
	faceCode = "Courier New"
)

// PPTXExporter writes .pptx files with GoPPT.
type PPTXExporter struct {
	OutputDir string
	Author    string
	Localizer *i18n.Localizer
	Now       func() time.Time
}

// NewPPTXExporter returns an exporter writing into outputDir.
func NewPPTXExporter(outputDir, author string, localizer *i18n.Localizer) *PPTXExporter {
	return &PPTXExporter{OutputDir: outputDir, Author: author, Localizer: localizer}
}

// Export renders deck and writes it to OutputDir/FileName(title).
func (e *PPTXExporter) Export(ctx context.Context, deck []slides.Content, title string) (Result, error) {
	if len(deck) == 0 {
		return Result{}, ErrNoSlides
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	data, err := e.Render(deck, title)
	if err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create output dir: %w", err)
	}
	name := FileName(title)
	path := filepath.Join(e.OutputDir, name)
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return Result{}, fmt.Errorf("write presentation: %w", err)
	}
	return Result{Path: path, FileName: name, Slides: len(deck), Bytes: int64(len(data))}, nil
}

// Render builds the presentation in memory and returns the encoded bytes.
func (e *PPTXExporter) Render(deck []slides.Content, title string) ([]byte, error) {
	if len(deck) == 0 {
		return nil, ErrNoSlides
	}
	localizer := e.Localizer
	if localizer == nil {
		localizer = i18n.New("")
	}
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	author := strings.TrimSpace(e.Author)
	if author == "" {
		author = defaultCreator
	}

	p := ppt.New()
	p.GetDocumentProperties().Title = title
	p.GetDocumentProperties().Creator = author

	footer := localizer.T(i18n.Footer, strconv.Itoa(now().Year()), title)
	for i, content := range deck {
		slide := p.GetActiveSlide()
		if i > 0 {
			slide = p.CreateSlide()
		}
		renderSlide(slide, content, footer)
	}

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("create pptx writer: %w", err)
	}
	writer, ok := w.(*ppt.PPTXWriter)
	if !ok {
		return nil, fmt.Errorf("unexpected pptx writer type %T", w)
	}
	var buf bytes.Buffer
	if err := writer.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode pptx: %w", err)
	}
	return buf.Bytes(), nil
}

func renderSlide(slide *ppt.Slide, content slides.Content, footer string) {
	slide.SetBackground(solidFill(colorBackground))

	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(inches(0.5)).SetOffsetY(inches(0.25))
	titleShape.SetWidth(inches(9)).SetHeight(inches(1))
	run := titleShape.CreateTextRun(content.Title)
	run.GetFont().SetName(faceText).SetSize(fontTitle).SetBold(true).SetColor(ppt.NewColor(colorTitle))
	alignRight(titleShape.GetActiveParagraph())

	if content.HasCode() {
		code := slide.CreateRichTextShape()
		code.SetOffsetX(inches(0.5)).SetOffsetY(inches(1.5))
		code.SetWidth(inches(4.3)).SetHeight(inches(3.8))
		code.SetFill(solidFill(colorCodeFill))
		for i, line := range strings.Split(content.Code, "\n") {
			if i > 0 {
				code.CreateParagraph()
			}
			line = strings.TrimRight(line, "\r")
			if line == "" {
				line = " "
			}
			r := code.CreateTextRun(line)
			r.GetFont().SetName(faceCode).SetSize(fontCode).SetColor(ppt.NewColor(colorCodeText))
		}

		bullets := slide.CreateRichTextShape()
		bullets.SetOffsetX(inches(5)).SetOffsetY(inches(1.5))
		bullets.SetWidth(inches(4.5)).SetHeight(inches(3.8))
		writeBullets(bullets, content.Content, false)
	} else {
		bullets := slide.CreateRichTextShape()
		bullets.SetOffsetX(inches(0.5)).SetOffsetY(inches(1.5))
		bullets.SetWidth(inches(9)).SetHeight(inches(3.8))
		writeBullets(bullets, content.Content, true)
	}

	foot := slide.CreateRichTextShape()
	foot.SetOffsetX(inches(0.5)).SetOffsetY(inches(5.1))
	foot.SetWidth(inches(9)).SetHeight(inches(0.4))
	fr := foot.CreateTextRun(footer)
	fr.GetFont().SetName(faceText).SetSize(fontFooter).SetColor(ppt.NewColor(colorFooter))
	alignCenter(foot.GetActiveParagraph())
}

func writeBullets(shape *ppt.RichTextShape, items []string, fullWidth bool) {
	for i, item := range items {
		if i > 0 {
			shape.CreateParagraph()
		}
		r := shape.CreateTextRun(bulletMarker + item)
		if fullWidth {
			r.GetFont().SetName(faceText).SetSize(fontFullWidth).SetColor(ppt.NewColor(colorBody))
		} else {
			r.GetFont().SetName(faceText).SetSize(fontColumn).SetColor(ppt.NewColor(colorBody))
		}
		alignRight(shape.GetActiveParagraph())
	}
}

func solidFill(argb string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(argb))
}

func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

func alignRight(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalRight))
}
