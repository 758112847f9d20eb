// Package render produces the paginated paper PDF: title page, running
// header and footer, numbered sections, keyword line and reference block.
package render

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"

	"gi-scribe/models"
	"gi-scribe/services"
)

const (
	pageMargin     = 25.0
	headerMaxTitle = 55
)

// PDFRenderer renders a finished draft into an A4 paper layout.
type PDFRenderer struct {
	logger *zap.Logger
}

func NewPDFRenderer(logger *zap.Logger) *PDFRenderer {
	return &PDFRenderer{logger: logger}
}

// Render builds the PDF and returns its bytes.
func (r *PDFRenderer) Render(draft *models.PaperDraft) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)

	shortTitle := draft.Title
	if len(shortTitle) > headerMaxTitle {
		shortTitle = shortTitle[:headerMaxTitle] + "..."
	}
	generated := time.Now().Format("January 2, 2006")

	// Header and footer run on every page except the title page.
	pdf.SetHeaderFuncMode(func() {
		if pdf.PageNo() == 1 {
			return
		}
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(0, 10, shortTitle, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 1, "R", false, 0, "")
		x, y := pdf.GetX(), pdf.GetY()
		pageW, _ := pdf.GetPageSize()
		pdf.Line(pageMargin, y, pageW-pageMargin, y)
		pdf.SetXY(x, y+5)
		pdf.SetTextColor(0, 0, 0)
	}, true)
	pdf.SetFooterFunc(func() {
		if pdf.PageNo() == 1 {
			return
		}
		pdf.SetY(-20)
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pageW, _ := pdf.GetPageSize()
		pdf.Line(pageMargin, pdf.GetY(), pageW-pageMargin, pdf.GetY())
		pdf.Ln(2)
		pdf.CellFormat(0, 10, "Generated on "+generated, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 1, "R", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	r.titlePage(pdf, draft, generated)
	r.body(pdf, draft)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	r.logger.Info("rendered paper",
		zap.String("title", draft.Title),
		zap.Int("pages", pdf.PageCount()),
		zap.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}

func (r *PDFRenderer) titlePage(pdf *fpdf.Fpdf, draft *models.PaperDraft, generated string) {
	pdf.AddPage()
	pdf.Ln(60)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 12, draft.Title, "", "C", false)
	pdf.Ln(10)
	if draft.Author != "" {
		pdf.SetFont("Helvetica", "", 14)
		pdf.CellFormat(0, 10, "Author: "+draft.Author, "", 1, "C", false, 0, "")
		pdf.Ln(5)
	}
	if draft.Institution != "" {
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(0, 10, draft.Institution, "", 1, "C", false, 0, "")
		pdf.Ln(5)
	}
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 10, "Generated on "+generated, "", 1, "C", false, 0, "")
}

func (r *PDFRenderer) body(pdf *fpdf.Fpdf, draft *models.PaperDraft) {
	pdf.AddPage()
	for i, name := range models.SectionNames() {
		sec, ok := draft.Generated[name]
		if !ok {
			continue
		}
		pdf.SetFont("Helvetica", "B", 16)
		pdf.CellFormat(0, 12, fmt.Sprintf("%d. %s", i+1, humanizeSection(name)), "", 1, "L", false, 0, "")
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 12)
		pdf.MultiCell(0, 7, sec.Text, "", "J", false)
		pdf.Ln(6)

		if name == models.SectionAbstract && len(draft.Keywords) > 0 {
			pdf.SetFont("Helvetica", "I", 11)
			pdf.MultiCell(0, 7, "Keywords: "+services.BuildKeywordLine(draft.Keywords), "", "L", false)
			pdf.Ln(6)
		}
	}

	if len(draft.References) > 0 {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.CellFormat(0, 12, "References", "", 1, "L", false, 0, "")
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 11)
		for i, ref := range draft.References {
			pdf.MultiCell(0, 6, services.FormatReference(i+1, ref), "", "L", false)
			pdf.Ln(2)
		}
	}
}

func humanizeSection(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
