package freqdist

import (
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer draws a horizontal bar chart on a tall page, words on the vertical axis.
type PDFRenderer struct{}

const (
	pdfMargin    = 15.0
	pdfLabelW    = 45.0
	pdfCountW    = 20.0
	pdfMaxRowH   = 9.0
	pdfTitleSize = 18
)

func (PDFRenderer) Render(w io.Writer, cfg Config, entries []Entry) error {
	// 12x18 inches, the figure size used during exploration
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: 304.8, Ht: 457.2},
	})
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	pdf.SetFont("Arial", "B", pdfTitleSize)
	pdf.CellFormat(pageW-2*pdfMargin, 12, cfg.Title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	top := pdf.GetY()
	rowH := pdfMaxRowH
	if len(entries) > 0 {
		if fit := (pageH - top - pdfMargin - 10) / float64(len(entries)); fit < rowH {
			rowH = fit
		}
	}
	barArea := pageW - 2*pdfMargin - pdfLabelW - pdfCountW
	highest := maxCount(entries)
	fill := paletteFor(cfg.Color).fill

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(fill.r, fill.g, fill.b)
	for i, e := range entries {
		y := top + float64(i)*rowH
		pdf.SetXY(pdfMargin, y)
		pdf.CellFormat(pdfLabelW-2, rowH, e.Word, "", 0, "R", false, 0, "")
		barW := 0.0
		if highest > 0 {
			barW = barArea * float64(e.Count) / float64(highest)
		}
		pdf.Rect(pdfMargin+pdfLabelW, y+rowH*0.1, barW, rowH*0.8, "F")
		pdf.SetXY(pdfMargin+pdfLabelW+barW+1, y)
		pdf.CellFormat(pdfCountW, rowH, strconv.Itoa(e.Count), "", 0, "L", false, 0, "")
	}

	// Axis labels
	axisY := top + float64(len(entries))*rowH + 2
	pdf.SetXY(pdfMargin, axisY)
	pdf.CellFormat(pdfLabelW-2, 8, "word", "", 0, "R", false, 0, "")
	pdf.SetXY(pdfMargin+pdfLabelW, axisY)
	pdf.CellFormat(barArea, 8, "count", "", 0, "C", false, 0, "")

	return pdf.Output(w)
}
