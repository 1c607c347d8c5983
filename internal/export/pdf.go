package export

import (
	"fmt"
	"io"
	"os"

	"github.com/go-pdf/fpdf"

	"github.com/abhisek/quizwoiz/internal/quizgen"
)

// A4 portrait in millimetres. Question blocks break to a new page near
// the bottom margin; the answer key always starts on its own page.
const (
	pdfMarginX    = 10.0
	pdfLineHeight = 7.0
	pdfTextWidth  = 180.0
	pdfBodyBreakY = 270.0
	pdfOptBreakY  = 280.0
)

// WritePDF renders the questions as a printable quiz followed by an
// answer key page.
func WritePDF(w io.Writer, title string, questions []quizgen.Question) error {
	doc := fpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.AddPage()
	doc.SetFont("Helvetica", "B", 20)
	doc.Text(pdfMarginX, 10, tr(title))

	doc.SetFont("Helvetica", "", 12)
	y := 30.0
	for i, q := range questions {
		if y > pdfBodyBreakY {
			doc.AddPage()
			y = 20
		}
		for _, line := range doc.SplitText(tr(fmt.Sprintf("%d. %s", i+1, q.Text)), pdfTextWidth) {
			doc.Text(pdfMarginX, y, line)
			y += pdfLineHeight
		}
		y += 5

		for oi, opt := range q.Options {
			if y > pdfOptBreakY {
				doc.AddPage()
				y = 20
			}
			doc.Text(pdfMarginX, y, tr(fmt.Sprintf("   %c. %s", 'A'+oi, opt)))
			y += pdfLineHeight
		}
		y += 5
	}

	doc.AddPage()
	doc.SetFont("Helvetica", "B", 12)
	doc.Text(pdfMarginX, 10, "Answer Key")
	doc.SetFont("Helvetica", "", 12)
	y = 20
	for i, q := range questions {
		if y > pdfOptBreakY {
			doc.AddPage()
			y = 20
		}
		doc.Text(pdfMarginX, y, tr(fmt.Sprintf("%d. %s", i+1, q.CorrectAnswer)))
		y += pdfLineHeight
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("rendering quiz PDF: %w", err)
	}
	return nil
}

// SavePDF writes the quiz PDF to the given path.
func SavePDF(path, title string, questions []quizgen.Question) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WritePDF(f, title, questions); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
