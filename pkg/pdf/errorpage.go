package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// positions of lines on error pages, in points from the top of A4 sheets.
const (
	marginLeft  = 100
	errorLine1  = 342
	errorLine2  = 362
	noPagesLine = 92
)

func textPage(lines map[float64]string) ([]byte, error) {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetCompression(false)
	doc.AddPage()
	doc.SetFont("Helvetica", "", 12)
	tr := doc.UnicodeTranslatorFromDescriptor("")
	for y, text := range lines {
		doc.Text(marginLeft, y, tr(text))
	}

	buf := new(bytes.Buffer)
	if err := doc.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ErrorPage returns a single page PDF telling the page n (1-origin) could not be rendered.
func ErrorPage(n int, cause error) ([]byte, error) {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	return textPage(map[float64]string{
		errorLine1: fmt.Sprintf("Error rendering page %d", n),
		errorLine2: msg,
	})
}

// NoPages returns a single page PDF telling no pages were rendered.
func NoPages() ([]byte, error) {
	return textPage(map[float64]string{
		noPagesLine: "No pages were rendered successfully",
	})
}
