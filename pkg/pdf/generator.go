package pdf

import (
	"bytes"
	"context"

	"github.com/labstack/gommon/log"
	xe "github.com/opst/aptsales/pkg/errors"
)

const (
	CombinedFilename = "combined_pages.pdf"
	ErrorFilename    = "error.pdf"
)

// Source renders a page to HTML.
type Source func(ctx context.Context) ([]byte, error)

// Logger is a subset of echo.Logger.
type Logger interface {
	Warnf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// Document is a generated PDF.
type Document struct {
	PDF []byte

	// name of file to be downloaded
	Filename string

	// 1-origin numbers of pages replaced with error pages
	Failed []int
}

// Generator prints pages and merges them into a document.
type Generator struct {
	printer Printer
	sem     chan struct{}
	logger  Logger
}

type GeneratorOption func(*Generator) *Generator

func WithLogger(l Logger) GeneratorOption {
	return func(g *Generator) *Generator {
		g.logger = l
		return g
	}
}

// NewGenerator returns a Generator using printer.
//
// Up to concurrency documents are generated at once. Others wait their turn.
func NewGenerator(printer Printer, concurrency int, options ...GeneratorOption) *Generator {
	if concurrency < 1 {
		concurrency = 1
	}
	g := &Generator{
		printer: printer,
		sem:     make(chan struct{}, concurrency),
		logger:  log.New("pdf"),
	}
	for _, o := range options {
		g = o(g)
	}
	return g
}

// Generate renders, prints and merges pages in order.
//
// A page failing to render or to print is replaced with an error page, and
// generation goes on. When no pages are printed, the document is a single
// page telling that.
//
// Errors are returned only when ctx is done or merging fails.
func (g *Generator) Generate(ctx context.Context, sources []Source) (Document, error) {
	select {
	case g.sem <- struct{}{}:
	case <-ctx.Done():
		return Document{}, ctx.Err()
	}
	defer func() { <-g.sem }()

	pdfs := make([][]byte, 0, len(sources))
	failed := []int{}
	for i, src := range sources {
		n := i + 1
		if err := ctx.Err(); err != nil {
			return Document{}, err
		}

		p, err := g.page(ctx, src)
		if err == nil {
			pdfs = append(pdfs, p)
			continue
		}

		g.logger.Warnf("Error rendering page %d: %s", n, err)
		failed = append(failed, n)
		ep, eperr := ErrorPage(n, err)
		if eperr != nil {
			g.logger.Warnf("error page for page %d is not available: %s", n, eperr)
			continue
		}
		pdfs = append(pdfs, ep)
	}

	if len(pdfs) == 0 {
		p, err := NoPages()
		if err != nil {
			return Document{}, xe.Wrap(err)
		}
		return Document{PDF: p, Filename: ErrorFilename, Failed: failed}, nil
	}

	buf := new(bytes.Buffer)
	if err := Merge(buf, pdfs); err != nil {
		return Document{}, xe.WrapWithNote("merging pages", err)
	}
	return Document{PDF: buf.Bytes(), Filename: CombinedFilename, Failed: failed}, nil
}

func (g *Generator) page(ctx context.Context, src Source) ([]byte, error) {
	html, err := src(ctx)
	if err != nil {
		return nil, err
	}
	p, err := g.printer.Print(ctx, PrintDocument(html))
	if err != nil {
		return nil, err
	}
	g.logger.Debugf("page printed: %d bytes", len(p))
	return p, nil
}

// Close releases the printer.
func (g *Generator) Close() error {
	return g.printer.Close()
}
