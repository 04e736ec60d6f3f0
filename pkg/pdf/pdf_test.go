package pdf_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/opst/aptsales/pkg/pdf"
	"github.com/opst/aptsales/pkg/utils/try"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func onePage(t *testing.T, text string) []byte {
	t.Helper()
	doc := fpdf.New("P", "pt", "A4", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "", 12)
	doc.Text(100, 100, text)
	buf := new(bytes.Buffer)
	if err := doc.Output(buf); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func pageCount(t *testing.T, p []byte) int {
	t.Helper()
	return try.To(api.PageCount(bytes.NewReader(p), model.NewDefaultConfiguration())).OrFatal(t)
}

type fakePrinter struct {
	mu      sync.Mutex
	printed []string
	impl    func(ctx context.Context, html string) ([]byte, error)
	closed  bool
}

func (f *fakePrinter) Print(ctx context.Context, html string) ([]byte, error) {
	f.mu.Lock()
	f.printed = append(f.printed, html)
	f.mu.Unlock()
	return f.impl(ctx, html)
}

func (f *fakePrinter) Close() error {
	f.closed = true
	return nil
}

type nopLogger struct{}

func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Debugf(string, ...interface{}) {}

func TestPrintDocument(t *testing.T) {
	got := pdf.PrintDocument([]byte("<p>hello</p>"))
	for _, want := range []string{
		"@page { size: A4; margin: 0; }",
		"body { width: 210mm; height: 297mm; margin: 0; padding: 0; }",
		"<body>\n<p>hello</p>\n</body>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("%q is missing in\n%s", want, got)
		}
	}
}

func TestErrorPage(t *testing.T) {
	p := try.To(pdf.ErrorPage(3, errors.New("template is broken"))).OrFatal(t)

	if n := pageCount(t, p); n != 1 {
		t.Errorf("pages: got %d, want 1", n)
	}
	for _, want := range []string{"Error rendering page 3", "template is broken"} {
		if !bytes.Contains(p, []byte(want)) {
			t.Errorf("%q is not written", want)
		}
	}
}

func TestNoPages(t *testing.T) {
	p := try.To(pdf.NoPages()).OrFatal(t)
	if n := pageCount(t, p); n != 1 {
		t.Errorf("pages: got %d, want 1", n)
	}
	if !bytes.Contains(p, []byte("No pages were rendered successfully")) {
		t.Error("message is not written")
	}
}

func TestMerge(t *testing.T) {
	buf := new(bytes.Buffer)
	if err := pdf.Merge(buf, [][]byte{onePage(t, "a"), onePage(t, "b"), onePage(t, "c")}); err != nil {
		t.Fatal(err)
	}
	if n := pageCount(t, buf.Bytes()); n != 3 {
		t.Errorf("pages: got %d, want 3", n)
	}
}

func TestGenerator_Generate(t *testing.T) {
	html := func(s string) pdf.Source {
		return func(context.Context) ([]byte, error) { return []byte(s), nil }
	}
	broken := func(context.Context) ([]byte, error) { return nil, errors.New("broken template") }
	printed := onePage(t, "page")
	unexpected := func(ctx context.Context, h string) ([]byte, error) {
		return nil, errors.New("should not be printed")
	}

	type when struct {
		sources []pdf.Source
		print   func(ctx context.Context, html string) ([]byte, error)
	}
	type then struct {
		filename string
		pages    int
		printed  []string
		failed   []int
	}

	for name, testcase := range map[string]struct {
		when
		then
	}{
		"all pages are printed": {
			when: when{
				sources: []pdf.Source{html("<p>1</p>"), html("<p>2</p>"), html("<p>3</p>")},
				print: func(ctx context.Context, h string) ([]byte, error) {
					return printed, nil
				},
			},
			then: then{
				filename: pdf.CombinedFilename, pages: 3,
				printed: []string{"<p>1</p>", "<p>2</p>", "<p>3</p>"}, failed: []int{},
			},
		},
		"rendering errors are replaced with error pages": {
			when: when{
				sources: []pdf.Source{html("<p>1</p>"), broken, html("<p>3</p>")},
				print: func(ctx context.Context, h string) ([]byte, error) {
					return printed, nil
				},
			},
			then: then{
				filename: pdf.CombinedFilename, pages: 3,
				printed: []string{"<p>1</p>", "<p>3</p>"}, failed: []int{2},
			},
		},
		"printing errors are replaced with error pages": {
			when: when{
				sources: []pdf.Source{html("<p>1</p>"), html("<p>2</p>")},
				print: func(ctx context.Context, h string) ([]byte, error) {
					if strings.Contains(h, "<p>1</p>") {
						return nil, errors.New("browser crashed")
					}
					return printed, nil
				},
			},
			then: then{
				filename: pdf.CombinedFilename, pages: 2,
				printed: []string{"<p>1</p>", "<p>2</p>"}, failed: []int{1},
			},
		},
		"all pages fail": {
			when: when{
				sources: []pdf.Source{broken, broken},
				print: unexpected,
			},
			then: then{
				filename: pdf.CombinedFilename, pages: 2, printed: []string{}, failed: []int{1, 2},
			},
		},
		"no pages": {
			when: when{
				sources: []pdf.Source{},
				print: unexpected,
			},
			then: then{filename: pdf.ErrorFilename, pages: 1, printed: []string{}, failed: []int{}},
		},
	} {
		t.Run(name, func(t *testing.T) {
			printer := &fakePrinter{impl: testcase.when.print}
			testee := pdf.NewGenerator(printer, 1, pdf.WithLogger(nopLogger{}))

			got := try.To(testee.Generate(context.Background(), testcase.when.sources)).OrFatal(t)

			if got.Filename != testcase.then.filename {
				t.Errorf("filename: got %q, want %q", got.Filename, testcase.then.filename)
			}
			if n := pageCount(t, got.PDF); n != testcase.then.pages {
				t.Errorf("pages: got %d, want %d", n, testcase.then.pages)
			}
			if len(got.Failed) != len(testcase.then.failed) {
				t.Errorf("failed: got %v, want %v", got.Failed, testcase.then.failed)
			} else {
				for i := range got.Failed {
					if got.Failed[i] != testcase.then.failed[i] {
						t.Errorf("failed: got %v, want %v", got.Failed, testcase.then.failed)
						break
					}
				}
			}

			if len(printer.printed) != len(testcase.then.printed) {
				t.Fatalf("printed: got %d documents, want %d", len(printer.printed), len(testcase.then.printed))
			}
			for i, want := range testcase.then.printed {
				doc := printer.printed[i]
				if !strings.Contains(doc, want) || !strings.Contains(doc, "@page") {
					t.Errorf("#%d: unexpected document:\n%s", i, doc)
				}
			}
		})
	}

	t.Run("it stops when the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		printer := &fakePrinter{impl: func(context.Context, string) ([]byte, error) {
			cancel()
			return onePage(t, "page"), nil
		}}
		testee := pdf.NewGenerator(printer, 1, pdf.WithLogger(nopLogger{}))

		_, err := testee.Generate(ctx, []pdf.Source{html("1"), html("2")})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error: got %v, want context.Canceled", err)
		}
		if len(printer.printed) != 1 {
			t.Errorf("printed: got %d, want 1", len(printer.printed))
		}
	})

	t.Run("generations over concurrency wait", func(t *testing.T) {
		entered := make(chan struct{})
		release := make(chan struct{})
		printer := &fakePrinter{impl: func(context.Context, string) ([]byte, error) {
			entered <- struct{}{}
			<-release
			return onePage(t, "page"), nil
		}}
		testee := pdf.NewGenerator(printer, 1, pdf.WithLogger(nopLogger{}))

		done := make(chan error, 1)
		go func() {
			_, err := testee.Generate(context.Background(), []pdf.Source{html("1")})
			done <- err
		}()
		<-entered

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		if _, err := testee.Generate(ctx, []pdf.Source{html("2")}); !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("second generation: got %v, want DeadlineExceeded", err)
		}

		close(release)
		if err := <-done; err != nil {
			t.Fatal(err)
		}
	})

	t.Run("Close closes the printer", func(t *testing.T) {
		printer := &fakePrinter{}
		testee := pdf.NewGenerator(printer, 1)
		if err := testee.Close(); err != nil {
			t.Fatal(err)
		}
		if !printer.closed {
			t.Error("printer is not closed")
		}
	})
}
