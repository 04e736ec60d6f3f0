package pages

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"time"

	"github.com/opst/aptsales/pkg/domain"
	xe "github.com/opst/aptsales/pkg/errors"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Number of document page, from 1 to 10.
type Number int

const (
	Page1 Number = iota + 1
	Page2
	Page3
	Page4
	Page5
	Page6
	Page7
	Page8
	Page9
	Page10
)

// All pages in the order of documents.
var All = []Number{Page1, Page2, Page3, Page4, Page5, Page6, Page7, Page8, Page9, Page10}

func (n Number) String() string {
	return "page" + strconv.Itoa(int(n))
}

func (n Number) template() string {
	return n.String() + ".html"
}

// Params are query parameters of pages.
//
// Each page uses some of them.
type Params struct {
	No       int
	AptId    int64
	ClientId int64
}

// Request is a page to be rendered, with its parameters.
type Request struct {
	Number Number
	Params Params
}

// DocumentOf lists pages of the document for the client.
func DocumentOf(client domain.Client, apt domain.Apartment) []Request {
	reqs := make([]Request, 0, len(All))
	for _, n := range All {
		var p Params
		switch n {
		case Page1:
			p = Params{No: client.No, AptId: apt.Id}
		case Page2:
			p = Params{ClientId: client.Id}
		case Page3, Page8, Page9, Page10:
			p = Params{AptId: apt.Id}
		}
		reqs = append(reqs, Request{Number: n, Params: p})
	}
	return reqs
}

var funcs = template.FuncMap{
	"date": func(v any) string {
		switch t := v.(type) {
		case time.Time:
			if t.IsZero() {
				return ""
			}
			return t.Format("2006-01-02")
		case *time.Time:
			if t == nil || t.IsZero() {
				return ""
			}
			return t.Format("2006-01-02")
		default:
			return fmt.Sprint(v)
		}
	},
	"num": func(f float64) string {
		return strconv.FormatFloat(f, 'f', -1, 64)
	},
	"money": func(f float64) string {
		return strconv.FormatFloat(f, 'f', 2, 64)
	},
	"mul": func(a, b float64) float64 {
		return a * b
	},
}

// Renderer renders page templates.
type Renderer struct {
	tpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tpl, err := template.New("pages").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tpl: tpl}, nil
}

// Render writes HTML of the page n with data.
func (r *Renderer) Render(w io.Writer, n Number, data any) error {
	t := r.tpl.Lookup(n.template())
	if t == nil {
		return fmt.Errorf("unknown page: %s", n)
	}
	return t.Execute(w, map[string]any{"data": data})
}

// Pages renders pages with records looked up from stores.
type Pages struct {
	Builder  *Builder
	Renderer *Renderer
}

// HTML looks up records for the page and renders it.
//
// When records are missing, it returns an error wrapping *NotFoundError.
func (p *Pages) HTML(ctx context.Context, n Number, params Params) ([]byte, error) {
	data, err := p.Builder.Data(ctx, n, params)
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	if err := p.Renderer.Render(buf, n, data); err != nil {
		return nil, xe.Wrap(err)
	}
	return buf.Bytes(), nil
}
