package admin

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"strconv"
	"strings"

	apiadmin "github.com/opst/aptsales/pkg/api/types/admin"
	"github.com/opst/aptsales/pkg/domain"
	xe "github.com/opst/aptsales/pkg/errors"
)

//go:embed templates/*.html
var templatesFS embed.FS

type LoginPage struct {
	Title    string
	Username string

	// message shown when the last attempt is failed
	Error string
}

type IndexPage struct {
	Title  string
	Models []apiadmin.Model
}

type ListPage struct {
	Title  string
	Models []apiadmin.Model

	Model apiadmin.Model
	Query domain.ListQuery

	// cells of records, in the order of Model.Columns
	Rows  [][]string
	Total int
	Pages int

	// links to neighbour pages. empty if there are none.
	Prev string
	Next string
}

// Dashboard renders HTML pages of the admin dashboard.
type Dashboard struct {
	tpl *template.Template
}

func NewDashboard() (*Dashboard, error) {
	tpl, err := template.New("admin").
		Funcs(template.FuncMap{"join": strings.Join}).
		ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Dashboard{tpl: tpl}, nil
}

func (d *Dashboard) render(name string, data any) ([]byte, error) {
	t := d.tpl.Lookup(name)
	if t == nil {
		return nil, fmt.Errorf("unknown template: %s", name)
	}
	buf := new(bytes.Buffer)
	if err := t.Execute(buf, data); err != nil {
		return nil, xe.Wrap(err)
	}
	return buf.Bytes(), nil
}

func (d *Dashboard) Login(p LoginPage) ([]byte, error) {
	return d.render("login.html", p)
}

func (d *Dashboard) Index(p IndexPage) ([]byte, error) {
	return d.render("index.html", p)
}

func (d *Dashboard) List(p ListPage) ([]byte, error) {
	return d.render("list.html", p)
}

// IndexPageOf builds the index page listing views in r.
func IndexPageOf(r *Registry) IndexPage {
	return IndexPage{Title: Title, Models: metas(r)}
}

// ListPageOf builds the list page of the view with the result of the query.
func ListPageOf(r *Registry, v *View, q domain.ListQuery, page domain.Page[any]) (ListPage, error) {
	q = q.Normalize()
	rows := make([][]string, 0, len(page.Items))
	for _, item := range page.Items {
		cells, err := Cells(item, v.Columns)
		if err != nil {
			return ListPage{}, xe.Wrap(err)
		}
		rows = append(rows, cells)
	}

	lp := ListPage{
		Title:  Title,
		Models: metas(r),
		Model:  v.Meta(),
		Query:  q,
		Rows:   rows,
		Total:  page.Total,
		Pages:  page.Pages(),
	}
	if 1 < q.Page {
		lp.Prev = listURL(v.Identity, q, q.Page-1)
	}
	if q.Page < lp.Pages {
		lp.Next = listURL(v.Identity, q, q.Page+1)
	}
	return lp, nil
}

func metas(r *Registry) []apiadmin.Model {
	views := r.Views()
	ms := make([]apiadmin.Model, 0, len(views))
	for _, v := range views {
		ms = append(ms, v.Meta())
	}
	return ms
}

func listURL(identity string, q domain.ListQuery, page int) string {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.SortBy != "" {
		v.Set("sort", q.SortBy)
	}
	if q.Descending {
		v.Set("desc", "true")
	}
	v.Set("page", strconv.Itoa(page))
	v.Set("page_size", strconv.Itoa(q.PageSize))
	return "/admin/" + identity + "/?" + v.Encode()
}
