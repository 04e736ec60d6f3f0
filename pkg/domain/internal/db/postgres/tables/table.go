// Package tables provides CRUD and listing queries shared by record stores.
package tables

import (
	"context"
	"fmt"
	"slices"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/opst/aptsales/pkg/conn/db/postgres/scanner"
	"github.com/opst/aptsales/pkg/domain"
	domerr "github.com/opst/aptsales/pkg/domain/errors"
	pgerr "github.com/opst/aptsales/pkg/domain/errors/dberrors/postgres"
	xe "github.com/opst/aptsales/pkg/errors"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Queryer is what tables needs to send queries.
type Queryer interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
}

// Table describes a table and how to read rows of it into R.
//
// R is a struct whose fields are tagged with `sql:"column"` for each of Columns.
type Table[R any] struct {
	Name string

	// primary key column
	Key string

	// columns to be selected
	Columns []string

	// Searchable columns are compared in text.
	domain.Listing
}

func quote(col string) string {
	return `"` + strings.ReplaceAll(col, `"`, `""`) + `"`
}

func (t Table[R]) quotedColumns() []string {
	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = quote(c)
	}
	return cols
}

func (t Table[R]) returning() string {
	return "returning " + strings.Join(t.quotedColumns(), ", ")
}

func (t Table[R]) identity(key any) string {
	return fmt.Sprintf("%s=%v", t.Key, key)
}

// Get reads the row having the key.
//
// When there are no such row, it returns an error wrapping domerr.ErrMissing.
func (t Table[R]) Get(ctx context.Context, conn Queryer, key any) (R, error) {
	return t.First(ctx, conn, sq.Eq{quote(t.Key): key}, t.identity(key))
}

// First reads the row matching where with the smallest key.
//
// identity is used in the error message when no rows are found.
func (t Table[R]) First(ctx context.Context, conn Queryer, where sq.Sqlizer, identity string) (R, error) {
	query, args, err := psql.Select(t.quotedColumns()...).
		From(quote(t.Name)).
		Where(where).
		OrderBy(quote(t.Key)).
		Limit(1).
		ToSql()
	if err != nil {
		return *new(R), xe.Wrap(err)
	}

	r, err := scanner.New[R]().QueryOne(ctx, conn, query, args...)
	if err != nil {
		return *new(R), xe.Wrap(pgerr.Translate(err, t.Name, identity))
	}
	return r, nil
}

// ErrUnsortable is returned when ListQuery.SortBy is not a sortable column.
var ErrUnsortable = fmt.Errorf("%w: column is not sortable", domerr.ErrInvalid)

// escapeLike escapes wildcards of LIKE pattern.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (t Table[R]) search(q domain.ListQuery) sq.Sqlizer {
	if q.Search == "" || len(t.Searchable) == 0 {
		return sq.Expr("true")
	}
	pattern := "%" + escapeLike(q.Search) + "%"
	or := sq.Or{}
	for _, col := range t.Searchable {
		or = append(or, sq.Expr(quote(col)+"::text ilike ?", pattern))
	}
	return or
}

func (t Table[R]) orderBy(q domain.ListQuery) ([]string, error) {
	orders := t.DefaultOrder
	if q.SortBy != "" {
		if !slices.Contains(t.Sortable, q.SortBy) {
			return nil, fmt.Errorf("%w: %s", ErrUnsortable, q.SortBy)
		}
		orders = []domain.Order{{Column: q.SortBy, Descending: q.Descending}}
	}

	clauses := make([]string, 0, len(orders)+1)
	for _, o := range orders {
		if o.Column == t.Key {
			continue
		}
		dir := "asc"
		if o.Descending {
			dir = "desc"
		}
		clauses = append(clauses, quote(o.Column)+" "+dir)
	}
	keyDir := "asc"
	if len(orders) != 0 && orders[0].Column == t.Key && orders[0].Descending {
		keyDir = "desc"
	}
	return append(clauses, quote(t.Key)+" "+keyDir), nil
}

// List reads a page of rows matching q.
func (t Table[R]) List(ctx context.Context, conn Queryer, q domain.ListQuery) (domain.Page[R], error) {
	q = q.Normalize()

	orders, err := t.orderBy(q)
	if err != nil {
		return domain.Page[R]{}, xe.Wrap(err)
	}
	where := t.search(q)

	countQuery, countArgs, err := psql.Select("count(*)").
		From(quote(t.Name)).
		Where(where).
		ToSql()
	if err != nil {
		return domain.Page[R]{}, xe.Wrap(err)
	}
	total, err := scanner.New[int64]().QueryOne(ctx, conn, countQuery, countArgs...)
	if err != nil {
		return domain.Page[R]{}, xe.Wrap(err)
	}

	query, args, err := psql.Select(t.quotedColumns()...).
		From(quote(t.Name)).
		Where(where).
		OrderBy(orders...).
		Limit(uint64(q.PageSize)).
		Offset(uint64(q.Offset())).
		ToSql()
	if err != nil {
		return domain.Page[R]{}, xe.Wrap(err)
	}
	items, err := scanner.New[R]().QueryAll(ctx, conn, query, args...)
	if err != nil {
		return domain.Page[R]{}, xe.Wrap(err)
	}

	return domain.Page[R]{
		Items:    items,
		Total:    int(total),
		Page:     q.Page,
		PageSize: q.PageSize,
	}, nil
}

// Insert adds a row and reads it back.
func (t Table[R]) Insert(ctx context.Context, conn Queryer, values map[string]any) (R, error) {
	cols := make([]string, 0, len(values))
	for c := range values {
		cols = append(cols, c)
	}
	slices.Sort(cols)

	vals := make([]any, len(cols))
	for i, c := range cols {
		vals[i] = values[c]
		cols[i] = quote(c)
	}

	query, args, err := psql.Insert(quote(t.Name)).
		Columns(cols...).
		Values(vals...).
		Suffix(t.returning()).
		ToSql()
	if err != nil {
		return *new(R), xe.Wrap(err)
	}

	r, err := scanner.New[R]().QueryOne(ctx, conn, query, args...)
	if err != nil {
		return *new(R), xe.Wrap(pgerr.Translate(err, t.Name, "new record"))
	}
	return r, nil
}

// Update overwrites columns of the row having the key, and reads it back.
func (t Table[R]) Update(ctx context.Context, conn Queryer, key any, values map[string]any) (R, error) {
	set := make(map[string]any, len(values))
	for c, v := range values {
		set[quote(c)] = v
	}

	query, args, err := psql.Update(quote(t.Name)).
		SetMap(set).
		Where(sq.Eq{quote(t.Key): key}).
		Suffix(t.returning()).
		ToSql()
	if err != nil {
		return *new(R), xe.Wrap(err)
	}

	r, err := scanner.New[R]().QueryOne(ctx, conn, query, args...)
	if err != nil {
		return *new(R), xe.Wrap(pgerr.Translate(err, t.Name, t.identity(key)))
	}
	return r, nil
}

// Delete removes the row having the key.
func (t Table[R]) Delete(ctx context.Context, conn Queryer, key any) error {
	query, args, err := psql.Delete(quote(t.Name)).
		Where(sq.Eq{quote(t.Key): key}).
		ToSql()
	if err != nil {
		return xe.Wrap(err)
	}

	tag, err := conn.Exec(ctx, query, args...)
	if err != nil {
		return xe.Wrap(pgerr.Translate(err, t.Name, t.identity(key)))
	}
	if tag.RowsAffected() == 0 {
		return xe.Wrap(pgerr.Missing{Table: t.Name, Identity: t.identity(key)})
	}
	return nil
}
