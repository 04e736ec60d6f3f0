package scanner

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/jackc/pgx/v4"
)

type Queryer interface {
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
}

// Scanner reads pgx.Rows into values of T.
//
// # example
//
//	type apartmentRow struct {
//		Id       int64  `sql:"id"`
//		Building string `sql:"building"`
//	}
//
//	rows, err := scanner.New[apartmentRow]().QueryAll(
//		ctx, conn, `select "id", "building" from "apartment"`,
//	)
//
// # mapping rule
//
// T is a struct or a single column type (primitives, time.Time or []byte).
//
// For struct, each column is mapped into
//
//  1. the field tagged with `sql:"column_name"`,
//  2. or, the field named as same as the column,
//  3. or, the field named in CamelCase of the column ("meter_price" -> "MeterPrice").
//
// A column without any field is an error.
type Scanner[T any] interface {
	// scan all rows and close them.
	ScanAll(pgx.Rows) ([]T, error)

	// send query and scan all rows in its response.
	QueryAll(context.Context, Queryer, string, ...interface{}) ([]T, error)

	// send query and scan the first row.
	//
	// When no rows are returned, this returns pgx.ErrNoRows.
	QueryOne(context.Context, Queryer, string, ...interface{}) (T, error)
}

type fieldScanner[T any] struct {
	byTag  map[string]int
	byName map[string]int
}

type columnScanner[T any] struct{}

func New[T any]() Scanner[T] {
	t := reflect.TypeOf(*new(T))
	if isSingleColumn(t) {
		return columnScanner[T]{}
	}

	s := fieldScanner[T]{byTag: map[string]int{}, byName: map[string]int{}}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		s.byName[f.Name] = i
		if tag, ok := f.Tag.Lookup("sql"); ok {
			s.byTag[tag] = i
		}
	}
	return s
}

func isSingleColumn(t reflect.Type) bool {
	if t == nil {
		return true
	}
	if t.Kind() == reflect.Pointer {
		return isSingleColumn(t.Elem())
	}
	if t.Kind() == reflect.Struct {
		return t.ConvertibleTo(reflect.TypeOf(time.Time{}))
	}
	return true
}

func camel(col string) string {
	b := &strings.Builder{}
	for _, s := range strings.Split(col, "_") {
		if s == "" {
			b.WriteString("_")
			continue
		}
		b.WriteString(strings.ToUpper(s[:1]))
		b.WriteString(s[1:])
	}
	return b.String()
}

func (s fieldScanner[T]) fieldIndex(col string) (int, bool) {
	if i, ok := s.byTag[col]; ok {
		return i, true
	}
	if i, ok := s.byName[col]; ok {
		return i, true
	}
	if i, ok := s.byName[camel(col)]; ok {
		return i, true
	}
	return 0, false
}

func (s fieldScanner[T]) ScanAll(rows pgx.Rows) ([]T, error) {
	defer rows.Close()

	cols := rows.FieldDescriptions()
	index := make([]int, len(cols))
	for nth, fd := range cols {
		i, ok := s.fieldIndex(string(fd.Name))
		if !ok {
			return nil, fmt.Errorf(`field for column "%s" is not found in type "%T"`, fd.Name, *new(T))
		}
		index[nth] = i
	}

	ret := []T{}
	for rows.Next() {
		elem := new(T)
		rv := reflect.ValueOf(elem).Elem()
		dest := make([]any, len(index))
		for nth, i := range index {
			dest[nth] = rv.Field(i).Addr().Interface()
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		ret = append(ret, *elem)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ret, nil
}

func (s fieldScanner[T]) QueryAll(ctx context.Context, conn Queryer, q string, params ...interface{}) ([]T, error) {
	return queryAll[T](ctx, s, conn, q, params...)
}

func (s fieldScanner[T]) QueryOne(ctx context.Context, conn Queryer, q string, params ...interface{}) (T, error) {
	return queryOne[T](ctx, s, conn, q, params...)
}

func (columnScanner[T]) ScanAll(rows pgx.Rows) ([]T, error) {
	defer rows.Close()

	if cols := rows.FieldDescriptions(); len(cols) != 1 {
		return nil, fmt.Errorf(`%d columns are returned for single column type %T`, len(cols), *new(T))
	}

	ret := []T{}
	for rows.Next() {
		elem := new(T)
		if err := rows.Scan(elem); err != nil {
			return nil, err
		}
		ret = append(ret, *elem)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ret, nil
}

func (s columnScanner[T]) QueryAll(ctx context.Context, conn Queryer, q string, params ...interface{}) ([]T, error) {
	return queryAll[T](ctx, s, conn, q, params...)
}

func (s columnScanner[T]) QueryOne(ctx context.Context, conn Queryer, q string, params ...interface{}) (T, error) {
	return queryOne[T](ctx, s, conn, q, params...)
}

func queryAll[T any](ctx context.Context, s Scanner[T], conn Queryer, q string, params ...interface{}) ([]T, error) {
	rows, err := conn.Query(ctx, q, params...)
	if err != nil {
		return nil, err
	}
	return s.ScanAll(rows)
}

func queryOne[T any](ctx context.Context, s Scanner[T], conn Queryer, q string, params ...interface{}) (T, error) {
	all, err := queryAll(ctx, s, conn, q, params...)
	if err != nil {
		return *new(T), err
	}
	if len(all) == 0 {
		return *new(T), pgx.ErrNoRows
	}
	return all[0], nil
}
