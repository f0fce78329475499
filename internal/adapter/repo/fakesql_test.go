package repo

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeSQL answers queries with canned rows keyed by the sqlinline constant.
type fakeSQL struct {
	rows     map[string][][]any
	errs     map[string]error
	affected map[string]int64
	calls    []fakeCall
}

type fakeCall struct {
	query string
	args  []any
}

func newFakeSQL() *fakeSQL {
	return &fakeSQL{
		rows:     map[string][][]any{},
		errs:     map[string]error{},
		affected: map[string]int64{},
	}
}

func (f *fakeSQL) on(query string, rows ...[]any) *fakeSQL {
	f.rows[query] = rows
	return f
}

func (f *fakeSQL) argsFor(query string) []any {
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].query == query {
			return f.calls[i].args
		}
	}
	return nil
}

func (f *fakeSQL) Exec(_ context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, fakeCall{query: query, args: args})
	if err := f.errs[query]; err != nil {
		return pgconn.CommandTag{}, err
	}
	return pgconn.NewCommandTag(fmt.Sprintf("DELETE %d", f.affected[query])), nil
}

func (f *fakeSQL) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	f.calls = append(f.calls, fakeCall{query: query, args: args})
	if err := f.errs[query]; err != nil {
		return fakeRow{err: err}
	}
	rows := f.rows[query]
	if len(rows) == 0 {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{values: rows[0]}
}

func (f *fakeSQL) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	f.calls = append(f.calls, fakeCall{query: query, args: args})
	if err := f.errs[query]; err != nil {
		return nil, err
	}
	return &fakeRows{rows: f.rows[query]}, nil
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(r.values, dest)
}

type fakeRows struct {
	rows [][]any
	idx  int
}

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.idx == 0 || r.idx > len(r.rows) {
		return pgx.ErrNoRows
	}
	return assign(r.rows[r.idx-1], dest)
}

func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) Close()                                       {}
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Values() ([]any, error) {
	return nil, fmt.Errorf("values not supported in test rows")
}

// assign copies values into scan destinations; nil leaves the zero value.
func assign(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: have %d values, want %d", len(values), len(dest))
	}
	for i, v := range values {
		target := reflect.ValueOf(dest[i]).Elem()
		if v == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		src := reflect.ValueOf(v)
		if !src.Type().AssignableTo(target.Type()) {
			return fmt.Errorf("scan column %d: cannot assign %T to %s", i, v, target.Type())
		}
		target.Set(src)
	}
	return nil
}
