package store

import (
	"context"
	"reflect"
	"strconv"

	"atlas/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeRow copies vals into Scan destinations positionally. A nil value
// leaves the destination at its zero value.
type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.vals) {
		panic("fakeRow.Scan: unexpected dest count")
	}
	for i, v := range r.vals {
		if v == nil {
			continue
		}
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(v))
	}
	return nil
}

type fakeRows struct {
	rows    [][]any
	pos     int
	scanErr error
	err     error
	closed  bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	return fakeRow{vals: r.rows[r.pos-1]}.Scan(dest...)
}

type captured struct {
	sql  string
	args []any
}

func rowDB(row pgx.Row, c *captured) *database.FakeDB {
	return &database.FakeDB{QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
		if c != nil {
			c.sql, c.args = sql, args
		}
		return row
	}}
}

func rowsDB(rows pgx.Rows, err error, c *captured) *database.FakeDB {
	return &database.FakeDB{QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
		if c != nil {
			c.sql, c.args = sql, args
		}
		return rows, err
	}}
}

func execDB(affected int64, err error, calls *[]captured) *database.FakeDB {
	return &database.FakeDB{ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
		if calls != nil {
			*calls = append(*calls, captured{sql: sql, args: args})
		}
		if err != nil {
			return pgconn.CommandTag{}, err
		}
		return pgconn.NewCommandTag("UPDATE " + strconv.FormatInt(affected, 10)), nil
	}}
}
