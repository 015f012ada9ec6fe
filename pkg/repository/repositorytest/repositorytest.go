// Package repositorytest provides an in-memory database/sql driver for
// testing repositories without PostgreSQL. Each statement is answered by a
// Handler supplied by the test; transactions are recorded but not isolated.
package repositorytest

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"
)

// Transaction markers recorded in Calls.
const (
	Begin    = "BEGIN"
	Commit   = "COMMIT"
	Rollback = "ROLLBACK"
)

// Result is the canned answer to one statement. Err is returned as is, so
// a *pgconn.PgError reaches the repository unchanged. A query with no Rows
// makes QueryRow report sql.ErrNoRows.
type Result struct {
	Columns      []string
	Rows         [][]driver.Value
	RowsAffected int64
	Err          error
}

// Call is one statement received by the fake database.
type Call struct {
	Query string
	Args  []any
}

// Handler answers a statement. Args hold driver values: uuid.UUID arrives
// as its string form.
type Handler func(query string, args []any) Result

// DB is a *sql.DB backed by a Handler.
type DB struct {
	*sql.DB

	handler Handler

	mu    sync.Mutex
	calls []Call
}

// New opens a fake database answered by h and closes it when the test ends.
func New(t testing.TB, h Handler) *DB {
	t.Helper()

	db := &DB{handler: h}
	db.DB = sql.OpenDB(connector{db: db})
	t.Cleanup(func() { db.DB.Close() })
	return db
}

// Calls returns the statements received so far, transaction markers included.
func (db *DB) Calls() []Call {
	db.mu.Lock()
	defer db.mu.Unlock()
	return append([]Call(nil), db.calls...)
}

func (db *DB) answer(query string, named []driver.NamedValue) Result {
	args := make([]any, len(named))
	for i, nv := range named {
		args[i] = nv.Value
	}

	db.mu.Lock()
	db.calls = append(db.calls, Call{Query: query, Args: args})
	db.mu.Unlock()

	if db.handler == nil {
		return Result{}
	}
	return db.handler(query, args)
}

func (db *DB) mark(marker string) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.calls = append(db.calls, Call{Query: marker})
}

type connector struct {
	db *DB
}

func (c connector) Connect(context.Context) (driver.Conn, error) {
	return &conn{db: c.db}, nil
}

func (c connector) Driver() driver.Driver {
	return fakeDriver{}
}

type fakeDriver struct{}

func (fakeDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("repositorytest: open with sql.OpenDB")
}

type conn struct {
	db *DB
}

func (c *conn) Prepare(query string) (driver.Stmt, error) {
	return nil, fmt.Errorf("repositorytest: prepared statements are not supported: %s", query)
}

func (c *conn) Close() error {
	return nil
}

func (c *conn) Begin() (driver.Tx, error) {
	return c.BeginTx(context.Background(), driver.TxOptions{})
}

func (c *conn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	c.db.mark(Begin)
	return tx{db: c.db}, nil
}

func (c *conn) ExecContext(_ context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	res := c.db.answer(query, args)
	if res.Err != nil {
		return nil, res.Err
	}
	return driver.RowsAffected(res.RowsAffected), nil
}

func (c *conn) QueryContext(_ context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	res := c.db.answer(query, args)
	if res.Err != nil {
		return nil, res.Err
	}

	columns := res.Columns
	if len(columns) == 0 && len(res.Rows) > 0 {
		columns = make([]string, len(res.Rows[0]))
		for i := range columns {
			columns[i] = fmt.Sprintf("column%d", i+1)
		}
	}
	return &rows{columns: columns, data: res.Rows}, nil
}

type tx struct {
	db *DB
}

func (t tx) Commit() error {
	t.db.mark(Commit)
	return nil
}

func (t tx) Rollback() error {
	t.db.mark(Rollback)
	return nil
}

type rows struct {
	columns []string
	data    [][]driver.Value
	next    int
}

func (r *rows) Columns() []string {
	return r.columns
}

func (r *rows) Close() error {
	return nil
}

func (r *rows) Next(dest []driver.Value) error {
	if r.next >= len(r.data) {
		return io.EOF
	}
	copy(dest, r.data[r.next])
	r.next++
	return nil
}
