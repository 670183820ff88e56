//go:build sqlite_vtable
// +build sqlite_vtable

package sqlite

import (
	"github.com/amirasaad/cryptomath/pkg/currency"
	"github.com/mattn/go-sqlite3"
)

// registerMetadata installs crypto_types and crypto_denoms as eponymous
// virtual tables, so both `crypto_types` and `crypto_types()` resolve.
func registerMetadata(conn *sqlite3.SQLiteConn, reg *currency.Registry) error {
	types, denoms := metadataRows(reg)
	if err := conn.CreateModule(typesTable, &metaModule{decl: typesDecl, rows: types}); err != nil {
		return err
	}
	return conn.CreateModule(denomsTable, &metaModule{decl: denomsDecl, rows: denoms})
}

type metaModule struct {
	decl string
	rows [][]any
}

func (m *metaModule) EponymousOnlyModule() {}

func (m *metaModule) Create(c *sqlite3.SQLiteConn, args []string) (sqlite3.VTab, error) {
	return m.Connect(c, args)
}

func (m *metaModule) Connect(c *sqlite3.SQLiteConn, _ []string) (sqlite3.VTab, error) {
	if err := c.DeclareVTab("CREATE TABLE x(" + m.decl + ")"); err != nil {
		return nil, err
	}
	return &metaTable{rows: m.rows}, nil
}

func (m *metaModule) DestroyModule() {}

type metaTable struct {
	rows [][]any
}

func (t *metaTable) BestIndex(cst []sqlite3.InfoConstraint, _ []sqlite3.InfoOrderBy) (*sqlite3.IndexResult, error) {
	return &sqlite3.IndexResult{
		Used:          make([]bool, len(cst)),
		EstimatedCost: float64(len(t.rows)),
	}, nil
}

func (t *metaTable) Disconnect() error { return nil }
func (t *metaTable) Destroy() error    { return nil }

func (t *metaTable) Open() (sqlite3.VTabCursor, error) {
	return &metaCursor{rows: t.rows}, nil
}

type metaCursor struct {
	rows [][]any
	pos  int
}

func (c *metaCursor) Filter(int, string, []any) error {
	c.pos = 0
	return nil
}

func (c *metaCursor) Next() error {
	c.pos++
	return nil
}

func (c *metaCursor) EOF() bool { return c.pos >= len(c.rows) }

func (c *metaCursor) Column(ctx *sqlite3.SQLiteContext, col int) error {
	switch v := c.rows[c.pos][col].(type) {
	case string:
		ctx.ResultText(v)
	case int64:
		ctx.ResultInt64(v)
	default:
		ctx.ResultNull()
	}
	return nil
}

func (c *metaCursor) Rowid() (int64, error) { return int64(c.pos + 1), nil }

func (c *metaCursor) Close() error { return nil }
