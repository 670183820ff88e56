//go:build !sqlite_vtable
// +build !sqlite_vtable

package sqlite

import (
	"database/sql/driver"
	"strings"

	"github.com/amirasaad/cryptomath/pkg/currency"
	"github.com/mattn/go-sqlite3"
)

// registerMetadata fills TEMP tables crypto_types and crypto_denoms on conn.
// Virtual tables need the sqlite_vtable build tag; without it the tables are
// queried as `SELECT * FROM crypto_types`.
func registerMetadata(conn *sqlite3.SQLiteConn, reg *currency.Registry) error {
	types, denoms := metadataRows(reg)
	if err := fillTemp(conn, typesTable, typesDecl, types); err != nil {
		return err
	}
	return fillTemp(conn, denomsTable, denomsDecl, denoms)
}

func fillTemp(conn *sqlite3.SQLiteConn, table, decl string, rows [][]any) error {
	if _, err := conn.Exec("CREATE TEMP TABLE IF NOT EXISTS "+table+"("+decl+")", nil); err != nil {
		return err
	}
	if _, err := conn.Exec("DELETE FROM temp."+table, nil); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	placeholders := "(" + strings.TrimSuffix(strings.Repeat("?,", len(rows[0])), ",") + ")"
	insert := "INSERT INTO temp." + table + " VALUES " + placeholders
	for _, row := range rows {
		args := make([]driver.Value, len(row))
		for i, v := range row {
			args[i] = v
		}
		if _, err := conn.Exec(insert, args); err != nil {
			return err
		}
	}
	return nil
}
