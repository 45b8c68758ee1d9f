// Package dbtest opens migrated in-memory SQLite databases for repository tests.
package dbtest

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"wealth_backend/internal/platform/db"
	"wealth_backend/internal/platform/db/migrations"
)

var seq atomic.Int64

// Open returns a gorm handle on a fresh in-memory SQLite database with the
// production schema applied. The database is closed when the test ends.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	// 名前付きの共有メモリDBにしてテストごとに分離する
	dsn := fmt.Sprintf("file:dbtest_%d?mode=memory&cache=shared&_foreign_keys=on", seq.Add(1))
	gdb, err := db.NewOpener(db.DriverSQLite)(dsn)
	require.NoError(t, err, "failed to open test database")

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	_, err = migrations.Up(context.Background(), sqlDB, db.DriverSQLite)
	require.NoError(t, err, "failed to migrate test database")

	return gdb
}
