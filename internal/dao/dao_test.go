package dao

import (
	"context"
	"testing"

	"github.com/gookit/goutil/dump"
	"github.com/stretchr/testify/require"
)

// newTestDao opens a migrated in-memory sqlite database
// newTestDao 打开已迁移的内存 sqlite 数据库
func newTestDao(t *testing.T) *Dao {
	t.Helper()

	cfg := DatabaseConfig{Type: "sqlite", Path: ":memory:", MaxOpenConns: 1, AutoMigrate: true}
	db, err := NewDBEngine(cfg)
	require.NoError(t, err)

	d := New(db, context.Background(), WithConfig(&cfg))
	require.NoError(t, d.Migrate())

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return d
}

// dumpOnFailure prints v when the test failed
func dumpOnFailure(t *testing.T, v ...any) {
	t.Helper()
	t.Cleanup(func() {
		if t.Failed() {
			dump.P(v...)
		}
	})
}
