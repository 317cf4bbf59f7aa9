package migration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type tableMigration struct {
	table string
}

func (m *tableMigration) Up(db *gorm.DB) error {
	return db.Exec("CREATE TABLE " + m.table + " (id INTEGER PRIMARY KEY)").Error
}

func (m *tableMigration) Down(db *gorm.DB) error {
	return db.Exec("DROP TABLE " + m.table).Error
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "migrate_test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db
}

// withRegistry swaps in an isolated registry for the duration of the test.
func withRegistry(t *testing.T, names ...string) {
	t.Helper()

	saved := registry
	registry = nil
	for _, name := range names {
		Register(name, &tableMigration{table: "t_" + name})
	}
	t.Cleanup(func() { registry = saved })
}

func hasTable(db *gorm.DB, name string) bool {
	return db.Migrator().HasTable(name)
}

func TestRunnerRunAndRollback(t *testing.T) {
	withRegistry(t, "001_first", "002_second")
	db := testDB(t)
	r := New(db)

	require.NoError(t, r.Run())
	assert.True(t, hasTable(db, "t_001_first"))
	assert.True(t, hasTable(db, "t_002_second"))

	// Both ran in one batch, so one rollback undoes both.
	require.NoError(t, r.Rollback())
	assert.False(t, hasTable(db, "t_001_first"))
	assert.False(t, hasTable(db, "t_002_second"))
}

func TestRunnerRunIsIdempotent(t *testing.T) {
	withRegistry(t, "001_first")
	db := testDB(t)
	r := New(db)

	require.NoError(t, r.Run())
	require.NoError(t, r.Run())

	var count int64
	require.NoError(t, db.Model(&migrationRecord{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRunnerBatchesRollBackIndependently(t *testing.T) {
	withRegistry(t, "001_first")
	db := testDB(t)
	r := New(db)

	require.NoError(t, r.Run())

	// A later registration lands in its own batch.
	Register("002_second", &tableMigration{table: "t_002_second"})
	require.NoError(t, r.Run())

	require.NoError(t, r.Rollback())
	assert.True(t, hasTable(db, "t_001_first"))
	assert.False(t, hasTable(db, "t_002_second"))

	require.NoError(t, r.Rollback())
	assert.False(t, hasTable(db, "t_001_first"))
}

func TestRunnerPending(t *testing.T) {
	withRegistry(t, "002_second", "001_first")
	db := testDB(t)
	r := New(db)
	require.NoError(t, r.EnsureTable())

	pending, err := r.Pending()
	require.NoError(t, err)
	require.Len(t, pending, 2)

	// Lexical order, regardless of registration order.
	assert.Equal(t, "001_first", pending[0].name)
	assert.Equal(t, "002_second", pending[1].name)

	require.NoError(t, r.Run())
	pending, err = r.Pending()
	require.NoError(t, err)
	assert.Empty(t, pending)
}
