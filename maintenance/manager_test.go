package maintenance

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"inkwell/database"
)

func openTestDB(t *testing.T) (*gorm.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.sqlite")
	db, err := database.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db, path
}

func listBackups(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestBackupCreatesCopy(t *testing.T) {
	db, path := openTestDB(t)
	store := database.NewContactStore(db)
	_, err := store.Create(&database.Contact{Name: "n", Email: "e", Message: "m", CreatedAt: "2024-01-01"})
	require.NoError(t, err)

	backupDir := filepath.Join(t.TempDir(), "backups")
	m := New(db, path, backupDir, 5)

	file, err := m.Backup()
	require.NoError(t, err)
	assert.DirExists(t, backupDir)

	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
	assert.Regexp(t, `^backup-.*\.sqlite$`, filepath.Base(file))
}

func TestBackupRotationKeepsNewest(t *testing.T) {
	db, path := openTestDB(t)
	backupDir := t.TempDir()
	m := New(db, path, backupDir, 2)

	// Pre-seed stale backups with distinct mtimes.
	old := []string{"backup-2020-01-01T00-00-00.000.sqlite", "backup-2021-01-01T00-00-00.000.sqlite"}
	for i, name := range old {
		full := filepath.Join(backupDir, name)
		require.NoError(t, os.WriteFile(full, []byte("old"), 0644))
		stamp := time.Now().Add(-time.Duration(len(old)-i) * time.Hour)
		require.NoError(t, os.Chtimes(full, stamp, stamp))
	}
	// Unrelated files are never pruned.
	require.NoError(t, os.WriteFile(filepath.Join(backupDir, "notes.txt"), []byte("keep"), 0644))

	_, err := m.Backup()
	require.NoError(t, err)

	names := listBackups(t, backupDir)
	assert.Len(t, names, 3) // 2 backups + notes.txt
	assert.Contains(t, names, "notes.txt")
	assert.NotContains(t, names, old[0], "oldest backup is pruned first")
}

func TestVacuum(t *testing.T) {
	db, path := openTestDB(t)
	m := New(db, path, t.TempDir(), 1)

	require.NoError(t, m.Vacuum())

	needed, err := m.NeedsVacuum()
	require.NoError(t, err)
	assert.False(t, needed, "fresh database has no free pages")
}
