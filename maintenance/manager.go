// Package maintenance runs the scheduled backup and vacuum job for the
// SQLite database, outside the request path.
package maintenance

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"inkwell/constants"
)

const (
	backupPrefix = "backup-"
	backupSuffix = ".sqlite"
)

// Manager owns the database file's maintenance lifecycle: timestamped
// backups pruned to the newest keep copies, and VACUUM when enough free
// pages have accumulated. Backups only copy the file; rows are never
// mutated here.
type Manager struct {
	db        *gorm.DB
	dbPath    string
	backupDir string
	keep      int
}

func New(db *gorm.DB, dbPath, backupDir string, keep int) *Manager {
	if keep <= 0 {
		keep = constants.BACKUPS_TO_KEEP
	}
	return &Manager{db: db, dbPath: dbPath, backupDir: backupDir, keep: keep}
}

// Run executes one backup/vacuum pass per interval until ctx is cancelled.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if file, err := m.Backup(); err != nil {
				log.Printf("Scheduled backup failed: %v", err)
			} else {
				log.Printf("Scheduled backup completed: %s", file)
			}
			needed, err := m.NeedsVacuum()
			if err != nil {
				log.Printf("Vacuum check failed: %v", err)
				continue
			}
			if needed {
				if err := m.Vacuum(); err != nil {
					log.Printf("Vacuum failed: %v", err)
				} else {
					log.Printf("Database vacuum completed")
				}
			}
		case <-ctx.Done():
			return
		}
	}
}

// Backup copies the database file into the backup directory and prunes old
// copies. It returns the path of the new backup.
func (m *Manager) Backup() (string, error) {
	if err := os.MkdirAll(m.backupDir, 0755); err != nil {
		return "", fmt.Errorf("creating backup directory: %w", err)
	}

	timestamp := time.Now().UTC().Format("2006-01-02T15-04-05.000")
	target := filepath.Join(m.backupDir, backupPrefix+timestamp+backupSuffix)

	if err := copyFile(m.dbPath, target); err != nil {
		return "", fmt.Errorf("copying database file: %w", err)
	}

	if err := m.pruneOldBackups(); err != nil {
		return "", fmt.Errorf("pruning old backups: %w", err)
	}
	return target, nil
}

// Vacuum rewrites the database file to reclaim free pages. Concurrent
// writers stall for its duration.
func (m *Manager) Vacuum() error {
	return m.db.Exec("VACUUM").Error
}

// NeedsVacuum reports whether enough free pages have accumulated to make a
// VACUUM worthwhile.
func (m *Manager) NeedsVacuum() (bool, error) {
	var freePages int64
	if err := m.db.Raw("PRAGMA freelist_count").Scan(&freePages).Error; err != nil {
		return false, err
	}
	return freePages > constants.VACUUM_FREELIST_THRESHOLD, nil
}

func (m *Manager) pruneOldBackups() error {
	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return err
	}

	type backup struct {
		path    string
		modTime time.Time
	}
	var backups []backup
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, backupPrefix) || !strings.HasSuffix(name, backupSuffix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return err
		}
		backups = append(backups, backup{
			path:    filepath.Join(m.backupDir, name),
			modTime: info.ModTime(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].modTime.After(backups[j].modTime)
	})

	for _, old := range backups[min(m.keep, len(backups)):] {
		if err := os.Remove(old.path); err != nil {
			return err
		}
		log.Printf("Deleted old backup: %s", filepath.Base(old.path))
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
