package app

import (
	"fmt"

	"github.com/pstuifzand/tui-treelist/internal/storage"
)

// restoreLatestBackup replaces the outline with the newest backup of the
// file. Pressing it again steps to the backup before the one shown.
func (a *App) restoreLatestBackup() bool {
	if a.store.FilePath == "" {
		a.SetStatus("No file to find backups for")
		return false
	}
	if a.backups == nil {
		a.SetStatus("Backups are disabled")
		return false
	}

	backups, err := a.backups.FindBackupsForFile(a.store.FilePath)
	if err != nil || len(backups) == 0 {
		a.SetStatus("No backups found for this file")
		return false
	}

	// Backups are oldest first
	idx := len(backups) - 1
	for i, b := range backups {
		if b.FilePath == a.currentBackupPath {
			idx = i - 1
			break
		}
	}
	if idx < 0 {
		a.SetStatus("No older backups")
		return false
	}
	return a.loadBackupFile(backups[idx])
}

func (a *App) loadBackupFile(backup storage.BackupMetadata) bool {
	outline, err := storage.NewStore(backup.FilePath).Load()
	if err != nil {
		a.SetStatus(fmt.Sprintf("Failed to read backup: %v", err))
		return false
	}
	a.setOutline(outline)
	a.dirty = true
	a.currentBackupPath = backup.FilePath
	a.SetStatus(fmt.Sprintf("Backup: %s (%s)", backup.Timestamp.Format("2006-01-02 15:04:05"), backup.SessionID))
	return true
}
