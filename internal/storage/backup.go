package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/pstuifzand/tui-treelist/internal/model"
)

const backupTimeFormat = "20060102_150405"

// BackupManager keeps timestamped copies of outlines before they are saved
type BackupManager struct {
	backupDir string
}

// NewBackupManager creates a backup manager writing to dir, or to the
// default backup directory when dir is empty
func NewBackupManager(dir string) (*BackupManager, error) {
	if dir == "" {
		dir = GetBackupDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}
	return &BackupManager{backupDir: dir}, nil
}

// CreateBackup writes a JSON backup of outline that remembers originalPath
func (bm *BackupManager) CreateBackup(outline *model.Outline, originalPath, sessionID string) (string, error) {
	absPath, err := filepath.Abs(originalPath)
	if err != nil {
		absPath = originalPath
	}
	rec := toRecord(outline)
	rec.OriginalFilename = absPath

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal backup JSON: %w", err)
	}

	name := fmt.Sprintf("%s_%s.json", time.Now().Format(backupTimeFormat), sessionID)
	path := filepath.Join(bm.backupDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write backup file: %w", err)
	}
	return path, nil
}

// GetBackupDir returns the default backup directory
func GetBackupDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".tui-treelist", "backups")
	}
	return filepath.Join(homeDir, ".local", "share", "tui-treelist", "backups")
}

// BackupMetadata holds parsed information about a backup file
type BackupMetadata struct {
	FilePath     string
	Timestamp    time.Time
	SessionID    string
	OriginalFile string
}

// FindBackupsForFile returns the backups of originalPath, oldest first
func (bm *BackupManager) FindBackupsForFile(originalPath string) ([]BackupMetadata, error) {
	entries, err := os.ReadDir(bm.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	searchPath := originalPath
	if abs, err := filepath.Abs(originalPath); err == nil {
		searchPath = filepath.Clean(abs)
	}

	var backups []BackupMetadata
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		meta, err := parseBackup(entry.Name(), filepath.Join(bm.backupDir, entry.Name()))
		if err != nil {
			continue
		}
		if filepath.Clean(meta.OriginalFile) != searchPath {
			continue
		}
		backups = append(backups, meta)
	}

	slices.SortFunc(backups, func(a, b BackupMetadata) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return backups, nil
}

// parseBackup reads YYYYMMDD_HHMMSS_<session>.json and the original
// filename stored inside it
func parseBackup(name, path string) (BackupMetadata, error) {
	base := strings.TrimSuffix(name, ".json")
	if len(base) < len(backupTimeFormat)+2 {
		return BackupMetadata{}, fmt.Errorf("filename too short")
	}
	ts, err := time.ParseInLocation(backupTimeFormat, base[:len(backupTimeFormat)], time.Local)
	if err != nil {
		return BackupMetadata{}, fmt.Errorf("invalid timestamp format: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return BackupMetadata{}, fmt.Errorf("failed to read backup: %w", err)
	}
	var rec outlineRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return BackupMetadata{}, fmt.Errorf("failed to parse backup: %w", err)
	}

	return BackupMetadata{
		FilePath:     path,
		Timestamp:    ts,
		SessionID:    base[len(backupTimeFormat)+1:],
		OriginalFile: rec.OriginalFilename,
	}, nil
}
