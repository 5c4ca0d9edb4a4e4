// Package confstore provides durable access to the smb.conf text artifact:
// read, single-generation backup, append, and full-file replace.
//
// The store knows nothing about sections or shares; it moves opaque text.
// Callers that mutate the file are obliged to call Backup immediately
// before Append or Replace. The store does not enforce this ordering.
package confstore

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/uglygus/sambactl/internal/logger"
	"github.com/uglygus/sambactl/internal/privexec"
)

// ErrNotFound reports that the config file does not exist.
var ErrNotFound = errors.New("config file not found")

// Store reads and mutates one config file with a fixed single-slot backup
// location. Both paths are injected so tests can point it at temp files.
type Store struct {
	path       string
	backupPath string
	exec       privexec.Executor
}

// New builds a Store for the config file at path, backing up to backupPath.
func New(path, backupPath string, exec privexec.Executor) *Store {
	return &Store{path: path, backupPath: backupPath, exec: exec}
}

// Path returns the config file path.
func (s *Store) Path() string { return s.path }

// BackupPath returns the backup slot path.
func (s *Store) BackupPath() string { return s.backupPath }

// Read returns the full config text, or ErrNotFound when the file is
// absent.
func (s *Store) Read(ctx context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, s.path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	return string(data), nil
}

// Backup copies the current config over the backup slot, replacing any
// prior backup. A missing config file is a warning, not an error: there is
// nothing to protect yet.
func (s *Store) Backup(ctx context.Context) error {
	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		logger.Warn("config file does not exist, skipping backup", "path", s.path)
		return nil
	}

	logger.Info("backing up config", "path", s.path, "backup", s.backupPath)
	if err := s.exec.Copy(ctx, s.path, s.backupPath); err != nil {
		return fmt.Errorf("failed to back up %s: %w", s.path, err)
	}
	return nil
}

// Append adds block to the end of the config file, creating it if needed.
func (s *Store) Append(ctx context.Context, block string) error {
	return s.exec.AppendText(ctx, s.path, block)
}

// Replace overwrites the config file with text. With the direct executor
// the swap is atomic (temp file plus rename in the same directory), so a
// crash mid-write leaves either the old or the new content intact.
func (s *Store) Replace(ctx context.Context, text string) error {
	return s.exec.ReplaceFile(ctx, s.path, text)
}
