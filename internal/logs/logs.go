// Package logs provides logging and log file management for convosage.
package logs

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/nchapman/convosage/internal/config"
)

const (
	// MaxRotations is the number of rotated files to keep (.log.1, .log.2)
	MaxRotations = 2
	// MaxFileSize is the maximum size of a log file before rotation (10MB)
	MaxFileSize = 10 * 1024 * 1024
)

// ServerLogPath returns the log file path for the API server.
func ServerLogPath() string {
	return filepath.Join(config.LogsPath(), "server.log")
}

// rotateLogs rotates log files: .log -> .log.1 -> .log.2
// Keeps MaxRotations backup files plus the current active log.
func rotateLogs(basePath string) error {
	// Delete the oldest rotated file
	oldestPath := fmt.Sprintf("%s.%d", basePath, MaxRotations)
	os.Remove(oldestPath)

	// Rotate existing files
	for i := MaxRotations; i >= 1; i-- {
		oldPath := basePath
		if i > 1 {
			oldPath = fmt.Sprintf("%s.%d", basePath, i-1)
		}
		newPath := fmt.Sprintf("%s.%d", basePath, i)

		// Rename if the old file exists
		if _, err := os.Stat(oldPath); err == nil {
			if err := os.Rename(oldPath, newPath); err != nil {
				return err
			}
		}
	}

	return nil
}

// RotatingWriter wraps a file and automatically rotates when size limit is exceeded.
type RotatingWriter struct {
	mu           sync.Mutex
	basePath     string
	file         *os.File
	bytesWritten int64
}

// NewRotatingWriter creates a new rotating writer for the given base path.
// It rotates any existing log file and opens a fresh one.
func NewRotatingWriter(basePath string) (*RotatingWriter, error) {
	// Ensure the logs directory exists
	dir := filepath.Dir(basePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	// Rotate existing logs
	if err := rotateLogs(basePath); err != nil {
		return nil, err
	}

	// Open a fresh log file
	file, err := os.OpenFile(basePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, err
	}

	return &RotatingWriter{
		basePath: basePath,
		file:     file,
	}, nil
}

// Write writes data to the log file, rotating if necessary.
func (w *RotatingWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	// Check if we need to rotate before writing
	if w.bytesWritten+int64(len(p)) > MaxFileSize {
		if err := w.rotateUnlocked(); err != nil {
			return 0, err
		}
	}

	n, err = w.file.Write(p)
	w.bytesWritten += int64(n)
	return n, err
}

// Close closes the underlying file.
func (w *RotatingWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file != nil {
		return w.file.Close()
	}
	return nil
}

// rotateUnlocked performs rotation without holding the lock.
// Caller must hold w.mu.
func (w *RotatingWriter) rotateUnlocked() error {
	// Close current file
	if w.file != nil {
		w.file.Close()
	}

	// Rotate files
	if err := rotateLogs(w.basePath); err != nil {
		return err
	}

	// Open a fresh log file
	file, err := os.OpenFile(w.basePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	w.file = file
	w.bytesWritten = 0
	return nil
}

// Path returns the base path of the log file.
func (w *RotatingWriter) Path() string {
	return w.basePath
}
