package misslog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"
)

// FileLog appends misses to a text file, one line each.
type FileLog struct {
	path string
	mu   sync.Mutex
}

// NewFileLog returns a FileLog at path. The file is created on first Record.
func NewFileLog(path string) *FileLog {
	return &FileLog{path: path}
}

// Path returns the backing file path.
func (l *FileLog) Path() string {
	return l.path
}

func (l *FileLog) Record(_ context.Context, e Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open miss log: %w", err)
	}

	if _, err := f.WriteString(e.String() + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("append miss: %w", err)
	}

	return f.Close()
}

func (l *FileLog) List(_ context.Context) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("read miss log: %w", err)
	}

	return strings.TrimRight(string(data), "\r\n"), nil
}

func (l *FileLog) Clear(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.WriteFile(l.path, nil, 0o644); err != nil {
		return fmt.Errorf("truncate miss log: %w", err)
	}

	return nil
}

func (l *FileLog) Close() error {
	return nil
}
