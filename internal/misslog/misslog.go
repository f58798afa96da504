package misslog

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownBackend is returned by Open for an unrecognized backend name.
var ErrUnknownBackend = errors.New("unknown miss log backend")

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Entry is the literal triplet of names from a failed query.
type Entry [3]string

// String renders the entry as one log line without the newline.
func (e Entry) String() string {
	return strings.Join(e[:], ", ")
}

// Log records failed queries, in append order.
type Log interface {
	// Record appends one miss.
	Record(ctx context.Context, e Entry) error
	// List returns every recorded miss as text, one per line, oldest first.
	// It returns "" when nothing has been recorded.
	List(ctx context.Context) (string, error)
	// Clear removes every recorded miss.
	Clear(ctx context.Context) error
	// Close releases the backend.
	Close() error
}

// Open returns the backend named by kind, storing at path.
func Open(kind, path string) (Log, error) {
	switch kind {
	case "", BackendFile:
		return NewFileLog(path), nil
	case BackendSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, kind)
	}
}
