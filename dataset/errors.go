package dataset

import (
	"fmt"
	"strings"
)

// ============================================================================
// ERRORS — Fatal load-time failures
// ============================================================================
// Both are fatal for the pass that triggered them: callers log the message
// and stop. Per-cell coercion failures are NOT errors — they become missing
// Float values (see ParseFloat).
// ============================================================================

// LoadError reports an unreadable or malformed source file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SchemaError reports required columns absent from the loaded header.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset is missing required columns: %s", strings.Join(e.Missing, ", "))
}
