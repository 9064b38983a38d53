package eventlog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Log appends events to a JSONL file. The single writer assumption is the
// external scheduler's non-overlap guarantee; no locking here.
type Log struct {
	Path string
}

// Append writes one event as a single JSON line, creating parent
// directories as needed. The line is encoded fully before the single Write
// call, so a crash leaves prior lines intact. Errors here are storage
// failures and propagate.
func (l *Log) Append(ev Event) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(ev); err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(l.Path), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(l.Path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open event log: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}
