// Package logging writes diagnostics to a log file instead of the
// terminal, which the TUI owns while running. Stale fetch drops and
// adapter failures are traced here so navigation problems can be
// reconstructed after the fact.
package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const defaultLogFile = "lgm.log"

var (
	mu      sync.Mutex
	out     *os.File
	tracing bool
)

// Configure opens the log destination, creating parent directories when
// missing. An empty path falls back to lgm.log in the working directory.
// Tracing controls whether Trace entries are emitted at all.
func Configure(path string, trace bool) error {
	mu.Lock()
	defer mu.Unlock()

	if strings.TrimSpace(path) == "" {
		path = defaultLogFile
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	if out != nil {
		out.Close()
	}
	out = f
	tracing = trace
	return nil
}

// Close flushes and closes the log file. Safe to call when Configure
// never ran.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if out != nil {
		out.Close()
		out = nil
	}
}

// Error appends an error line to the log file. Nil errors and an
// unconfigured logger are both no-ops.
func Error(err error) {
	if err == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	if out == nil {
		return
	}
	fmt.Fprintf(out, "%s ERROR %v\n", time.Now().UTC().Format(time.RFC3339), err)
}

// Trace appends a structured JSON entry when tracing is enabled.
// Used for observable-but-not-erroneous events such as discarded
// stale fetch results.
func Trace(event string, payload interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if out == nil || !tracing {
		return
	}

	entry := struct {
		Time    time.Time   `json:"time"`
		Event   string      `json:"event"`
		Payload interface{} `json:"payload,omitempty"`
	}{
		Time:    time.Now().UTC(),
		Event:   event,
		Payload: payload,
	}
	enc := json.NewEncoder(out)
	if err := enc.Encode(entry); err != nil {
		fmt.Fprintf(os.Stderr, "trace encoding failed: %v\n", err)
	}
}
