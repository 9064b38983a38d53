// Package evidence captures diagnostic snapshots after failed runs and
// prunes old snapshots to a keep-count.
//
// A bundle is a directory named from the run timestamp (colons replaced,
// they are invalid in path segments) holding details.json plus one text
// file per diagnostic command. Bundles are created once, never modified,
// and eventually deleted by Prune.
package evidence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sysbrain/vigil/pkg/cmdrun"
)

// Diagnostic is one command whose output is captured into its own file.
type Diagnostic struct {
	File string // file name inside the bundle
	Cmd  string // shell command, `|| true`-guarded
}

// Diagnostics returns the fixed capture set. It deliberately over-captures
// relative to the four contract checks so a human can diagnose from the
// bundle alone without re-running anything live.
func Diagnostics(unit, depBin, pythonBin, sourceDir string) []Diagnostic {
	return []Diagnostic{
		{"systemctl_status.txt", fmt.Sprintf("systemctl status %s --no-pager -l || true", unit)},
		{"journal_tail.txt", fmt.Sprintf("journalctl -u %s -n 200 --no-pager || true", unit)},
		{"sockets.txt", "ss -ltnp || true"},
		{"ip_addr.txt", "ip a || true"},
		{"nmcli_devices.txt", "nmcli device status || true"},
		{"dep_list.txt", fmt.Sprintf("%s list || true", depBin)},
		{"compile_check.txt", fmt.Sprintf("%s -m py_compile %s/*.py || true", pythonBin, sourceDir)},
	}
}

// Store owns one evidence root directory.
type Store struct {
	Root        string
	Runner      cmdrun.Runner
	Diagnostics []Diagnostic
	Timeout     time.Duration // per diagnostic command
}

// BundleName derives a path-safe directory name from a run timestamp.
// Colon substitution preserves lexicographic (== time) ordering.
func BundleName(ts string) string {
	return strings.ReplaceAll(ts, ":", "-")
}

// Capture creates the bundle for a failed run. The details payload (the
// triggering event plus all check details) is written first, then every
// diagnostic runs and gets its file. Diagnostic command failures are
// captured into their files like any other output; only an unwritable
// filesystem aborts the snapshot.
func (s *Store) Capture(ts string, details any) (string, error) {
	dir := filepath.Join(s.Root, BundleName(ts))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create evidence bundle: %w", err)
	}

	raw, err := json.MarshalIndent(details, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode evidence details: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "details.json"), raw, 0o644); err != nil {
		return "", fmt.Errorf("write evidence details: %w", err)
	}

	for _, d := range s.Diagnostics {
		r := s.Runner.Run(d.Cmd, s.Timeout)
		// Best effort per file: one failed write must not lose the rest.
		_ = os.WriteFile(filepath.Join(dir, d.File), []byte(formatResult(r)), 0o644)
	}
	return dir, nil
}

func formatResult(r cmdrun.Result) string {
	return fmt.Sprintf("CMD: %s\nOK: %t\nRC: %d\n\nSTDOUT:\n%s\n\nSTDERR:\n%s\n",
		r.Cmd, r.OK, r.ExitCode, r.Stdout, r.Stderr)
}
