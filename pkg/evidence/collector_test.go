package evidence

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysbrain/vigil/pkg/cmdrun"
)

func TestBundleName(t *testing.T) {
	got := BundleName("2026-08-28T09:30:15.000007Z")
	assert.Equal(t, "2026-08-28T09-30-15.000007Z", got)
	assert.NotContains(t, got, ":")
}

func TestDiagnostics_FixedSet(t *testing.T) {
	diags := Diagnostics("ollama.service", "/usr/local/bin/ollama", "python3", "/home/u/brain")

	require.Len(t, diags, 7)
	for _, d := range diags {
		assert.True(t, strings.HasSuffix(d.Cmd, "|| true"), "diagnostic %s must absorb command failure", d.File)
	}
	assert.Equal(t, "systemctl_status.txt", diags[0].File)
	assert.Contains(t, diags[1].Cmd, "journalctl -u ollama.service")
	assert.Contains(t, diags[6].Cmd, "py_compile")
}

func TestCapture_WritesDetailsAndAllDiagnostics(t *testing.T) {
	root := filepath.Join(t.TempDir(), "evidence")
	runner := &cmdrun.MockRunner{
		RunFunc: func(command string, timeout time.Duration) cmdrun.Result {
			return cmdrun.Result{Cmd: command, OK: true, ExitCode: 0, Stdout: "out"}
		},
	}
	s := &Store{
		Root:        root,
		Runner:      runner,
		Diagnostics: Diagnostics("ollama.service", "ollama", "python3", "/tmp/brain"),
	}

	ts := "2026-08-28T09:30:15.000007Z"
	dir, err := s.Capture(ts, map[string]any{"overall_ok": false})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, BundleName(ts)), dir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 8) // details.json + 7 diagnostics

	raw, err := os.ReadFile(filepath.Join(dir, "details.json"))
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, false, payload["overall_ok"])
}

func TestCapture_DiagnosticFileFormat(t *testing.T) {
	runner := &cmdrun.MockRunner{
		RunFunc: func(command string, timeout time.Duration) cmdrun.Result {
			return cmdrun.Result{Cmd: command, OK: false, ExitCode: 4, Stdout: "partial", Stderr: "boom"}
		},
	}
	s := &Store{
		Root:        t.TempDir(),
		Runner:      runner,
		Diagnostics: []Diagnostic{{File: "one.txt", Cmd: "false || true"}},
	}

	dir, err := s.Capture("2026-08-28T00:00:00.000000Z", nil)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "one.txt"))
	require.NoError(t, err)
	text := string(content)
	assert.Contains(t, text, "CMD: false || true\n")
	assert.Contains(t, text, "OK: false\n")
	assert.Contains(t, text, "RC: 4\n")
	assert.Contains(t, text, "STDOUT:\npartial\n")
	assert.Contains(t, text, "STDERR:\nboom\n")
}

func TestCapture_FailedDiagnosticStillProducesItsFile(t *testing.T) {
	runner := &cmdrun.MockRunner{
		RunFunc: func(command string, timeout time.Duration) cmdrun.Result {
			if strings.Contains(command, "nmcli") {
				return cmdrun.Result{Cmd: command, OK: false, ExitCode: 1, Stderr: "sh: nmcli: not found"}
			}
			return cmdrun.Result{Cmd: command, OK: true}
		},
	}
	s := &Store{
		Root:        t.TempDir(),
		Runner:      runner,
		Diagnostics: Diagnostics("u.service", "dep", "py", "/src"),
	}

	dir, err := s.Capture("2026-08-28T00:00:00.000000Z", nil)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "nmcli_devices.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "sh: nmcli: not found")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 8, "one failing diagnostic must not lose the others")
}

func TestCapture_UnwritableRootFailsLoudly(t *testing.T) {
	// Occupy the root path with a regular file so MkdirAll fails.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "evidence")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	s := &Store{Root: blocker, Runner: &cmdrun.MockRunner{}}
	_, err := s.Capture("2026-08-28T00:00:00.000000Z", nil)
	require.Error(t, err)
}
