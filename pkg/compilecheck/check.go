// Package compilecheck verifies that the observed system's companion
// Python source tree still compiles.
package compilecheck

import (
	"fmt"
	"os"
	"time"

	"github.com/sysbrain/vigil/pkg/check"
	"github.com/sysbrain/vigil/pkg/cmdrun"
)

// Name is the status key this check reports under.
const Name = "compile-check"

// DefaultTimeout bounds the compile attempt.
const DefaultTimeout = 30 * time.Second

// Check syntax-compiles every top-level source file in a directory.
type Check struct {
	SourceDir string        // directory of .py files
	PythonBin string        // interpreter, e.g., "/usr/bin/python3"
	Timeout   time.Duration // default: 30s
	Runner    cmdrun.Runner // injected for testing

	// Stat is injected for testing; defaults to os.Stat.
	Stat func(string) (os.FileInfo, error)
}

// Run checks that the directory exists, then runs py_compile over its
// top-level files. A missing directory fails without touching the
// interpreter.
func (c *Check) Run() check.Result {
	result := check.Result{Name: Name}
	result.SetDetail("source_dir", c.SourceDir)

	stat := c.Stat
	if stat == nil {
		stat = os.Stat
	}
	if _, err := stat(c.SourceDir); err != nil {
		result.SetDetail("error", "source directory missing")
		return result.Failf("source directory missing: %s", c.SourceDir)
	}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	cmd := fmt.Sprintf("%s -m py_compile %s/*.py", c.PythonBin, c.SourceDir)
	r := c.Runner.Run(cmd, timeout)
	result.SetDetail("py_compile", r)

	if !r.OK {
		return result.Failf("compile failed: %s", r.Stderr)
	}

	result.AddDetailf("%s compiles", c.SourceDir)
	return result.Pass()
}
