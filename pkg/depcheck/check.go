// Package depcheck verifies that the dependency binary responds to its
// list subcommand.
package depcheck

import (
	"fmt"
	"time"

	"github.com/sysbrain/vigil/pkg/check"
	"github.com/sysbrain/vigil/pkg/cmdrun"
)

// Name is the status key this check reports under.
const Name = "dependency-list"

// DefaultTimeout bounds the list call; model runtimes can be slow to
// answer while loading.
const DefaultTimeout = 20 * time.Second

// Check verifies that the dependency binary can enumerate its models.
type Check struct {
	Bin     string        // path to the binary, e.g., "/usr/local/bin/ollama"
	Timeout time.Duration // default: 20s
	Runner  cmdrun.Runner // injected for testing
}

// Run calls `<bin> list`. Passes only when the call succeeded and produced
// non-empty output; a clean exit with nothing listed still fails.
func (c *Check) Run() check.Result {
	result := check.Result{Name: Name}
	result.SetDetail("bin", c.Bin)

	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	r := c.Runner.Run(fmt.Sprintf("%s list", c.Bin), timeout)
	result.SetDetail("list", r)

	if !r.OK {
		return result.Failf("%s list failed: %s", c.Bin, r.Stderr)
	}
	if r.Stdout == "" {
		return result.Failf("%s list produced no output", c.Bin)
	}

	result.AddDetailf("%s list responded", c.Bin)
	return result.Pass()
}
