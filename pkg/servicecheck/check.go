// Package servicecheck verifies that a systemd unit reports active.
package servicecheck

import (
	"fmt"
	"time"

	"github.com/sysbrain/vigil/pkg/check"
	"github.com/sysbrain/vigil/pkg/cmdrun"
)

// Name is the status key this check reports under.
const Name = "service-active"

// DefaultTimeout bounds the systemctl query.
const DefaultTimeout = 10 * time.Second

// Check verifies that a systemd service unit is active.
type Check struct {
	Unit    string        // e.g., "ollama.service"
	Timeout time.Duration // default: 10s
	Runner  cmdrun.Runner // injected for testing
}

// Run queries systemctl. Passes only when the query itself succeeded and
// reported exactly "active"; "inactive", "failed" and query errors all fail.
func (c *Check) Run() check.Result {
	result := check.Result{Name: Name}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	r := c.Runner.Run(fmt.Sprintf("systemctl is-active %s", c.Unit), timeout)
	result.SetDetail("systemctl_is_active", r)

	if !r.OK {
		return result.Failf("unit %s is not active: %s", c.Unit, firstNonEmpty(r.Stdout, r.Stderr))
	}
	if r.Stdout != "active" {
		return result.Failf("unit %s reported %q, want \"active\"", c.Unit, r.Stdout)
	}

	result.AddDetailf("unit %s is active", c.Unit)
	return result.Pass()
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
