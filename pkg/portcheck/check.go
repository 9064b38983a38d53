// Package portcheck verifies that a TCP port has a listening socket.
package portcheck

import (
	"fmt"
	"strings"
	"time"

	"github.com/sysbrain/vigil/pkg/check"
	"github.com/sysbrain/vigil/pkg/cmdrun"
)

// Name is the status key this check reports under.
const Name = "port-listening"

// DefaultTimeout bounds the socket enumeration.
const DefaultTimeout = 10 * time.Second

// Check verifies that something is listening on a TCP port.
type Check struct {
	Port    string        // e.g., "11434"
	Timeout time.Duration // default: 10s
	Runner  cmdrun.Runner // injected for testing
}

// Run enumerates listening sockets filtered for the port. The trailing
// `|| true` keeps grep's no-match exit from reading as an execution
// failure; the verdict is purely whether the port appears in the output.
func (c *Check) Run() check.Result {
	result := check.Result{Name: Name}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	cmd := fmt.Sprintf(`ss -ltnp | grep -E '(:|\.)%s\b' || true`, c.Port)
	r := c.Runner.Run(cmd, timeout)
	result.SetDetail("ss_filter", r)

	if !strings.Contains(r.Stdout, c.Port) {
		return result.Failf("no listening socket on port %s", c.Port)
	}

	result.AddDetailf("port %s is listening", c.Port)
	return result.Pass()
}
