package output

import (
	"fmt"
	"sort"

	"github.com/jwalton/go-supportscolor"

	"github.com/sysbrain/vigil/pkg/check"
	"github.com/sysbrain/vigil/pkg/eventlog"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, reset = "", "", ""
	}
}

// PrintResult outputs a check result with colored status.
func PrintResult(r check.Result) {
	if r.OK() {
		fmt.Printf("%s[OK]%s %s\n", green, reset, r.Name)
	} else {
		fmt.Printf("%s[FAIL]%s %s\n", red, reset, r.Name)
	}
	for _, d := range r.Details {
		fmt.Printf("      %s\n", d)
	}
}

// PrintEvent outputs one event log line in human form.
func PrintEvent(ev eventlog.Event) {
	if ev.OverallOK {
		fmt.Printf("%s[OK]%s   %s\n", green, reset, ev.Timestamp)
		return
	}
	fmt.Printf("%s[FAIL]%s %s  failed: %s\n", red, reset, ev.Timestamp, failedChecks(ev))
}

func failedChecks(ev eventlog.Event) string {
	var failed []string
	for name, ok := range ev.Status {
		if !ok {
			failed = append(failed, name)
		}
	}
	sort.Strings(failed)
	out := ""
	for i, name := range failed {
		if i > 0 {
			out += ", "
		}
		out += name
	}
	return out
}
