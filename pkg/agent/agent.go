// Package agent ties one observation run together: run every contract
// check, append the run event, and on failure capture and prune evidence.
package agent

import (
	"time"

	"github.com/sysbrain/vigil/pkg/check"
	"github.com/sysbrain/vigil/pkg/cmdrun"
	"github.com/sysbrain/vigil/pkg/compilecheck"
	"github.com/sysbrain/vigil/pkg/config"
	"github.com/sysbrain/vigil/pkg/depcheck"
	"github.com/sysbrain/vigil/pkg/eventlog"
	"github.com/sysbrain/vigil/pkg/evidence"
	"github.com/sysbrain/vigil/pkg/portcheck"
	"github.com/sysbrain/vigil/pkg/servicecheck"
)

// Agent holds the resources of one observation run. The log and evidence
// store are injected at construction so tests can point them at temp
// directories; nothing here is a process-wide singleton.
type Agent struct {
	Config   config.Config
	Runner   cmdrun.Runner
	Log      *eventlog.Log
	Evidence *evidence.Store
	Now      func() time.Time
}

// New wires an agent against the configured data directory.
func New(cfg config.Config, runner cmdrun.Runner) *Agent {
	return &Agent{
		Config: cfg,
		Runner: runner,
		Log:    &eventlog.Log{Path: cfg.EventLogPath()},
		Evidence: &evidence.Store{
			Root:        cfg.EvidenceRoot(),
			Runner:      runner,
			Diagnostics: evidence.Diagnostics(cfg.ServiceUnit, cfg.DependencyBin, cfg.PythonBin, cfg.SourceDir),
			Timeout:     cfg.CommandTimeout,
		},
		Now: time.Now,
	}
}

// Checks returns the contract checks in their fixed order. The order is
// stable for log readability only; outcomes are independent.
func (a *Agent) Checks() []check.Checker {
	return []check.Checker{
		&servicecheck.Check{Unit: a.Config.ServiceUnit, Runner: a.Runner},
		&portcheck.Check{Port: a.Config.Port, Runner: a.Runner},
		&depcheck.Check{Bin: a.Config.DependencyBin, Runner: a.Runner},
		&compilecheck.Check{
			SourceDir: a.Config.SourceDir,
			PythonBin: a.Config.PythonBin,
			Timeout:   a.Config.CommandTimeout,
			Runner:    a.Runner,
		},
	}
}

// Report is what one run produced.
type Report struct {
	Event     eventlog.Event
	Results   []check.Result
	BundleDir string               // empty on passing runs
	Prune     evidence.PruneResult // zero on passing runs
}

// Run executes one complete observation: all checks always run (no
// short-circuit), the event is always logged, and evidence is captured
// then pruned only when the run failed. Check failures are data; the
// returned error is reserved for storage failures, the one class that
// aborts a run.
func (a *Agent) Run() (Report, error) {
	ts := eventlog.Timestamp(a.Now())

	var report Report
	status := make(map[string]bool)
	overall := true
	for _, c := range a.Checks() {
		result := c.Run()
		report.Results = append(report.Results, result)
		status[result.Name] = result.OK()
		overall = overall && result.OK()
	}

	report.Event = eventlog.Event{Timestamp: ts, OverallOK: overall, Status: status}
	if err := a.Log.Append(report.Event); err != nil {
		return report, err
	}

	if overall {
		return report, nil
	}

	details := make([]map[string]any, 0, len(report.Results))
	for _, r := range report.Results {
		details = append(details, r.Detail)
	}
	dir, err := a.Evidence.Capture(ts, map[string]any{
		"event":   report.Event,
		"details": details,
	})
	if err != nil {
		return report, err
	}
	report.BundleDir = dir
	report.Prune = a.Evidence.Prune(a.Config.EvidenceKeep)
	return report, nil
}
