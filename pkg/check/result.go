package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single contract check.
//
// Details carries human-readable lines for terminal output. Detail carries
// the structured payload (command results, paths) that is copied verbatim
// into run events and evidence bundles.
type Result struct {
	Name    string         // e.g., "service-active", "compile-check"
	Status  Status         // OK or FAIL
	Details []string       // human-readable details
	Detail  map[string]any // structured diagnostic payload
	Err     error          // underlying error for failures
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}
