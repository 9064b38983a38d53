package check

// Checker is implemented by all contract checks.
// Each check probes one aspect of the observed system through the command
// runner and returns a Result. Checks never return errors: execution
// failures are data in the Result.
//
// Implementations:
//   - servicecheck.Check: systemd unit is active
//   - portcheck.Check: TCP port has a listening socket
//   - depcheck.Check: dependency binary lists its models
//   - compilecheck.Check: companion source tree compiles
type Checker interface {
	Run() Result
}
