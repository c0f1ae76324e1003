package backend

import "fmt"

// NotFoundError reports that a backend's configured binary is not on the
// executable search path. Operations fail with it before any process spawns.
type NotFoundError struct {
	Backend string
	Binary  string
	EnvHint string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s CLI not found: '%s'. Set %s or install the CLI.", e.Backend, e.Binary, e.EnvHint)
}

// ExecutionError reports that the external tool ran and exited non-zero.
// Output carries the tool's trimmed stderr, or stdout when stderr was empty.
// Never retried: idempotence of the underlying tool is unknown.
type ExecutionError struct {
	Backend string
	Status  int
	Output  string
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s CLI failed (%d): %s", e.Backend, e.Status, e.Output)
}
