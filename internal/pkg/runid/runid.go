// Package runid generates a correlation id for a single process invocation.
// Transaction and client ids are caller-supplied integers and must never be
// replaced by a UUID; the run id exists only to let every log line from one
// CLI invocation be grepped together.
package runid

import "github.com/google/uuid"

// New returns a fresh run id. Call it once per process and thread the result
// through the logger.
func New() string {
	return uuid.NewString()
}
