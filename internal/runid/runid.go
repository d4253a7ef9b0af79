// Package runid mints a correlation identifier for one solve invocation,
// so a user piping --verbose stderr output into a log aggregator can tie
// every diagnostic line back to a single run.
package runid

import "github.com/google/uuid"

// ID is a run correlation identifier.
type ID = uuid.UUID

// New mints a fresh run ID.
func New() ID { return uuid.New() }
