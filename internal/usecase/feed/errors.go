// Package feed provides use cases for listing and ingesting feed records.
package feed

import "errors"

// Sentinel errors for feed use case operations.
var (
	// ErrSystemUserMissing indicates that the configured system user does not
	// exist in the datastore, so ingested feeds have no valid owner.
	ErrSystemUserMissing = errors.New("system user does not exist")
)
