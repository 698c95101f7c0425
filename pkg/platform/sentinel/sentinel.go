package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so callers can branch with errors.Is instead of nil checks.
//
// - ErrNotFound: entity does not exist in store
var (
	ErrNotFound = errors.New("not found")
)
