package nested

import (
	"errors"
)

var (
	// ErrInvalidAttributes attributes are not an attribute map, a map of
	// attribute maps or a sequence of attribute maps
	ErrInvalidAttributes = errors.New("invalid attributes")
	// ErrUpdateConflict nested assignment tried to update a resource carrying
	// unsaved changes
	ErrUpdateConflict = errors.New("resource has unsaved changes")
	// ErrUnsupportedRelationship the acceptor's relationship does not match
	// the requested assignment cardinality
	ErrUnsupportedRelationship = errors.New("unsupported relationship")
)
