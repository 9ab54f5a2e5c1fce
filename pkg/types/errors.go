package types

import "errors"

// Store and resolver errors.
var (
	ErrInvalidIndex    = errors.New("invalid frame or generic index")
	ErrInvalidRelation = errors.New("invalid relation")
	ErrInvalidAnchor   = errors.New("invalid anchor")
	ErrParentCycle     = errors.New("parent chain contains a cycle")
)
