// Package types defines the value types shared by the frames module: the
// Relation and Anchor enumerations, per-axis properties, frames, resolved
// bounds, configuration, and the standard error values.
//
// A Property stores a single number together with how it composes with the
// parent frame (Relation) and which reference point it is measured from
// (Anchor). A Frame owns a start and an end Property2 (one Property per axis)
// and a list of generic scalar properties.
package types
