package types

import "strings"

// Relation determines how a stored value composes with the parent frame.
type Relation uint8

const (
	// RelationAbsolute values are used as given; the parent is ignored
	// unless the property is Size-anchored.
	RelationAbsolute Relation = iota
	// RelationRelative values are offsets added to a parent-derived reference point.
	RelationRelative
	// RelationScale values are fractions of the parent's range on the same axis,
	// then treated as relative offsets.
	RelationScale
)

var relationNames = [...]string{
	RelationAbsolute: "absolute",
	RelationRelative: "relative",
	RelationScale:    "scale",
}

// String returns the lowercase name of the relation.
func (r Relation) String() string {
	if !r.Valid() {
		return "unknown"
	}
	return relationNames[r]
}

// Valid reports whether r is one of the declared relations.
func (r Relation) Valid() bool {
	return r <= RelationScale
}

// ParseRelation converts a case-insensitive relation name.
// Returns ErrInvalidRelation for unrecognized names.
func ParseRelation(s string) (Relation, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range relationNames {
		if n == name {
			return Relation(i), nil
		}
	}
	return RelationAbsolute, ErrInvalidRelation
}

// Anchor selects the reference point a value is measured from.
type Anchor uint8

const (
	// AnchorStart measures from the parent's start.
	AnchorStart Anchor = iota
	// AnchorCenter measures from the midpoint of the parent's range.
	AnchorCenter
	// AnchorEnd measures from the parent's end.
	AnchorEnd
	// AnchorSize measures from the opposite corner of the same frame, so the
	// value acts as a size rather than a position.
	AnchorSize
)

var anchorNames = [...]string{
	AnchorStart:  "start",
	AnchorCenter: "center",
	AnchorEnd:    "end",
	AnchorSize:   "size",
}

// String returns the lowercase name of the anchor.
func (a Anchor) String() string {
	if !a.Valid() {
		return "unknown"
	}
	return anchorNames[a]
}

// Valid reports whether a is one of the declared anchors.
func (a Anchor) Valid() bool {
	return a <= AnchorSize
}

// ParseAnchor converts a case-insensitive anchor name.
// Returns ErrInvalidAnchor for unrecognized names.
func ParseAnchor(s string) (Anchor, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range anchorNames {
		if n == name {
			return Anchor(i), nil
		}
	}
	return AnchorStart, ErrInvalidAnchor
}

// Axis selects the x or y component of a two-dimensional value.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}
