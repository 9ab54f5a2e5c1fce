// Package layoutfile loads declarative layout files into a design.Design.
//
// A layout file is YAML, TOML or JSON (chosen by extension) with three
// top-level keys:
//
//	vars:      named numbers usable in value expressions
//	generics:  ordered generic property declarations {name, default, relation}
//	frames:    ordered frame declarations
//
// Each frame has a unique name and may name an earlier frame as its parent.
// Corners are given either with the rect shorthand {x, y, w, h} or as start
// and end blocks {x, y, relation, anchor, x_relation, y_relation, x_anchor,
// y_anchor}. Any value may be a number or an expression such as
// "margin * 2" or "1/3", evaluated against vars.
//
// Keys are case-insensitive and are read in lower case, so var and generic
// names should be written in lower case.
package layoutfile
