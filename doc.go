// Package frames resolves forests of 2D layout frames into absolute
// coordinates.
//
// A frame is a rectangle or point whose two corners, and any number of
// generic scalar properties, are expressed relative to a parent frame. The
// store and resolver live in pkg/design; the value types they share live in
// pkg/types. The framer command in cmd/framer resolves declarative layout
// files from the command line.
package frames

// Version is the release version of the frames module.
const Version = "0.1.0"
