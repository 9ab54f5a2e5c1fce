// Package design implements the frame store and the resolver that turns a
// forest of relatively positioned frames into absolute coordinates.
//
// A Design owns an append-only list of frames addressed by integer index.
// Each frame points at its parent by index (or types.NoParent), so the store
// is an arena and never holds owning pointers between frames. Resolution is a
// pure walk up the parent chain: nothing is cached, so every query reflects
// the current state of the store.
//
// Design has no internal locking. Concurrent readers are safe while no writer
// is active; use Shared when readers and writers overlap.
//
// Example:
//
//	d := design.New()
//	root := d.AddAbsoluteRect(types.Vector2{}, types.Vector2{X: 100, Y: 100})
//	child := d.AddRelativeRect(root, types.Vector2{X: 10, Y: 10}, types.Vector2{X: 20, Y: 20})
//	d.EndAbsolute(child) // (30, 30)
package design
