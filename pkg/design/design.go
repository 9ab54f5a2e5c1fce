package design

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/frames/pkg/types"
)

// Design is an ordered store of frames sharing one generic-property count.
type Design struct {
	id       string
	frames   []types.Frame
	generics int
}

// New creates an empty Design with a fresh UUID v7 identifier.
func New() *Design {
	return &Design{id: generateUUID()}
}

// ID returns the identifier assigned when the Design was created.
func (d *Design) ID() string {
	return d.id
}

// Count returns the number of frames in the store.
func (d *Design) Count() int {
	return len(d.frames)
}

// GenericCount returns the store-wide number of generic properties.
func (d *Design) GenericCount() int {
	return d.generics
}

// Add appends a frame and returns its index.
// A frame carrying more generics than the store grows the store-wide count
// and every existing frame is padded with types.DefaultGeneric; a frame with
// fewer generics is padded the same way. The parent index is stored as given.
// Returns ErrInvalidRelation or ErrInvalidAnchor, leaving the store untouched,
// if any enumeration in f is out of range.
func (d *Design) Add(f types.Frame) (int, error) {
	if err := f.Validate(); err != nil {
		return types.NoParent, err
	}
	f = f.Clone()
	if f.Parent < types.NoParent {
		f.Parent = types.NoParent
	}
	d.frames = append(d.frames, f)
	if len(f.Generics) > d.generics {
		d.generics = len(f.Generics)
	}
	d.padGenerics()
	return len(d.frames) - 1, nil
}

// AddAbsoluteRect adds a root rectangle at position with the given size.
func (d *Design) AddAbsoluteRect(position, size types.Vector2) int {
	return d.addRect(types.NoParent, types.RelationAbsolute, position, size)
}

// AddRelativeRect adds a rectangle offset from the start of parent.
// The parent index is not checked here; a parent that does not exist makes
// the frame resolve to zero values.
func (d *Design) AddRelativeRect(parent int, position, size types.Vector2) int {
	return d.addRect(parent, types.RelationRelative, position, size)
}

func (d *Design) addRect(parent int, relation types.Relation, position, size types.Vector2) int {
	// Relations and anchors are constants here, so Add cannot fail.
	i, _ := d.Add(types.Frame{
		Parent: parent,
		Start:  types.Uniform(position, relation, types.AnchorStart),
		End:    types.Uniform(position.Add(size), relation, types.AnchorStart),
	})
	return i
}

// Frame returns a deep copy of the raw frame at index i.
// The second result is false if i is out of range.
func (d *Design) Frame(i int) (types.Frame, bool) {
	f, ok := d.frame(i)
	if !ok {
		return types.Frame{}, false
	}
	return f.Clone(), true
}

// Clone returns a deep copy of the Design, keeping its ID. Readers can
// resolve against the clone while the original keeps changing.
func (d *Design) Clone() *Design {
	c := &Design{
		id:       d.id,
		frames:   make([]types.Frame, len(d.frames)),
		generics: d.generics,
	}
	for i, f := range d.frames {
		c.frames[i] = f.Clone()
	}
	return c
}

// Validate reports every frame whose parent chain references a missing frame
// (ErrInvalidIndex) or loops back on itself (ErrParentCycle). The resolver
// does not require a valid store; such frames resolve to zero values.
func (d *Design) Validate() error {
	var errs []error
	for i := range d.frames {
		if err := d.checkChain(i); err != nil {
			errs = append(errs, fmt.Errorf("frame %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// checkChain walks the ancestors of frame i, which must exist.
func (d *Design) checkChain(i int) error {
	steps := 0
	for p := d.frames[i].Parent; p != types.NoParent; p = d.frames[p].Parent {
		if p < 0 || p >= len(d.frames) {
			return fmt.Errorf("parent %d: %w", p, types.ErrInvalidIndex)
		}
		steps++
		if steps > len(d.frames) {
			return types.ErrParentCycle
		}
	}
	return nil
}

// frame returns a pointer into the store, or false if i is out of range.
func (d *Design) frame(i int) (*types.Frame, bool) {
	if i < 0 || i >= len(d.frames) {
		return nil, false
	}
	return &d.frames[i], true
}

// generateUUID generates a new UUID v7 for design IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
