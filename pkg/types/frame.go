package types

// NoParent marks a root frame.
const NoParent = -1

// Frame is the raw, unresolved record of one node in a layout forest.
type Frame struct {
	IsPoint  bool       // End is evaluated as Start.
	Parent   int        // Index of the parent frame, or NoParent.
	GroupID  int        // Caller-defined group tag used by selection helpers.
	Depth    int        // Caller-defined depth tag used by selection helpers.
	Start    Property2  // Start corner.
	End      Property2  // End corner; ignored when IsPoint is set.
	Generics []Property // Generic scalars; padded to the store-wide count.
}

// DefaultFrame returns the frame used when a caller supplies no geometry:
// a root point at the origin with scale relations on both corners.
func DefaultFrame() Frame {
	zero := Uniform(Vector2{}, RelationScale, AnchorStart)
	return Frame{
		IsPoint: true,
		Parent:  NoParent,
		Start:   zero,
		End:     zero,
	}
}

// Validate checks every relation and anchor held by the frame.
// Returns ErrInvalidRelation or ErrInvalidAnchor on the first bad value.
func (f Frame) Validate() error {
	if err := validateProperty(f.Start.X); err != nil {
		return err
	}
	if err := validateProperty(f.Start.Y); err != nil {
		return err
	}
	if err := validateProperty(f.End.X); err != nil {
		return err
	}
	if err := validateProperty(f.End.Y); err != nil {
		return err
	}
	for _, g := range f.Generics {
		if err := validateProperty(g); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy of the frame.
func (f Frame) Clone() Frame {
	if f.Generics != nil {
		f.Generics = append([]Property(nil), f.Generics...)
	}
	return f
}

func validateProperty(p Property) error {
	if !p.Relation.Valid() {
		return ErrInvalidRelation
	}
	if !p.Anchor.Valid() {
		return ErrInvalidAnchor
	}
	return nil
}
