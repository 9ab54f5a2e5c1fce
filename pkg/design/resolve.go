package design

import "github.com/mesh-intelligence/frames/pkg/types"

// valueKind selects which value of a frame is being resolved.
type valueKind uint8

const (
	kindStart valueKind = iota
	kindEnd
)

func (k valueKind) opposite() valueKind {
	if k == kindStart {
		return kindEnd
	}
	return kindStart
}

// span is the resolved start and end of a frame on one axis.
type span struct {
	start, end float32
}

// Resolved is the absolute geometry and generic values of one frame.
type Resolved struct {
	Index    int          `json:"index" yaml:"index" toml:"index"`
	Bounds   types.Bounds `json:"bounds" yaml:"bounds" toml:"bounds"`
	Generics []float32    `json:"generics,omitempty" yaml:"generics,omitempty" toml:"generics,omitempty"`
}

// Resolve returns the bounds and every generic of frame i in absolute terms.
// Frames that cannot be resolved yield a zero Resolved carrying only Index.
func (d *Design) Resolve(i int) Resolved {
	r := Resolved{Index: i}
	if !d.resolvable(i) {
		return r
	}
	r.Bounds = d.bounds(i)
	if d.generics > 0 {
		r.Generics = make([]float32, d.generics)
		for g := range r.Generics {
			r.Generics[g] = d.genericValue(i, g)
		}
	}
	return r
}

// Bounds returns the absolute start, end and size of frame i.
func (d *Design) Bounds(i int) types.Bounds {
	if !d.resolvable(i) {
		return types.Bounds{}
	}
	return d.bounds(i)
}

// StartAbsolute returns the absolute start corner of frame i.
func (d *Design) StartAbsolute(i int) types.Vector2 {
	return d.Bounds(i).Start
}

// EndAbsolute returns the absolute end corner of frame i. For a point frame
// this equals StartAbsolute.
func (d *Design) EndAbsolute(i int) types.Vector2 {
	return d.Bounds(i).End
}

// SizeAbsolute returns EndAbsolute minus StartAbsolute. It is not clamped
// and may be negative.
func (d *Design) SizeAbsolute(i int) types.Vector2 {
	return d.Bounds(i).Size
}

// GenericAbsolute returns the absolute value of generic g of frame i.
func (d *Design) GenericAbsolute(i, g int) float32 {
	if g < 0 || g >= d.generics || !d.resolvable(i) {
		return 0
	}
	return d.genericValue(i, g)
}

// PointInFrame resolves point as if it were the start of a child of frame i
// using the same relation and anchor on both axes. The store is not changed.
func (d *Design) PointInFrame(i int, point types.Vector2, relation types.Relation, anchor types.Anchor) types.Vector2 {
	return d.PointInFrameAxes(i, point,
		types.Vector2Relation{X: relation, Y: relation},
		types.Vector2Anchor{X: anchor, Y: anchor})
}

// PointInFrameAxes is PointInFrame with a relation and anchor per axis.
func (d *Design) PointInFrameAxes(i int, point types.Vector2, relations types.Vector2Relation, anchors types.Vector2Anchor) types.Vector2 {
	if !d.resolvable(i) {
		return types.Vector2{}
	}
	x, y := d.span(i, types.AxisX), d.span(i, types.AxisY)
	px := types.Property{Value: point.X, Relation: relations.X, Anchor: anchors.X}
	py := types.Property{Value: point.Y, Relation: relations.Y, Anchor: anchors.Y}
	return types.Vector2{
		X: unpack(px, types.Property{}, kindStart, &x),
		Y: unpack(py, types.Property{}, kindStart, &y),
	}
}

// resolvable reports whether i exists and its parent chain ends at a root.
func (d *Design) resolvable(i int) bool {
	if _, ok := d.frame(i); !ok {
		return false
	}
	return d.checkChain(i) == nil
}

func (d *Design) bounds(i int) types.Bounds {
	x, y := d.span(i, types.AxisX), d.span(i, types.AxisY)
	start := types.Vector2{X: x.start, Y: y.start}
	end := types.Vector2{X: x.end, Y: y.end}
	return types.Bounds{Start: start, End: end, Size: end.Sub(start)}
}

// span resolves frame i on one axis. Each ancestor is resolved once, so the
// cost is linear in the depth of the frame. The chain must be valid.
func (d *Design) span(i int, axis types.Axis) span {
	f := &d.frames[i]
	var parent *span
	if f.Parent != types.NoParent {
		p := d.span(f.Parent, axis)
		parent = &p
	}
	start, end := f.Start.Axis(axis), f.End.Axis(axis)
	s := span{start: unpack(start, end, kindStart, parent)}
	if f.IsPoint {
		s.end = s.start
	} else {
		s.end = unpack(end, start, kindEnd, parent)
	}
	return s
}

// unpack converts one corner property into an absolute value. opposite is
// the other corner of the same frame on the same axis and is only consulted
// for Size anchors. parent is nil for root frames.
func unpack(p, opposite types.Property, kind valueKind, parent *span) float32 {
	relation := p.Relation
	var ps, pe float32
	if parent == nil {
		if p.Anchor != types.AnchorSize {
			return p.Value
		}
		relation = types.RelationAbsolute
	} else {
		if relation == types.RelationAbsolute && p.Anchor != types.AnchorSize {
			return p.Value
		}
		ps, pe = parent.start, parent.end
	}

	value := p.Value
	if relation == types.RelationScale {
		value *= pe - ps
	}

	switch p.Anchor {
	case types.AnchorStart:
		return value + ps
	case types.AnchorCenter:
		return value + 0.5*ps + 0.5*pe
	case types.AnchorEnd:
		return value + pe
	case types.AnchorSize:
		if opposite.Anchor == types.AnchorSize {
			// Both corners are sizes: the end wins and the start is
			// measured from the parent's start.
			if kind == kindStart {
				p.Anchor = types.AnchorStart
				return unpack(p, opposite, kind, parent)
			}
			opposite.Anchor = types.AnchorStart
		}
		if relation == types.RelationRelative {
			value += pe - ps
		}
		return value + unpack(opposite, p, kind.opposite(), parent)
	default:
		return value
	}
}

// genericValue resolves generic g of frame i against the same generic of
// each ancestor. The anchor only matters in one place: an Absolute generic
// anchored to Size still adds the parent generic.
func (d *Design) genericValue(i, g int) float32 {
	f := &d.frames[i]
	p := f.Generics[g]
	if f.Parent == types.NoParent || (p.Relation == types.RelationAbsolute && p.Anchor != types.AnchorSize) {
		return p.Value
	}
	pg := d.genericValue(f.Parent, g)
	if p.Relation == types.RelationScale {
		return p.Value * pg
	}
	return p.Value + pg
}
