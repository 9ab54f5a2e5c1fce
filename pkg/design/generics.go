package design

import "github.com/mesh-intelligence/frames/pkg/types"

// AppendGeneric grows the generic count by one. Every frame receives a
// generic with the given value and relation. Returns the new generic index,
// or ErrInvalidRelation without changing the store.
func (d *Design) AppendGeneric(value float32, relation types.Relation) (int, error) {
	if !relation.Valid() {
		return -1, types.ErrInvalidRelation
	}
	d.padGenerics()
	g := types.Property{Value: value, Relation: relation, Anchor: types.AnchorStart}
	for i := range d.frames {
		d.frames[i].Generics = append(d.frames[i].Generics, g)
	}
	d.generics++
	return d.generics - 1, nil
}

// ResizeGenerics sets the generic count to exactly count. Frames with fewer
// generics are padded with types.DefaultGeneric; frames with more are
// truncated from the end. Negative counts are treated as zero.
func (d *Design) ResizeGenerics(count int) {
	d.generics = max(count, 0)
	d.padGenerics()
}

// RemoveGeneric removes generic g from every frame that has it. The generic
// count becomes the longest remaining list and all frames are padded to it.
// Out-of-range indices leave the store unchanged.
func (d *Design) RemoveGeneric(g int) {
	if g < 0 || g >= d.generics {
		return
	}
	longest := d.generics - 1
	if len(d.frames) > 0 {
		longest = 0
	}
	for i := range d.frames {
		gs := d.frames[i].Generics
		if len(gs) > g {
			gs = append(gs[:g], gs[g+1:]...)
			d.frames[i].Generics = gs
		}
		longest = max(longest, len(gs))
	}
	d.generics = longest
	d.padGenerics()
}

// RemoveAllGenerics sets the generic count to zero and clears every frame.
func (d *Design) RemoveAllGenerics() {
	d.generics = 0
	for i := range d.frames {
		d.frames[i].Generics = nil
	}
}

// padGenerics restores the invariant that every frame holds exactly
// d.generics generic properties.
func (d *Design) padGenerics() {
	for i := range d.frames {
		gs := d.frames[i].Generics
		switch {
		case len(gs) > d.generics:
			gs = gs[:d.generics:d.generics]
		case len(gs) < d.generics:
			for len(gs) < d.generics {
				gs = append(gs, types.DefaultGeneric())
			}
		}
		d.frames[i].Generics = gs
	}
}
