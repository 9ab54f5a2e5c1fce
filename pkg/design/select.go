package design

import (
	"cmp"
	"slices"

	"github.com/mesh-intelligence/frames/pkg/types"
)

// FramesInGroup returns the indices of frames tagged with group, in
// insertion order.
func (d *Design) FramesInGroup(group int) []int {
	return d.filter(func(f *types.Frame) bool { return f.GroupID == group })
}

// FramesInGroups returns the indices of frames tagged with any of groups, in
// insertion order. Each frame appears at most once.
func (d *Design) FramesInGroups(groups []int) []int {
	return d.filter(func(f *types.Frame) bool { return slices.Contains(groups, f.GroupID) })
}

// FramesInGroupRange returns frames whose group lies within [lo, hi] when
// inside is true, or outside that range otherwise.
func (d *Design) FramesInGroupRange(lo, hi int, inside bool) []int {
	return d.filter(func(f *types.Frame) bool {
		return inside == (f.GroupID >= lo && f.GroupID <= hi)
	})
}

// FramesAtDepth returns the indices of frames tagged with depth, in
// insertion order.
func (d *Design) FramesAtDepth(depth int) []int {
	return d.filter(func(f *types.Frame) bool { return f.Depth == depth })
}

// FramesInDepthRange returns frames whose depth lies within [lo, hi] when
// inside is true, or outside that range otherwise, sorted by depth.
func (d *Design) FramesInDepthRange(lo, hi int, inside, ascending bool) []int {
	frames := d.filter(func(f *types.Frame) bool {
		return inside == (f.Depth >= lo && f.Depth <= hi)
	})
	d.sortByDepth(frames, ascending)
	return frames
}

// FramesToDepth returns frames at depth plus every shallower frame when
// below is true, or every deeper frame otherwise, sorted by depth.
func (d *Design) FramesToDepth(depth int, below, ascending bool) []int {
	frames := d.filter(func(f *types.Frame) bool {
		return f.Depth == depth || below == (f.Depth < depth)
	})
	d.sortByDepth(frames, ascending)
	return frames
}

// FramesAtAllDepths returns every frame index sorted by depth.
func (d *Design) FramesAtAllDepths(ascending bool) []int {
	frames := d.filter(func(*types.Frame) bool { return true })
	d.sortByDepth(frames, ascending)
	return frames
}

func (d *Design) filter(keep func(f *types.Frame) bool) []int {
	frames := []int{}
	for i := range d.frames {
		if keep(&d.frames[i]) {
			frames = append(frames, i)
		}
	}
	return frames
}

// sortByDepth orders ascending by (depth, index) or descending by depth with
// ties kept in insertion order.
func (d *Design) sortByDepth(frames []int, ascending bool) {
	slices.SortFunc(frames, func(a, b int) int {
		da, db := d.frames[a].Depth, d.frames[b].Depth
		if da != db {
			if ascending {
				return cmp.Compare(da, db)
			}
			return cmp.Compare(db, da)
		}
		return cmp.Compare(a, b)
	})
}
