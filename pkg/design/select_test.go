package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/frames/pkg/types"
)

// taggedDesign builds five frames with these (depth, group) tags:
//
//	0: (2, 1)  1: (0, 2)  2: (1, 1)  3: (2, 3)  4: (0, 1)
func taggedDesign(t *testing.T) *Design {
	t.Helper()
	d := New()
	tags := [][2]int{{2, 1}, {0, 2}, {1, 1}, {2, 3}, {0, 1}}
	for _, tag := range tags {
		f := types.DefaultFrame()
		f.Depth, f.GroupID = tag[0], tag[1]
		_, err := d.Add(f)
		require.NoError(t, err)
	}
	return d
}

func TestGroupSelection(t *testing.T) {
	d := taggedDesign(t)

	assert.Equal(t, []int{0, 2, 4}, d.FramesInGroup(1))
	assert.Equal(t, []int{1, 3}, d.FramesInGroups([]int{2, 3, 2}))
	assert.Equal(t, []int{1, 3}, d.FramesInGroupRange(2, 3, true))
	assert.Equal(t, []int{0, 2, 4}, d.FramesInGroupRange(2, 3, false))
	assert.Empty(t, d.FramesInGroup(9))
	assert.NotNil(t, d.FramesInGroup(9))
}

func TestDepthSelection(t *testing.T) {
	d := taggedDesign(t)

	tests := []struct {
		name string
		got  []int
		want []int
	}{
		{"at depth", d.FramesAtDepth(2), []int{0, 3}},
		{"all ascending", d.FramesAtAllDepths(true), []int{1, 4, 2, 0, 3}},
		{"all descending", d.FramesAtAllDepths(false), []int{0, 3, 2, 1, 4}},
		{"inside range", d.FramesInDepthRange(1, 2, true, true), []int{2, 0, 3}},
		{"outside range", d.FramesInDepthRange(1, 2, false, true), []int{1, 4}},
		{"inside range descending", d.FramesInDepthRange(0, 1, true, false), []int{2, 1, 4}},
		{"to depth from below", d.FramesToDepth(1, true, true), []int{1, 4, 2}},
		{"to depth from above", d.FramesToDepth(1, false, false), []int{0, 3, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestSelectionOnEmptyStore(t *testing.T) {
	d := New()
	assert.Empty(t, d.FramesAtAllDepths(true))
	assert.Empty(t, d.FramesInGroups(nil))
}
