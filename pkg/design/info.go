package design

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/frames/pkg/types"
)

// Info returns a human-readable line per frame with its raw, unresolved
// data: parent, group, depth, start and end with relations and anchors, the
// raw difference between end and start, and every generic value.
// An empty store returns "".
func (d *Design) Info() string {
	var b strings.Builder
	for i := range d.frames {
		f := &d.frames[i]
		diff := f.End.Values().Sub(f.Start.Values())
		fmt.Fprintf(&b, "[%d] prnt:%d || grp: %d || dth: %d", i, f.Parent, f.GroupID, f.Depth)
		fmt.Fprintf(&b, " || st: %s", infoCorner(f.Start))
		fmt.Fprintf(&b, " || nd: %s", infoCorner(f.End))
		fmt.Fprintf(&b, " || df: (%.2fx%.2f)", diff.X, diff.Y)
		for g := 0; g < d.generics; g++ {
			fmt.Fprintf(&b, " || gen[%d]: %f", g, f.Generics[g].Value)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func infoCorner(p types.Property2) string {
	return fmt.Sprintf("(%.2f, %.2f) {rel: (%s, %s)} {anc: (%s, %s)}",
		p.X.Value, p.Y.Value,
		p.X.Relation, p.Y.Relation,
		p.X.Anchor, p.Y.Anchor)
}
