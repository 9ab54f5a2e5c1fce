package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/frames/internal/layoutfile"
	"github.com/mesh-intelligence/frames/pkg/design"
	"github.com/mesh-intelligence/frames/pkg/types"
)

// Frame orders accepted by resolve --order.
const (
	orderInsertion = "insertion"
	orderAscending = "asc"
	orderDescend   = "desc"
)

// frameRecord is one resolved frame in command output.
type frameRecord struct {
	Index    int                `json:"index" yaml:"index" toml:"index"`
	Name     string             `json:"name" yaml:"name" toml:"name"`
	Group    int                `json:"group" yaml:"group" toml:"group"`
	Depth    int                `json:"depth" yaml:"depth" toml:"depth"`
	Point    bool               `json:"point" yaml:"point" toml:"point"`
	Start    types.Vector2      `json:"start" yaml:"start" toml:"start"`
	End      types.Vector2      `json:"end" yaml:"end" toml:"end"`
	Size     types.Vector2      `json:"size" yaml:"size" toml:"size"`
	Generics map[string]float32 `json:"generics,omitempty" yaml:"generics,omitempty" toml:"generics,omitempty"`
}

// frameList wraps records so that every encoder sees a top-level table.
type frameList struct {
	Frames []frameRecord `json:"frames" yaml:"frames" toml:"frames"`
}

type resolveFlags struct {
	group int
	order string
}

func newResolveCmd(a *app) *cobra.Command {
	var rf resolveFlags
	cmd := &cobra.Command{
		Use:   "resolve [layout]",
		Short: "Print the absolute bounds of every frame",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runResolve(cmd, args, rf)
		},
	}
	cmd.Flags().IntVar(&rf.group, "group", 0, "only frames in this group")
	cmd.Flags().StringVar(&rf.order, "order", orderInsertion, "frame order: insertion, asc or desc (by depth)")
	return cmd
}

func (a *app) runResolve(cmd *cobra.Command, args []string, rf resolveFlags) error {
	l, err := a.loadLayout(args)
	if err != nil {
		return err
	}
	d := l.Design

	indices, err := orderedFrames(d, rf.order)
	if err != nil {
		return userError(err)
	}
	if cmd.Flags().Changed("group") {
		inGroup := d.FramesInGroup(rf.group)
		indices = slices.DeleteFunc(indices, func(i int) bool {
			return !slices.Contains(inGroup, i)
		})
	}

	resolved, err := design.ResolveAll(cmd.Context(), d, indices, a.cfg.Workers)
	if err != nil {
		return userError(err)
	}
	a.logger.Debug().Str("design", d.ID()).Int("resolved", len(resolved)).Msg("frames resolved")

	out := frameList{Frames: make([]frameRecord, 0, len(resolved))}
	for _, r := range resolved {
		out.Frames = append(out.Frames, newFrameRecord(l, r))
	}
	return writeOutput(cmd.OutOrStdout(), a.cfg.Output, out, func(w io.Writer) error {
		for _, rec := range out.Frames {
			if err := writeFrameText(w, l, rec); err != nil {
				return err
			}
		}
		return nil
	})
}

func orderedFrames(d *design.Design, order string) ([]int, error) {
	switch order {
	case orderInsertion, "":
		indices := make([]int, d.Count())
		for i := range indices {
			indices[i] = i
		}
		return indices, nil
	case orderAscending:
		return d.FramesAtAllDepths(true), nil
	case orderDescend:
		return d.FramesAtAllDepths(false), nil
	default:
		return nil, fmt.Errorf("unknown order %q: want %s, %s or %s", order, orderInsertion, orderAscending, orderDescend)
	}
}

func newFrameRecord(l *layoutfile.Layout, r design.Resolved) frameRecord {
	d := l.Design
	rec := frameRecord{
		Index: r.Index,
		Name:  l.Name(r.Index),
		Group: d.Group(r.Index),
		Depth: d.Depth(r.Index),
		Point: d.IsPoint(r.Index),
		Start: r.Bounds.Start,
		End:   r.Bounds.End,
		Size:  r.Bounds.Size,
	}
	if len(r.Generics) > 0 {
		rec.Generics = make(map[string]float32, len(r.Generics))
		names := l.GenericNames()
		for g, v := range r.Generics {
			rec.Generics[names[g]] = v
		}
	}
	return rec
}

func writeFrameText(w io.Writer, l *layoutfile.Layout, rec frameRecord) error {
	if _, err := fmt.Fprintf(w, "%s [%d] start=%s end=%s size=%s",
		rec.Name, rec.Index, rec.Start, rec.End, rec.Size); err != nil {
		return err
	}
	for _, name := range l.GenericNames() {
		if v, ok := rec.Generics[name]; ok {
			if _, err := fmt.Fprintf(w, " %s=%g", name, v); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
