package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/frames/pkg/types"
)

// ErrUnknownFrame is returned when a frame name is not in the layout.
var ErrUnknownFrame = errors.New("unknown frame")

// pointRecord is the result of the point command.
type pointRecord struct {
	Frame string        `json:"frame" yaml:"frame" toml:"frame"`
	Point types.Vector2 `json:"point" yaml:"point" toml:"point"`
}

type pointFlags struct {
	frame    string
	x, y     float32
	relation string
	anchor   string
}

func newPointCmd(a *app) *cobra.Command {
	var pf pointFlags
	cmd := &cobra.Command{
		Use:   "point [layout]",
		Short: "Resolve a point relative to a frame",
		Long:  "Resolve a point expressed with a relation and anchor against the bounds of a frame.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPoint(cmd, args, pf)
		},
	}
	cmd.Flags().StringVar(&pf.frame, "frame", "", "frame name (required)")
	cmd.Flags().Float32Var(&pf.x, "x", 0, "x value")
	cmd.Flags().Float32Var(&pf.y, "y", 0, "y value")
	cmd.Flags().StringVar(&pf.relation, "relation", types.RelationScale.String(), "relation: absolute, relative or scale")
	cmd.Flags().StringVar(&pf.anchor, "anchor", types.AnchorStart.String(), "anchor: start, center, end or size")
	_ = cmd.MarkFlagRequired("frame")
	return cmd
}

func (a *app) runPoint(cmd *cobra.Command, args []string, pf pointFlags) error {
	relation, err := types.ParseRelation(pf.relation)
	if err != nil {
		return userError(err)
	}
	anchor, err := types.ParseAnchor(pf.anchor)
	if err != nil {
		return userError(err)
	}
	l, err := a.loadLayout(args)
	if err != nil {
		return err
	}
	i, ok := l.Index(pf.frame)
	if !ok {
		return userError(fmt.Errorf("%q: %w", pf.frame, ErrUnknownFrame))
	}

	rec := pointRecord{
		Frame: pf.frame,
		Point: l.Design.PointInFrame(i, types.Vector2{X: pf.x, Y: pf.y}, relation, anchor),
	}
	return writeOutput(cmd.OutOrStdout(), a.cfg.Output, rec, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, rec.Point)
		return err
	})
}
