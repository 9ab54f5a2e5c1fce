package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// selectedFrame is one frame matched by the select command.
type selectedFrame struct {
	Index int    `json:"index" yaml:"index" toml:"index"`
	Name  string `json:"name" yaml:"name" toml:"name"`
	Depth int    `json:"depth" yaml:"depth" toml:"depth"`
	Group int    `json:"group" yaml:"group" toml:"group"`
}

type selection struct {
	Frames []selectedFrame `json:"frames" yaml:"frames" toml:"frames"`
}

type selectFlags struct {
	depthMin   int
	depthMax   int
	outside    bool
	descending bool
}

func newSelectCmd(a *app) *cobra.Command {
	var sf selectFlags
	cmd := &cobra.Command{
		Use:   "select [layout]",
		Short: "List frames by depth range",
		Long: "List the frames whose depth lies in [depth-min, depth-max], or outside it\n" +
			"with --outside, ordered by depth and then by index.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSelect(cmd, args, sf)
		},
	}
	cmd.Flags().IntVar(&sf.depthMin, "depth-min", 0, "lowest depth of the range")
	cmd.Flags().IntVar(&sf.depthMax, "depth-max", 0, "highest depth of the range")
	cmd.Flags().BoolVar(&sf.outside, "outside", false, "select frames outside the range")
	cmd.Flags().BoolVar(&sf.descending, "descending", false, "order by descending depth")
	return cmd
}

func (a *app) runSelect(cmd *cobra.Command, args []string, sf selectFlags) error {
	if sf.depthMin > sf.depthMax {
		return userError(fmt.Errorf("depth-min %d is greater than depth-max %d", sf.depthMin, sf.depthMax))
	}
	l, err := a.loadLayout(args)
	if err != nil {
		return err
	}
	d := l.Design

	out := selection{Frames: []selectedFrame{}}
	for _, i := range d.FramesInDepthRange(sf.depthMin, sf.depthMax, !sf.outside, !sf.descending) {
		out.Frames = append(out.Frames, selectedFrame{
			Index: i,
			Name:  l.Name(i),
			Depth: d.Depth(i),
			Group: d.Group(i),
		})
	}
	return writeOutput(cmd.OutOrStdout(), a.cfg.Output, out, func(w io.Writer) error {
		for _, f := range out.Frames {
			if _, err := fmt.Fprintf(w, "%s [%d] depth=%d group=%d\n", f.Name, f.Index, f.Depth, f.Group); err != nil {
				return err
			}
		}
		return nil
	})
}
