package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/frames/pkg/types"
)

// writeOutput encodes v in the configured format. Text output is delegated
// to text, since each command lays it out differently.
func writeOutput(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case types.OutputText:
		return text(w)
	case types.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case types.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case types.OutputTOML:
		return toml.NewEncoder(w).Encode(v)
	default:
		return fmt.Errorf("%q: %w", format, types.ErrOutputUnknown)
	}
}
