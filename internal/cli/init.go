package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/frames/internal/paths"
	"github.com/mesh-intelligence/frames/pkg/types"
)

// exampleLayout is written next to config.yaml by init.
const exampleLayout = `# Example framer layout.
vars:
  margin: 8

generics:
  - name: opacity
    default: 1
    relation: scale

frames:
  - name: window
    rect: {x: 0, y: 0, w: 800, h: 600}

  - name: sidebar
    parent: window
    group: 1
    depth: 1
    start: {x: margin, y: margin}
    end: {x: "1/4", y: "-margin", x_relation: scale, x_anchor: start, y_anchor: end}

  - name: content
    parent: window
    group: 1
    depth: 1
    start: {x: "1/4", y: margin, x_relation: scale}
    end: {x: "-margin", y: "-margin", anchor: end}
    generics:
      opacity: {value: 0.9}

  - name: caret
    parent: content
    group: 2
    depth: 2
    point: true
    start: {x: 0.5, y: 0.5, relation: scale}
`

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration directory",
		Long:  "Create the configuration directory with a default config.yaml and an example layout.yaml.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd)
		},
	}
}

func (a *app) runInit(cmd *cobra.Command) error {
	if err := os.MkdirAll(a.configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}

	configPath := filepath.Join(a.configDir, paths.ConfigFileName)
	if err := writeConfigIfMissing(configPath); err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}

	layoutPath := filepath.Join(a.configDir, paths.DefaultLayoutName)
	if err := writeFileIfMissing(layoutPath, []byte(exampleLayout)); err != nil {
		return sysError(fmt.Errorf("write layout: %w", err))
	}

	a.logger.Debug().Str("config", configPath).Str("layout", layoutPath).Msg("initialized")
	fmt.Fprintf(cmd.OutOrStdout(), "Framer initialized in %s\n", a.configDir)
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns nil (idempotent).
func writeConfigIfMissing(path string) error {
	data, err := yaml.Marshal(types.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return writeFileIfMissing(path, data)
}

func writeFileIfMissing(path string, data []byte) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return os.WriteFile(path, data, 0o644)
}
