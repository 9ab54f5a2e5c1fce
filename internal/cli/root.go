// Package cli implements the framer command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/frames/internal/layoutfile"
	"github.com/mesh-intelligence/frames/internal/logging"
	"github.com/mesh-intelligence/frames/internal/paths"
	"github.com/mesh-intelligence/frames/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	output    string
	logLevel  string
}

// app is the state shared by the commands of one root command.
type app struct {
	flags     rootFlags
	configDir string
	cfg       types.Config
	logger    zerolog.Logger
}

// NewRootCmd creates the top-level "framer" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{logger: logging.Nop()}
	root := &cobra.Command{
		Use:   "framer",
		Short: "Resolve relative 2D layout frames",
		Long:  "Framer loads a layout file of frames positioned relative to their parents\nand reports their absolute coordinates.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVarP(&a.flags.output, "output", "o", "", "output format: text, json, yaml or toml")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "log level: trace, debug, info, warn, error or disabled")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newResolveCmd(a))
	root.AddCommand(newInfoCmd(a))
	root.AddCommand(newPointCmd(a))
	root.AddCommand(newSelectCmd(a))

	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return exitCode(err)
	}
	return exitSuccess
}

// setup resolves the config directory, loads config.yaml and builds the
// logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	dir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	a.configDir = dir

	v, err := loadConfig(dir)
	if err != nil {
		return userError(err)
	}
	if err := bindFlags(v, cmd); err != nil {
		return sysError(err)
	}

	if err := v.Unmarshal(&a.cfg); err != nil {
		return userError(fmt.Errorf("decode config: %w", err))
	}
	if err := a.cfg.Validate(); err != nil {
		return userError(fmt.Errorf("config: %w", err))
	}

	a.logger = logging.New("framer", logging.Options{
		Out:   cmd.ErrOrStderr(),
		Level: a.cfg.LogLevel,
	})
	a.logger.Debug().Str("config_dir", dir).Str("output", a.cfg.Output).Msg("config loaded")
	return nil
}

// loadLayout resolves and loads the layout named by args, the config or
// the default location.
func (a *app) loadLayout(args []string) (*layoutfile.Layout, error) {
	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	path, err := paths.ResolveLayout(arg, a.cfg.Layout, a.configDir)
	if err != nil {
		return nil, sysError(fmt.Errorf("resolve layout: %w", err))
	}
	l, err := layoutfile.Load(path, a.logger)
	if err != nil {
		return nil, userError(err)
	}
	return l, nil
}

// cliError carries the exit code for an error returned by a command.
type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }

func userError(err error) error {
	return &cliError{code: exitUserError, err: err}
}

func sysError(err error) error {
	return &cliError{code: exitSysError, err: err}
}

// exitCode maps an error to an exit code. Errors without a code, such as
// flag parsing errors from cobra, are user errors.
func exitCode(err error) int {
	var ce *cliError
	if errors.As(err, &ce) {
		return ce.code
	}
	return exitUserError
}
