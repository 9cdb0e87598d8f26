package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/korreman/sway-overfocus/internal/config"
	"github.com/korreman/sway-overfocus/internal/focus"
	"github.com/korreman/sway-overfocus/internal/ipc"
	"github.com/korreman/sway-overfocus/internal/logging"
	"github.com/korreman/sway-overfocus/internal/output"
	"github.com/korreman/sway-overfocus/internal/target"
	"github.com/korreman/sway-overfocus/internal/tree"
)

var (
	i3Mode     bool
	direct     bool
	configPath string
	debugMode  bool
)

// rootCmd runs the focus engine over the positional targets.
var rootCmd = &cobra.Command{
	Use:   "overfocus [flags] TARGET [TARGET ...]",
	Short: "Directional focus movement for sway and i3",
	Long: `Overfocus picks the container that should receive focus, more precisely
than the window managers' built-in focus commands.

Each TARGET has the shape <kind>-<dir><edge>:

  kind   split | group | float | workspace | output
  dir    u | d | l | r
  edge   s (stop) | w (wrap) | i (inactive spill) | t (traverse spill)

Targets are tried in order; the first one that produces a move wins.
A single argument may also name a binding from the config file.`,
	Example: `  overfocus group-rw float-rw
  overfocus split-lt output-ls
  overfocus workspace-dw`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFocus(cmd.Context(), args)
	},
}

// treeCmd prints the current layout tree.
var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the window manager's layout tree",
	Long:  `Fetches the layout tree and prints an indented, annotated rendition. Useful for figuring out why a target does or does not match.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		t, err := client.GetTree(cmd.Context())
		if err != nil {
			return err
		}
		output.PrintTree(os.Stdout, t)
		return nil
	},
}

// listCmd prints outputs and workspaces as tables.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List outputs and workspaces",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		t, err := client.GetTree(cmd.Context())
		if err != nil {
			return err
		}
		output.PrintOutputsTable(os.Stdout, t)
		fmt.Println()
		output.PrintWorkspacesTable(os.Stdout, t)
		return nil
	},
}

func newClient(ctx context.Context) (ipc.Client, error) {
	if direct {
		if i3Mode {
			return nil, errors.New("--direct is sway only; i3 goes through i3-msg")
		}
		return ipc.NewSocket(ctx)
	}
	return ipc.NewExec(i3Mode), nil
}

// resolveTargets parses the positional arguments, falling back to a
// config binding when a single argument is no valid target token.
func resolveTargets(args []string) ([]target.Target, error) {
	targets, err := target.ParseAll(args)
	if err == nil {
		return targets, nil
	}
	var bad *target.BadTargetError
	if len(args) == 1 && errors.As(err, &bad) {
		if cfg := loadConfig(); cfg != nil {
			if targets, ok := cfg.Resolve(args[0]); ok {
				return targets, nil
			}
		}
	}
	return nil, err
}

// loadConfig reads the bindings file. An explicitly given path that cannot
// be loaded is logged as a warning; the default location is read only
// when present. Either way a failed load yields nil.
func loadConfig() *config.Config {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
		if path == "" {
			return nil
		}
		if _, err := os.Stat(path); err != nil {
			return nil
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		logging.Warn().Str("path", path).Err(err).Msg("config not loaded")
		return nil
	}
	return cfg
}

func runFocus(ctx context.Context, args []string) error {
	targets, err := resolveTargets(args)
	if err != nil {
		return err
	}

	client, err := newClient(ctx)
	if err != nil {
		return err
	}
	t, err := client.GetTree(ctx)
	if err != nil {
		logging.Error().Err(err).Msg("failed to fetch tree")
		return err
	}

	chosen := focus.Neighbor(t, targets)
	if chosen < 0 {
		logging.Info().Msg("no move")
		return nil
	}

	command, err := tree.FocusCommand(t.At(chosen), i3Mode)
	if err != nil {
		return &ipc.Failure{Op: "emit", Err: err}
	}

	fmt.Println(command)
	if err := client.RunCommand(ctx, command); err != nil {
		logging.Error().Str("command", command).Err(err).Msg("dispatch failed")
		return err
	}
	logging.Info().Str("command", command).Msg("focus moved")
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&i3Mode, "i3", false, "talk to i3 instead of sway")
	rootCmd.PersistentFlags().BoolVar(&direct, "direct", false, "use the IPC socket instead of invoking swaymsg (sway only)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "bindings file (default ~/.config/overfocus/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "log at debug level")

	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(listCmd)
}

func main() {
	cobra.OnInitialize(func() {
		logging.Init(debugMode)
	})
	defer logging.Close()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		var ipcErr *ipc.Failure
		if errors.As(err, &ipcErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
