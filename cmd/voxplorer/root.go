package main

import (
	"fmt"
	"io"

	"voxplorer/cmd/voxplorer/cli"
	"voxplorer/internal/config"
	"voxplorer/internal/errors"
	"voxplorer/internal/log"

	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags and the configuration they load
type rootOptions struct {
	cfgFile string
	envFile string
	logFile string
	debug   bool

	cfg *config.Config
}

// NewRootCmd creates the root command. Without a subcommand it opens the
// graphical explorer.
func NewRootCmd() *cobra.Command {
	o := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "voxplorer [dir]",
		Short:   "A voice controlled file explorer",
		Long:    "Voxplorer browses, copies, moves, renames, deletes and previews files by mouse, keyboard or spoken command.",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(o, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	helpTemplate := cli.Logo() + "\n\n" + rootCmd.UsageTemplate()
	rootCmd.SetUsageTemplate(helpTemplate)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&o.cfgFile, "config", "", "config file (default is $HOME/.config/voxplorer/config.yaml)")
	flags.StringVar(&o.envFile, "env", ".env", "env file with VOXPLORER_* overrides and API keys")
	flags.StringVar(&o.logFile, "log-file", "", "also write log lines to this file")
	flags.BoolVar(&o.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newGUICmd(o))
	rootCmd.AddCommand(newTUICmd(o))
	rootCmd.AddCommand(newLsCmd(o))
	rootCmd.AddCommand(newSearchCmd(o))
	rootCmd.AddCommand(newDrivesCmd())
	rootCmd.AddCommand(newListenCmd(o))
	rootCmd.AddCommand(newSayCmd(o))
	rootCmd.AddCommand(newConfigCmd(o))

	return rootCmd
}

// load reads the config file and env overrides, then sets up logging.
// A broken config file falls back to the defaults with a warning.
func (o *rootOptions) load(cmd *cobra.Command) error {
	// Log lines would corrupt the full-screen terminal UI
	var out io.Writer = cmd.ErrOrStderr()
	if cmd.Name() == "tui" {
		out = io.Discard
	}
	opts := []log.Option{log.WithOutput(out)}
	if o.logFile != "" {
		opts = append(opts, log.WithFile(o.logFile))
	}
	log.Configure(opts...)

	var err error
	if o.cfgFile != "" {
		o.cfg, err = config.LoadConfigFile(o.cfgFile)
	} else {
		o.cfg, err = config.LoadConfig()
	}
	if err != nil {
		cli.PrintWarning(cmd.ErrOrStderr(), fmt.Sprintf("Warning: %v", err))
		if errors.Is(err, errors.ErrInvalidConfig) {
			cli.PrintInfo(cmd.ErrOrStderr(), "Using default settings. Fix the file or run 'voxplorer config init --force' to replace it.")
		} else {
			cli.PrintInfo(cmd.ErrOrStderr(), "Using default settings. Run 'voxplorer config init' to create a config file.")
		}
		o.cfg = config.New()
	}

	if err := o.cfg.LoadEnv(o.envFile); err != nil {
		return err
	}
	log.SetDebug(o.debug || o.cfg.Debug)
	log.Debug("Configuration loaded (voice engine %s)", o.cfg.Voice.Engine)
	return nil
}

// configPath is where config init and the settings window write
func (o *rootOptions) configPath() (string, error) {
	if o.cfgFile != "" {
		return o.cfgFile, nil
	}
	return config.DefaultPath()
}

// startDir applies an optional directory argument
func (o *rootOptions) startDir(args []string) {
	if len(args) > 0 {
		o.cfg.StartDir = args[0]
	}
}
