package main

import (
	"voxplorer/internal/tui"

	"github.com/spf13/cobra"
)

func newTUICmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui [dir]",
		Short: "Start the terminal explorer",
		Long: `Start the explorer in the terminal. Space starts a voice command and ':'
accepts a typed one. Use --log-file to keep the log, it is not shown on screen.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o.startDir(args)
			return tui.Run(o.cfg)
		},
	}
}
