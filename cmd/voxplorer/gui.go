package main

import (
	"voxplorer/internal/errors"
	"voxplorer/internal/gui"

	"github.com/spf13/cobra"
)

func newGUICmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "gui [dir]",
		Short: "Launch the graphical explorer",
		Long:  `Open the explorer window with the button bar, the directory navigator and voice commands.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(o, args)
		},
	}
}

func runGUI(o *rootOptions, args []string) error {
	if !gui.IsGUIAvailable() {
		return errors.New("this build has no graphical interface, use 'voxplorer tui'")
	}
	o.startDir(args)

	path, err := o.configPath()
	if err != nil {
		return err
	}
	app, err := gui.NewFactory(o.cfg, path).Create()
	if err != nil {
		return errors.Wrap(err, "error launching GUI")
	}
	defer app.Close()

	app.Run()
	return nil
}
