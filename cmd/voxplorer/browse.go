package main

import (
	"fmt"
	"strings"

	"voxplorer/internal/errors"
	"voxplorer/internal/explorer"
	"voxplorer/internal/fsops"
	"voxplorer/internal/search"
	"voxplorer/pkg/types"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newLsCmd(o *rootOptions) *cobra.Command {
	var noHidden bool

	cmd := &cobra.Command{
		Use:   "ls [dir]",
		Short: "List a directory the way the explorer shows it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// An explicit directory must exist; only the configured one falls back to home
			dir := o.cfg.ResolveStartDir()
			if len(args) > 0 {
				dir = args[0]
			}

			fs := fsops.NewWithConfig(o.cfg)
			if noHidden {
				fs.SetShowHidden(false)
			}
			entries, err := fs.List(dir)
			switch {
			case err == nil || len(entries) > 0:
			case errors.Is(err, errors.ErrFileNotFound):
				return errors.Newf("no such directory: %s", dir)
			case errors.Is(err, errors.ErrFileAccess):
				return errors.Newf("permission denied: %s", dir)
			default:
				return err
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				name, size := e.Name, humanize.Bytes(uint64(e.Size))
				if e.IsDir {
					name, size = name+"/", "-"
				}
				rows = append(rows, []string{name, size, humanize.Time(e.ModTime)})
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("NAME", "SIZE", "MODIFIED").
				Rows(rows...)
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			fmt.Fprintf(cmd.OutOrStdout(), "%d items\n", len(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noHidden, "no-hidden", false, "do not list dot-files")
	return cmd
}

func newSearchCmd(o *rootOptions) *cobra.Command {
	var (
		dir  string
		kind string
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find the first file or folder whose name contains query",
		Long: `Walk the directory depth first and print the first entry whose name
contains the query, ignoring case. When that entry is not of the requested
type nothing is found.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseKind(kind)
			if err != nil {
				return err
			}
			if dir == "" {
				dir = o.cfg.ResolveStartDir()
			}

			query := strings.Join(args, " ")
			path, found, err := search.NewWithConfig(o.cfg).Find(cmd.Context(), dir, query, k)
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintln(cmd.OutOrStdout(), explorer.MsgNoResults)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "directory to search (default is the start directory)")
	cmd.Flags().StringVarP(&kind, "type", "t", "any", "file, folder or any")
	return cmd
}

func parseKind(s string) (types.Kind, error) {
	switch strings.ToLower(s) {
	case "", "any", "item":
		return types.Any, nil
	case "file", "folder", "directory", "dir":
		return types.ParseKind(s), nil
	}
	return types.Any, errors.Newf("unknown type %q, want file, folder or any", s)
}

func newDrivesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drives",
		Short: "List the drives offered by Change Directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, d := range fsops.Drives() {
				fmt.Fprintln(cmd.OutOrStdout(), d)
			}
			return nil
		},
	}
}
