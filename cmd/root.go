package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/dirscope/dirscope/internal/config"
	"github.com/dirscope/dirscope/internal/render"
	"github.com/dirscope/dirscope/internal/scan"
	"github.com/dirscope/dirscope/internal/tree"
)

var (
	outputPath string
	configPath string
)

func init() {
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "directory_structure.html", "Output HTML file path")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to an HCL settings file (colors, spacing)")
}

var rootCmd = &cobra.Command{
	Use:   "dirscope [directory]",
	Short: "Generate an interactive HTML visualization of a directory tree",
	Long: `dirscope walks a directory tree, computes per-directory disk usage,
and writes a single self-contained HTML document with an interactive
SVG tree: expand/collapse, substring search, zoom, and adjustable
spacing, with each directory colored by its total size.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := config.Defaults()
		if configPath != "" {
			var err error
			if settings, err = config.Load(configPath); err != nil {
				return err
			}
		}

		base, err := toolDir()
		if err != nil {
			return err
		}
		dir := base
		if len(args) == 1 {
			dir = args[0]
			if !filepath.IsAbs(dir) {
				dir = filepath.Join(base, dir)
			}
		}
		fsys := osfs.New("/")
		info, err := fsys.Stat(dir)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("'%s' is not a valid directory", dir)
		}

		res := scan.Scan(fsys, dir)
		nodes, _ := tree.Build(fsys, dir, res, settings.Ramp)

		doc := &render.Document{
			Nodes:    nodes,
			MinSize:  res.Min,
			MaxSize:  res.Max,
			Settings: settings,
		}
		out := render.OutputPath(dir, outputPath)
		if err := doc.WriteFile(fsys, out); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Generated visualization at: %s\n", out)
		return nil
	},
}

// toolDir returns the directory holding the running binary; relative
// and missing directory arguments resolve against it.
func toolDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	return filepath.Dir(exe), nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
