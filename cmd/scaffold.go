package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/dirscope/dirscope/internal/scaffold"
)

var (
	gameName     string
	rootDir      string
	engineName   string
	platformList string
	showExamples bool
)

func init() {
	scaffoldCmd.Flags().StringVar(&gameName, "game-name", "", "Name of the game")
	scaffoldCmd.Flags().StringVar(&rootDir, "root-dir", "", "Root directory where the game structure will be created")
	scaffoldCmd.Flags().StringVar(&engineName, "engine", scaffold.EngineCustom,
		fmt.Sprintf("Game engine to use: %s", strings.Join(scaffold.Engines, ", ")))
	scaffoldCmd.Flags().StringVar(&platformList, "platforms", "",
		fmt.Sprintf("Comma-separated list of target platforms (available: %s)", strings.Join(scaffold.KnownPlatforms, ", ")))
	scaffoldCmd.Flags().BoolVar(&showExamples, "examples", false, "Show usage examples and exit")
	rootCmd.AddCommand(scaffoldCmd)
}

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Create a template directory structure for game development",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if showExamples {
			printExamples(out)
			return nil
		}
		in := bufio.NewReader(cmd.InOrStdin())

		name := gameName
		if name == "" {
			name = prompt(in, out, "Enter the name of your game: ")
		}
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("game name cannot be empty")
		}

		root := rootDir
		if root == "" {
			root = prompt(in, out, "Enter the root directory for your game project (leave empty for the dirscope directory): ")
		}
		if root == "" {
			base, err := toolDir()
			if err != nil {
				return err
			}
			root = base
		}
		if !filepath.IsAbs(root) {
			abs, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("resolve root dir: %w", err)
			}
			root = abs
		}

		if !scaffold.ValidEngine(engineName) {
			return fmt.Errorf("unknown engine %q (available: %s)", engineName, strings.Join(scaffold.Engines, ", "))
		}

		list := platformList
		if list == "" {
			list = prompt(in, out, "Enter target platforms (comma-separated) [default: Windows,MacOS,Linux]: ")
		}
		platforms := scaffold.ValidatePlatforms(list, out)

		if _, err := os.Stat(root); err != nil {
			answer := prompt(in, out, fmt.Sprintf("The directory %s does not exist. Create it? (y/n): ", root))
			if !strings.EqualFold(strings.TrimSpace(answer), "y") {
				fmt.Fprintln(out, "Operation cancelled.")
				return nil
			}
			if err := os.MkdirAll(root, 0o755); err != nil {
				return fmt.Errorf("create root directory: %w", err)
			}
		}

		gameDir, err := scaffold.Create(osfs.New("/"), scaffold.Options{
			GameName:  name,
			RootDir:   root,
			Engine:    engineName,
			Platforms: platforms,
			Log:       out,
		})
		if err != nil {
			return fmt.Errorf("create game directory structure: %w", err)
		}

		fmt.Fprintf(out, "\nGame directory structure created successfully at: %s\n", gameDir)
		fmt.Fprintf(out, "You can now start developing %s!\n", name)
		fmt.Fprintf(out, "- Engine: %s\n", engineName)
		fmt.Fprintf(out, "- Target Platforms: %s\n", strings.Join(platforms, ", "))
		return nil
	},
}

func prompt(in *bufio.Reader, out io.Writer, question string) string {
	fmt.Fprint(out, question)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

func printExamples(out io.Writer) {
	rule := strings.Repeat("=", 80)
	fmt.Fprintln(out, "\nUsage Examples:")
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "1. Basic usage (interactive):")
	fmt.Fprintln(out, "   dirscope scaffold")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "2. Basic usage with command-line arguments:")
	fmt.Fprintln(out, "   dirscope scaffold --game-name \"My Awesome Game\" --root-dir ~/Projects")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "3. Specify game engine:")
	fmt.Fprintln(out, "   dirscope scaffold --game-name \"My Unity Game\" --engine Unity")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "4. Specify target platforms:")
	fmt.Fprintln(out, "   dirscope scaffold --game-name \"Mobile Game\" --platforms Windows,Android,iOS")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "5. Full example with all parameters:")
	fmt.Fprintln(out, "   dirscope scaffold --game-name \"Space Adventure\" --root-dir ~/Games --engine Unreal --platforms Windows,PlayStation,Xbox")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "6. Create a project and then use the cleanup script:")
	fmt.Fprintln(out, "   dirscope scaffold --game-name \"My Game\"")
	fmt.Fprintln(out, "   python Scripts/Tools/cleanup_tmp.py --age 30")
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Directory Structure Overview:")
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "The generated directory structure includes:")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "1. Production Pipeline Directories:")
	fmt.Fprintln(out, "   - Pre-Production: Idea, Story, Characters, Storyboard, etc.")
	fmt.Fprintln(out, "   - Production: Modeling, Animation, Texturing, Lighting, etc.")
	fmt.Fprintln(out, "   - Post-Production: Compositing, Color Correction, Final Output, etc.")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "2. Development Structure:")
	fmt.Fprintln(out, "   - Source code, assets, documentation, and other standard directories")
	fmt.Fprintln(out, "   - Engine-specific directories based on the chosen game engine")
	fmt.Fprintln(out, "   - Platform-specific build directories")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "3. Temporary Files:")
	fmt.Fprintln(out, "   - Comprehensive tmp directory structure for all temporary assets")
	fmt.Fprintln(out, "   - Includes specialized directories for media, renders, and workflow")
	fmt.Fprintln(out, "   - Comes with cleanup script for managing temporary files")
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Note: If no root directory is specified, the scaffold is created")
	fmt.Fprintln(out, "in the same directory as the dirscope binary itself.")
}
