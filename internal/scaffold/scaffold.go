// Package scaffold creates the fixed game-project directory template:
// production-pipeline folders, documentation, source, assets, temp-file
// folders, per-platform build folders, and optional engine-specific
// folders, each with a description.txt explaining its purpose.
package scaffold

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// Options configures a project scaffold.
type Options struct {
	GameName  string
	RootDir   string
	Engine    string   // one of Engines; empty means Custom
	Platforms []string // empty means DefaultPlatforms

	Now time.Time // creation timestamp; zero means time.Now()
	Log io.Writer // progress output; nil discards
}

type versionInfo struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	Status    string   `json:"status"`
	Created   string   `json:"created"`
	Engine    string   `json:"engine"`
	Platforms []string `json:"platforms"`
}

// Create builds the project structure under opts.RootDir and returns
// the project directory path. Directories created before a failure
// remain on disk; there is no rollback.
func Create(fs billy.Filesystem, opts Options) (string, error) {
	if strings.TrimSpace(opts.GameName) == "" {
		return "", fmt.Errorf("game name cannot be empty")
	}
	if opts.Engine == "" {
		opts.Engine = EngineCustom
	}
	if !ValidEngine(opts.Engine) {
		return "", fmt.Errorf("unknown engine %q (available: %s)", opts.Engine, strings.Join(Engines, ", "))
	}
	if len(opts.Platforms) == 0 {
		opts.Platforms = DefaultPlatforms
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	logw := opts.Log
	if logw == nil {
		logw = io.Discard
	}
	platforms := strings.Join(opts.Platforms, ", ")

	gameDir := fs.Join(opts.RootDir, strings.ReplaceAll(opts.GameName, " ", ""))
	fmt.Fprintf(logw, "Creating directory structure for %s at %s...\n", opts.GameName, gameDir)

	if err := fs.MkdirAll(gameDir, 0o755); err != nil {
		return "", fmt.Errorf("create project dir: %w", err)
	}
	var rootDesc bytes.Buffer
	if err := rootDescriptionTmpl.Execute(&rootDesc, map[string]string{
		"GameName": opts.GameName, "Engine": opts.Engine, "Platforms": platforms,
	}); err != nil {
		return "", fmt.Errorf("render root description: %w", err)
	}
	if err := util.WriteFile(fs, fs.Join(gameDir, "description.txt"), rootDesc.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write root description: %w", err)
	}

	entries := make([]Entry, 0, len(projectLayout)+len(opts.Platforms))
	entries = append(entries, projectLayout...)
	for _, p := range opts.Platforms {
		entries = append(entries, Entry{
			Path:        "Build/" + p,
			Description: fmt.Sprintf("Contains build outputs and packages for %s platform.", p),
		})
	}
	for _, e := range entries {
		dir := fs.Join(gameDir, e.Path)
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create %s: %w", e.Path, err)
		}
		if err := writeDescription(fs, dir, e.Path, e.Description); err != nil {
			return "", err
		}
		fmt.Fprintf(logw, "Created: %s (with description.txt)\n", dir)
	}

	// Umbrella directories get a description.txt of their own, but only
	// where one does not exist yet.
	topLevel := append([]Entry{
		{"Build", fmt.Sprintf("Contains build outputs and distribution packages for %s.", platforms)},
	}, topLevelLayout...)
	for _, e := range topLevel {
		dir := fs.Join(gameDir, e.Path)
		if _, err := fs.Stat(dir); err != nil {
			continue
		}
		descPath := fs.Join(dir, "description.txt")
		if _, err := fs.Stat(descPath); err == nil {
			continue
		}
		if err := writeDescription(fs, dir, e.Path, e.Description); err != nil {
			return "", err
		}
	}

	if opts.Engine != EngineCustom {
		if err := createEngineLayout(fs, gameDir, opts.Engine, logw); err != nil {
			return "", err
		}
		fmt.Fprintf(logw, "Created engine-specific folders for %s\n", opts.Engine)
	}

	var readme bytes.Buffer
	if err := readmeTmpl.Execute(&readme, map[string]string{
		"GameName":  opts.GameName,
		"Engine":    opts.Engine,
		"Platforms": platforms,
		"Created":   opts.Now.Format("2006-01-02 15:04:05"),
	}); err != nil {
		return "", fmt.Errorf("render README: %w", err)
	}
	if err := util.WriteFile(fs, fs.Join(gameDir, "README.md"), readme.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write README: %w", err)
	}
	fmt.Fprintf(logw, "Created README file: %s\n", fs.Join(gameDir, "README.md"))

	if err := util.WriteFile(fs, fs.Join(gameDir, "tmp", "README.md"), []byte(tmpReadme), 0o644); err != nil {
		return "", fmt.Errorf("write tmp README: %w", err)
	}
	fmt.Fprintf(logw, "Created tmp directory README file: %s\n", fs.Join(gameDir, "tmp", "README.md"))

	cleanupPath := fs.Join(gameDir, "Scripts", "Tools", "cleanup_tmp.py")
	if err := util.WriteFile(fs, cleanupPath, []byte(cleanupScript), 0o755); err != nil {
		return "", fmt.Errorf("write cleanup script: %w", err)
	}
	fmt.Fprintf(logw, "Created tmp directory cleanup script: %s\n", cleanupPath)

	vi, err := json.MarshalIndent(versionInfo{
		Name:      opts.GameName,
		Version:   "0.1.0",
		Status:    "development",
		Created:   opts.Now.Format(time.RFC3339),
		Engine:    opts.Engine,
		Platforms: opts.Platforms,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode version info: %w", err)
	}
	vi = append(vi, '\n')
	if err := util.WriteFile(fs, fs.Join(gameDir, "version_info.json"), vi, 0o644); err != nil {
		return "", fmt.Errorf("write version info: %w", err)
	}
	fmt.Fprintf(logw, "Created version info file: %s\n", fs.Join(gameDir, "version_info.json"))

	if err := util.WriteFile(fs, fs.Join(gameDir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return "", fmt.Errorf("write gitignore: %w", err)
	}
	fmt.Fprintf(logw, "Created gitignore file: %s\n", fs.Join(gameDir, ".gitignore"))

	return gameDir, nil
}

// createEngineLayout adds the engine's extra folders. Entries whose
// base name contains a dot are written as files with the description
// as body; everything else becomes a directory with a description.txt.
func createEngineLayout(fs billy.Filesystem, gameDir, engine string, logw io.Writer) error {
	for _, e := range engineLayouts[engine] {
		rel := strings.ReplaceAll(e.Path, "[GameName]", path.Base(gameDir))
		target := fs.Join(gameDir, rel)
		if strings.Contains(path.Base(rel), ".") {
			if err := fs.MkdirAll(path.Dir(target), 0o755); err != nil {
				return fmt.Errorf("create engine dir %s: %w", path.Dir(rel), err)
			}
			if err := util.WriteFile(fs, target, descriptionBody(rel, e.Description), 0o644); err != nil {
				return fmt.Errorf("create engine file %s: %w", rel, err)
			}
		} else {
			if err := fs.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("create engine dir %s: %w", rel, err)
			}
			if err := writeDescription(fs, target, rel, e.Description); err != nil {
				return err
			}
		}
		fmt.Fprintf(logw, "Created engine-specific: %s\n", target)
	}
	return nil
}

// ValidatePlatforms trims the comma-separated list and warns about
// entries outside the known platform set; unknown platforms are kept.
// An empty list yields the defaults.
func ValidatePlatforms(list string, warn io.Writer) []string {
	if strings.TrimSpace(list) == "" {
		return append([]string(nil), DefaultPlatforms...)
	}
	var platforms []string
	for _, p := range strings.Split(list, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !KnownPlatform(p) && warn != nil {
			fmt.Fprintf(warn, "Warning: Unknown platform '%s'. Available platforms: %s\n",
				p, strings.Join(KnownPlatforms, ", "))
		}
		platforms = append(platforms, p)
	}
	if len(platforms) == 0 {
		return append([]string(nil), DefaultPlatforms...)
	}
	return platforms
}

func writeDescription(fs billy.Filesystem, dir, rel, desc string) error {
	if err := util.WriteFile(fs, fs.Join(dir, "description.txt"), descriptionBody(rel, desc), 0o644); err != nil {
		return fmt.Errorf("write description for %s: %w", rel, err)
	}
	return nil
}

func descriptionBody(rel, desc string) []byte {
	return []byte(fmt.Sprintf("# %s\n\n%s\n", rel, desc))
}
