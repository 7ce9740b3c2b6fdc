package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rshade/contentview/internal/logging"
)

// EnvProjectDir points at a project directory holding .contentview/config.yaml.
const EnvProjectDir = "CONTENTVIEW_PROJECT_DIR"

// ResolveProjectDir finds the project-local .contentview directory. It checks
// CONTENTVIEW_PROJECT_DIR first and then walks up from startDir looking for a
// .contentview/config.yaml. The result is absolute, or empty when no project
// config exists. The global config directory under the home directory is
// never treated as a project.
func ResolveProjectDir(ctx context.Context, startDir string) string {
	if envDir := os.Getenv(EnvProjectDir); envDir != "" {
		return toAbsProjectDir(ctx, envDir)
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}
	home, _ := os.UserHomeDir()

	for {
		if dir != home {
			candidate := filepath.Join(dir, DefaultDirName)
			if _, statErr := os.Stat(filepath.Join(candidate, DefaultFileName)); statErr == nil {
				return candidate
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// MergeProjectConfig overlays projectDir/config.yaml onto cfg. A missing or
// malformed overlay leaves cfg unchanged; the latter is logged.
func MergeProjectConfig(ctx context.Context, cfg *Config, projectDir string) {
	if projectDir == "" {
		return
	}

	overlayPath := filepath.Join(projectDir, DefaultFileName)
	if _, err := os.Stat(overlayPath); err != nil {
		return
	}

	merged := *cfg
	if err := MergeYAML(&merged, overlayPath); err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Str("component", "config").
			Str("operation", "merge_project_config").
			Err(err).
			Str("overlay_path", overlayPath).
			Msg("failed to merge project config, using global settings")
		return
	}
	*cfg = merged
}

// toAbsProjectDir converts dir to an absolute path ending in .contentview.
func toAbsProjectDir(ctx context.Context, dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Str("component", "config").
			Err(err).
			Str("dir", dir).
			Msg("failed to resolve absolute path for project directory")
		abs = dir
	}

	if filepath.Base(abs) == DefaultDirName {
		return abs
	}
	return filepath.Join(abs, DefaultDirName)
}
