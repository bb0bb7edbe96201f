package gofidl

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofidl/gofidl/internal/types"
)

// discoverEnvSearchPaths returns the directories listed in FIDL_PATH,
// made absolute, deduplicated and filtered to directories that exist.
func discoverEnvSearchPaths(logger types.Logger) []string {
	v := os.Getenv(SearchPathEnv)
	if v == "" {
		return nil
	}
	listed := absPaths(splitPaths(v))
	dirs := filterExistingDirs(dedup(listed))
	logger.Log(slog.LevelDebug, "search paths from environment",
		slog.String("env", SearchPathEnv),
		slog.Int("listed", len(listed)),
		slog.Int("existing", len(dirs)))
	if logger.TraceEnabled() {
		for _, d := range dirs {
			logger.Trace("search path", slog.String("dir", d))
		}
	}
	return dirs
}

// splitPaths splits a list separated by the OS path list separator.
// Empty elements are dropped.
func splitPaths(s string) []string {
	if s == "" {
		return nil
	}
	var result []string
	for _, p := range filepath.SplitList(s) {
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// absPaths makes each path absolute. Paths that cannot be made absolute
// are kept as given.
func absPaths(paths []string) []string {
	result := make([]string, 0, len(paths))
	for _, p := range paths {
		if abs, err := absPath(p); err == nil {
			p = abs
		}
		result = append(result, p)
	}
	return dedup(result)
}

func dedup(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	var result []string
	for _, p := range paths {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			result = append(result, p)
		}
	}
	return result
}

func filterExistingDirs(paths []string) []string {
	var result []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err == nil && info.IsDir() {
			result = append(result, p)
		}
	}
	return result
}
