package config

import (
	"os"
	"path/filepath"
)

// GetConfigPath determines the configuration file path.
// Priority:
// 1. explicitly provided path (command-line flag)
// 2. DJWATCH_CONFIG_PATH environment variable
// 3. config.yaml / config.json in the current working directory
// An explicitly provided path is returned as-is so that a missing file
// surfaces as a startup error instead of being silently skipped.
// Returns "" when no config file is found; the caller then runs on defaults
// plus environment variables.
func GetConfigPath(providedPath string) string {
	if providedPath != "" {
		return providedPath
	}

	if envPath := os.Getenv("DJWATCH_CONFIG_PATH"); envPath != "" {
		if fileExists(envPath) {
			return envPath
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for _, file := range []string{"config.yaml", "config.json"} {
		path := filepath.Join(cwd, file)
		if fileExists(path) {
			return path
		}
	}

	return ""
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
