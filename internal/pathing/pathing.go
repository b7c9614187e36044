package pathing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Stdin is the file argument that stands for standard input.
const Stdin = "-"

// NormalizeInputPath trims path-like input from config fields.
func NormalizeInputPath(path string) string {
	return strings.TrimSpace(path)
}

// IsAbsoluteLike reports whether the path should be treated as absolute
// regardless of host OS path semantics.
func IsAbsoluteLike(path string) bool {
	path = NormalizeInputPath(path)
	if path == "" {
		return false
	}
	if filepath.IsAbs(path) {
		return true
	}
	if strings.HasPrefix(path, `\\`) || strings.HasPrefix(path, `//`) {
		return true
	}
	if strings.HasPrefix(path, "/") {
		return true
	}
	if len(path) >= 3 && isASCIIAlpha(path[0]) && path[1] == ':' && (path[2] == '\\' || path[2] == '/') {
		return true
	}

	return false
}

// ResolveInputPath resolves a possibly-relative input file listed in a config
// file against the config file directory. Absolute-like paths, home-relative
// paths and standard input are returned unchanged.
func ResolveInputPath(filePath string, baseDir string) string {
	filePath = NormalizeInputPath(filePath)
	if filePath == "" || filePath == Stdin || isHomeRelative(filePath) {
		return filePath
	}
	if IsAbsoluteLike(filePath) || NormalizeInputPath(baseDir) == "" {
		return filePath
	}

	return filepath.Join(baseDir, filePath)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if !isHomeRelative(path) {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func isHomeRelative(path string) bool {
	return path == "~" || strings.HasPrefix(path, "~/")
}

func isASCIIAlpha(char byte) bool {
	return (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z')
}
