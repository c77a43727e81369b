package docgen

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolveImagePath resolves the stored illustration path of an equipment to
// an absolute file on disk. Stored paths accumulated under different
// conventions over time (Windows separators, with or without the
// "static/images" prefix, sometimes absolute), so resolution normalizes the
// value and probes a fixed set of candidate locations, returning the first
// one that exists.
func ResolveImagePath(stored, baseDir string) (string, bool) {
	text := strings.TrimSpace(stored)
	if text == "" {
		return "", false
	}

	if filepath.IsAbs(text) {
		if fileExists(text) {
			return text, true
		}
	}

	normalized := strings.TrimLeft(strings.ReplaceAll(text, `\`, "/"), "/")
	var parts []string
	for _, seg := range strings.Split(normalized, "/") {
		if seg == "" || seg == "." || seg == ".." {
			continue
		}
		parts = append(parts, seg)
	}

	trimmed := parts
	if len(trimmed) > 0 && strings.EqualFold(trimmed[0], "static") {
		trimmed = trimmed[1:]
	}
	if len(trimmed) > 0 && strings.EqualFold(trimmed[0], "images") {
		trimmed = trimmed[1:]
	}

	joined := filepath.Join(parts...)
	trimmedJoined := filepath.Join(trimmed...)
	basename := ""
	if len(trimmed) > 0 {
		basename = trimmed[len(trimmed)-1]
	} else if len(parts) > 0 {
		basename = parts[len(parts)-1]
	}

	cwd, _ := os.Getwd()

	var candidates []string
	seenRel := make(map[string]bool, 2)
	for _, rel := range []string{joined, trimmedJoined} {
		if rel == "" || seenRel[rel] {
			continue
		}
		seenRel[rel] = true
		candidates = append(candidates,
			rel,
			filepath.Join(cwd, rel),
			filepath.Join(baseDir, rel),
		)
	}
	if trimmedJoined != "" {
		candidates = append(candidates,
			filepath.Join(baseDir, "static", trimmedJoined),
			filepath.Join(baseDir, "static", "images", trimmedJoined),
		)
	}
	if basename != "" {
		candidates = append(candidates, filepath.Join(baseDir, "static", "images", basename))
	}

	seen := make(map[string]bool, len(candidates))
	for _, candidate := range candidates {
		cleaned := filepath.Clean(candidate)
		if seen[cleaned] {
			continue
		}
		seen[cleaned] = true
		if fileExists(cleaned) {
			if abs, err := filepath.Abs(cleaned); err == nil {
				return abs, true
			}
			return cleaned, true
		}
	}
	return "", false
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
