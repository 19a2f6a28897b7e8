package source

import (
	"os"
	"strings"
)

// EnvironMap converts an os.Environ()-shaped slice into a lookup map.
// Malformed entries without "=" are skipped.
func EnvironMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		m[k] = v
	}
	return m
}

// FilterPrefix returns the subset of env whose keys start with prefix,
// with the prefix stripped. An empty result means no override is present.
func FilterPrefix(env map[string]string, prefix string) map[string]string {
	out := make(map[string]string)
	for k, v := range env {
		if rest, ok := strings.CutPrefix(k, prefix); ok && rest != "" {
			out[rest] = v
		}
	}
	return out
}

// ReadFileIfExists returns the file contents, or an empty string when the
// file is missing. A missing file is a valid empty source, not an error;
// any other read failure is returned as-is.
func ReadFileIfExists(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return string(raw), nil
}

// HasSectionMarker reports whether the raw file text explicitly contains
// any of the bracketed section headings. Detection is textual on purpose:
// it must distinguish "[stratum] written in the file" from "stratum table
// materialized from defaults", which a parsed view cannot.
func HasSectionMarker(raw string, sections ...string) bool {
	for _, s := range sections {
		if strings.Contains(raw, "["+s+"]") {
			return true
		}
	}
	return false
}
