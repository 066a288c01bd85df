// Package pathutil provides path manipulation for slash-separated asset paths.
//
// All logical asset paths in the pack pipeline are forward-slash relative
// paths. Normalization happens exactly once, at descriptor ingestion;
// every later stage (usage analysis, identifier hashing, index lookup)
// assumes its input is already normalized. Divergent normalization at any
// boundary would silently misclassify shared assets.
package pathutil

import "strings"

// Normalize converts a raw asset path from a scene descriptor to its
// canonical logical form: backslashes become forward slashes and a
// leading "./" is dropped.
func Normalize(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")
	path = strings.TrimPrefix(path, "./")
	return path
}

// Base returns the last element of a slash-separated path.
// If path is empty or ".", it returns ".".
func Base(path string) string {
	if path == "" || path == "." {
		return "."
	}
	path = strings.TrimSuffix(path, "/")
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}

// Stem returns the final path element without its extension.
// Scene names are derived from descriptor file names this way.
func Stem(path string) string {
	name := Base(path)
	if i := strings.LastIndex(name, "."); i > 0 {
		return name[:i]
	}
	return name
}
