// Package scene discovers and parses scene descriptor files.
//
// A scene descriptor is a UTF-8 text file with the ".ntfg" extension.
// Each non-blank line that does not start with '#' names one asset path
// relative to the asset root. The scene's name is the descriptor's file
// stem. Paths are normalized (backslashes to forward slashes) here, at
// ingestion, and nowhere else.
package scene

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nettfg/aspak/internal/pathutil"
)

// Ext is the descriptor file extension.
const Ext = ".ntfg"

// Discover walks root recursively and returns scene name to descriptor
// path for every descriptor found.
func Discover(root string) (map[string]string, error) {
	descriptors := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), Ext) {
			return nil
		}
		name := pathutil.Stem(d.Name())
		if prev, ok := descriptors[name]; ok {
			return fmt.Errorf("duplicate scene %q: %s and %s", name, prev, path)
		}
		descriptors[name] = path
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discovering scene descriptors under %s: %w", root, err)
	}
	return descriptors, nil
}

// Load reads one descriptor and returns its normalized asset paths in
// file order.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scene descriptor %s: %w", path, err)
	}
	defer f.Close()

	var assets []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		assets = append(assets, pathutil.Normalize(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading scene descriptor %s: %w", path, err)
	}
	return assets, nil
}

// LoadAll discovers every descriptor under root and loads its asset
// list, returning scene name to normalized asset paths.
func LoadAll(root string) (map[string][]string, error) {
	descriptors, err := Discover(root)
	if err != nil {
		return nil, err
	}
	scenes := make(map[string][]string, len(descriptors))
	for name, path := range descriptors {
		assets, err := Load(path)
		if err != nil {
			return nil, err
		}
		scenes[name] = assets
	}
	return scenes, nil
}
