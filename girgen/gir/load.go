package gir

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Load reads one raw namespace from a JSON document.
func Load(path string) (*Namespace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read namespace file: %w", err)
	}
	ns, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ns, nil
}

// Decode parses a raw namespace from JSON bytes.
func Decode(data []byte) (*Namespace, error) {
	var ns Namespace
	if err := json.Unmarshal(data, &ns); err != nil {
		return nil, fmt.Errorf("failed to decode namespace: %w", err)
	}
	if ns.Name == "" {
		return nil, fmt.Errorf("namespace document has no name")
	}
	return &ns, nil
}

// LoadDir reads every *.json file in dir as a raw namespace, in sorted
// file-name order for deterministic input ordering.
func LoadDir(dir string) ([]*Namespace, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read namespace directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		return nil, fmt.Errorf("no namespace files found in %s", dir)
	}

	namespaces := make([]*Namespace, 0, len(paths))
	for _, p := range paths {
		ns, err := Load(p)
		if err != nil {
			return nil, err
		}
		namespaces = append(namespaces, ns)
	}
	return namespaces, nil
}
