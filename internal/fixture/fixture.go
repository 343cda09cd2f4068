// Package fixture loads raw namespace test fixtures from txtar archives.
// Each file in an archive is one JSON namespace document.
package fixture

import (
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/gtkx-org/gtkx-sub008/girgen/gir"
)

// Namespaces parses the txtar archive at path and decodes every file in
// it as a raw namespace document.
func Namespaces(t *testing.T, path string) []*gir.Namespace {
	t.Helper()

	archive, err := txtar.ParseFile(path)
	if err != nil {
		t.Fatalf("failed to parse fixture %s: %v", path, err)
	}
	if len(archive.Files) == 0 {
		t.Fatalf("fixture %s contains no namespace documents", path)
	}

	namespaces := make([]*gir.Namespace, 0, len(archive.Files))
	for _, f := range archive.Files {
		ns, err := gir.Decode(f.Data)
		if err != nil {
			t.Fatalf("fixture %s: %s: %v", path, f.Name, err)
		}
		namespaces = append(namespaces, ns)
	}
	return namespaces
}
