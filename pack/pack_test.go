// Copyright 2025 The wotdict Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pack_test

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/khammond/wotdict/pack"
)

// writeTree writes a file tree under root. Keys are slash-separated
// relative paths.
func writeTree(t *testing.T, root string, files map[string]string, dirs []string) {
	t.Helper()

	for path, content := range files {
		path = filepath.Join(root, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(dir)), 0o755); err != nil {
			t.Fatal(err)
		}
	}
}

// readArchive returns the archive's entries by name.
func readArchive(t *testing.T, path string) map[string]string {
	t.Helper()

	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer r.Close()

	entries := map[string]string{}
	for _, f := range r.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening entry %q: %v", f.Name, err)
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("reading entry %q: %v", f.Name, err)
		}
		if _, ok := entries[f.Name]; ok {
			t.Fatalf("duplicate entry %q", f.Name)
		}
		entries[f.Name] = string(b)
	}
	return entries
}

// packageOut runs Package into a fresh output directory and returns
// the produced archives by base name.
func packageOut(t *testing.T, root string) map[string]map[string]string {
	t.Helper()

	outDir := t.TempDir()
	archives, err := pack.Package(root, outDir)
	if err != nil {
		t.Fatalf("Package: %v", err)
	}

	out := map[string]map[string]string{}
	for _, archive := range archives {
		out[filepath.Base(archive)] = readArchive(t, archive)
	}

	// Every produced archive must have been reported.
	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(entries), len(archives); got != want {
		t.Fatalf("archives in output dir; want: %d, got: %d", want, got)
	}

	return out
}

func TestPackage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		files map[string]string
		dirs  []string

		expected map[string]map[string]string
	}{
		{
			name: "one archive per subdirectory",
			files: map[string]string{
				"A/f1": "one",
				"A/f2": "two",
				"B/f3": "three",
			},

			expected: map[string]map[string]string{
				"A.zip": {"f1": "one", "f2": "two"},
				"B.zip": {"f3": "three"},
			},
		},
		{
			name: "empty root",

			expected: map[string]map[string]string{},
		},
		{
			name: "empty subdirectory",
			dirs: []string{"A"},

			expected: map[string]map[string]string{
				"A.zip": {},
			},
		},
		{
			name: "nested files are flattened",
			files: map[string]string{
				"A/f1":     "one",
				"A/sub/f4": "four",
			},

			expected: map[string]map[string]string{
				"A.zip": {"f1": "one", "f4": "four"},
			},
		},
		{
			name: "loose files under root are ignored",
			files: map[string]string{
				"readme.txt": "ignored",
				"A/f1":       "one",
			},

			expected: map[string]map[string]string{
				"A.zip": {"f1": "one"},
			},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			root := filepath.Join(t.TempDir(), "dicts")
			if err := os.MkdirAll(root, 0o755); err != nil {
				t.Fatal(err)
			}
			writeTree(t, root, test.files, test.dirs)

			got := packageOut(t, root)
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Package (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestPackage_missingRoot(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "dicts")

	archives, err := pack.Package(root, t.TempDir())
	if err != nil {
		t.Fatalf("Package: %v", err)
	}
	if len(archives) != 0 {
		t.Fatalf("expected no archives, got: %v", archives)
	}
}

func TestPackage_rootNotDirectory(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "dicts")
	if err := os.WriteFile(root, []byte("not a directory"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := pack.Package(root, t.TempDir())
	if !errors.Is(err, pack.ErrNotDirectory) {
		t.Fatalf("expected ErrNotDirectory, got: %v", err)
	}
}

func TestPackage_nameCollision(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "dicts")
	writeTree(t, root, map[string]string{
		"A/x/f": "first",
		"A/y/f": "second",
	}, nil)

	got := packageOut(t, root)

	entries, ok := got["A.zip"]
	if !ok {
		t.Fatalf("missing A.zip, got: %v", got)
	}
	if len(entries) != 1 {
		t.Fatalf("expected a single entry, got: %v", entries)
	}
	// Which of the colliding files wins is unspecified, but the entry
	// must be one of them.
	if entries["f"] != "first" && entries["f"] != "second" {
		t.Fatalf("unexpected entry content: %q", entries["f"])
	}
}

func TestPackage_idempotent(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "dicts")
	writeTree(t, root, map[string]string{
		"A/f1":     "one",
		"A/sub/f2": "two",
		"B/f3":     "three",
	}, nil)

	first := packageOut(t, root)
	second := packageOut(t, root)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("second run differs (-first, +second):\n%s", diff)
	}
}
