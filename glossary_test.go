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

package wotdict

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// writeBook writes a book data file and returns its path.
func writeBook(t *testing.T, records []Record) string {
	t.Helper()

	b, err := json.Marshal(records)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "book.json")
	if err := os.WriteFile(path, b, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGlossary_Ingest(t *testing.T) {
	t.Parallel()

	book1 := writeBook(t, []Record{
		{ID: "rand", Name: "Rand", Info: "A shepherd.", Chapter: "Chapter 1"},
		{ID: "tam", Name: "Tam", Info: "Father of [Rand](#rand).", Chapter: "Chapter 2"},
	})

	g := NewGlossary()
	if err := g.Ingest(book1, "The Eye of the World"); err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	if want, got := 2, g.Len(); want != got {
		t.Fatalf("Len; want: %d, got: %d", want, got)
	}

	expected := []*Entry{
		{
			Name: "Rand",
			Definitions: []Definition{
				{Origin: "The Eye of the World, Chapter 1", HTML: "A shepherd."},
			},
			Backlinks: []BacklinkGroup{
				{Book: "The Eye of the World", Names: map[string]struct{}{"Tam": {}}},
			},
		},
		{
			Name: "Tam",
			Definitions: []Definition{
				{
					Origin: "The Eye of the World, Chapter 2",
					HTML:   `Father of <a class="dict-internal-link" href="bword://Rand">Rand</a>.`,
				},
			},
			Backlinks: []BacklinkGroup{
				{Book: "The Eye of the World", Names: map[string]struct{}{}},
			},
		},
	}
	if diff := cmp.Diff(expected, g.Entries()); diff != "" {
		t.Fatalf("Entries (-want, +got):\n%s", diff)
	}
}

// TestGlossary_Ingest_cumulative tests merging a second book into the
// glossary: new definitions and backlink groups are prepended and
// newly seen backlinks are subtracted from earlier groups.
func TestGlossary_Ingest_cumulative(t *testing.T) {
	t.Parallel()

	book1 := writeBook(t, []Record{
		{ID: "rand", Name: "Rand", Info: "A shepherd.", Chapter: "Chapter 1"},
		{ID: "tam", Name: "Tam", Info: "Father of [Rand](#rand).", Chapter: "Chapter 2"},
	})
	book2 := writeBook(t, []Record{
		{ID: "rand", Name: "Rand", Info: "The _Dragon_ Reborn.", Chapter: "Chapter 5"},
		{ID: "tam", Name: "Tam", Info: "Still father of [Rand](#rand).", Chapter: "Chapter 9"},
		{ID: "egwene", Name: "Egwene", Info: "Friend of [Rand](#rand).", Chapter: "Chapter 3"},
	})

	g := NewGlossary()
	if err := g.Ingest(book1, "The Eye of the World"); err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if err := g.Ingest(book2, "The Great Hunt"); err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	if want, got := 3, g.Len(); want != got {
		t.Fatalf("Len; want: %d, got: %d", want, got)
	}

	var rand *Entry
	for _, e := range g.Entries() {
		if e.Name == "Rand" {
			rand = e
		}
	}
	if rand == nil {
		t.Fatal("missing entry Rand")
	}

	expectedDefs := []Definition{
		{
			Origin: "The Great Hunt, Chapter 5",
			HTML:   `The <em class="dict-emphasis">Dragon</em> Reborn.`,
		},
		{
			Origin: "The Eye of the World, Chapter 1",
			HTML:   "A shepherd.",
		},
	}
	if diff := cmp.Diff(expectedDefs, rand.Definitions); diff != "" {
		t.Fatalf("definitions (-want, +got):\n%s", diff)
	}

	// Tam links Rand in both books, so it moves to the newer group.
	expectedBacklinks := []BacklinkGroup{
		{
			Book:  "The Great Hunt",
			Names: map[string]struct{}{"Tam": {}, "Egwene": {}},
		},
		{
			Book:  "The Eye of the World",
			Names: map[string]struct{}{},
		},
	}
	if diff := cmp.Diff(expectedBacklinks, rand.Backlinks); diff != "" {
		t.Fatalf("backlinks (-want, +got):\n%s", diff)
	}
}

// TestGlossary_Ingest_foldsNames tests that headwords are whitespace
// folded on ingest.
func TestGlossary_Ingest_foldsNames(t *testing.T) {
	t.Parallel()

	book := writeBook(t, []Record{
		{ID: "rand", Name: "  Rand \t al'Thor ", Info: "A shepherd.", Chapter: "Chapter 1"},
	})

	g := NewGlossary()
	if err := g.Ingest(book, "The Eye of the World"); err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	entries := g.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got: %d", len(entries))
	}
	if want, got := "Rand al'Thor", entries[0].Name; want != got {
		t.Fatalf("Name; want: %q, got: %q", want, got)
	}
}

func TestGlossary_Ingest_missingFile(t *testing.T) {
	t.Parallel()

	g := NewGlossary()
	err := g.Ingest(filepath.Join(t.TempDir(), "book.json"), "The Eye of the World")
	if err == nil {
		t.Fatal("Ingest: expected failure")
	}
}
