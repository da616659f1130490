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
	"github.com/khammond/wotdict/internal/folding"
)

// Glossary accumulates glossary entries over one or more books.
type Glossary struct {
	entries map[string]*Entry
	order   []string
	links   *linkSet
}

// NewGlossary returns an empty glossary.
func NewGlossary() *Glossary {
	return &Glossary{
		entries: map[string]*Entry{},
		links:   newLinkSet(),
	}
}

// Len returns the number of entries in the glossary.
func (g *Glossary) Len() int {
	return len(g.entries)
}

// Entries returns the glossary entries in the order their headwords
// were first seen.
func (g *Glossary) Entries() []*Entry {
	entries := make([]*Entry, 0, len(g.order))
	for _, name := range g.order {
		entries = append(entries, g.entries[name])
	}
	return entries
}

// Ingest reads one book's records into the glossary. The link patterns
// of the book are merged into the glossary before definitions are
// converted, so links within the book resolve even on first read.
//
// A record whose headword is already present prepends its definition
// to the entry. The new backlink group is prepended as well and its
// names are subtracted from the groups of earlier books so each name
// is only listed under the most recent book that links to the entry.
func (g *Glossary) Ingest(path, bookTitle string) error {
	records, err := ReadBook(path)
	if err != nil {
		return err
	}

	for i := range records {
		records[i].Name = folding.Fold(records[i].Name)
	}

	g.links.add(records)

	for _, rec := range records {
		backlinks := g.links.backlinks(rec.Name, records)
		def := Definition{
			Origin: bookTitle + ", " + rec.Chapter,
			HTML:   g.links.convert(rec.Info),
		}

		e, ok := g.entries[rec.Name]
		if !ok {
			g.entries[rec.Name] = &Entry{
				Name:        rec.Name,
				Definitions: []Definition{def},
				Backlinks: []BacklinkGroup{
					{Book: bookTitle, Names: backlinks},
				},
			}
			g.order = append(g.order, rec.Name)
			continue
		}

		e.Definitions = append([]Definition{def}, e.Definitions...)
		for _, group := range e.Backlinks {
			for name := range backlinks {
				delete(group.Names, name)
			}
		}
		e.Backlinks = append([]BacklinkGroup{
			{Book: bookTitle, Names: backlinks},
		}, e.Backlinks...)
	}

	return nil
}
