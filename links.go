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
	"fmt"
	"regexp"
	"strings"
)

var emphasisPattern = regexp.MustCompile(`_([^ ]+)_`)

// linkPattern matches markdown links targeting one record anchor and
// resolves them to the record's name.
type linkPattern struct {
	id      string
	name    string
	pattern *regexp.Regexp
}

// linkSet maps record anchors to names across all books read so far.
//
// This seems backwards, but at least one name appears in two book data
// files with a different id. What is really needed is to find the name
// for a given id link, so patterns are keyed by id and a later book's
// name wins for a duplicated id.
type linkSet struct {
	byID     map[string]*linkPattern
	patterns []*linkPattern
}

func newLinkSet() *linkSet {
	return &linkSet{
		byID: map[string]*linkPattern{},
	}
}

// add compiles link patterns for all records of one book and merges
// them into the set.
func (ls *linkSet) add(records []Record) {
	for _, rec := range records {
		if p, ok := ls.byID[rec.ID]; ok {
			p.name = rec.Name
			continue
		}
		p := &linkPattern{
			id:      rec.ID,
			name:    rec.Name,
			pattern: regexp.MustCompile(`\[([^]]*)\]\(#` + regexp.QuoteMeta(rec.ID) + `\)`),
		}
		ls.byID[rec.ID] = p
		ls.patterns = append(ls.patterns, p)
	}
}

// convert rewrites record links and markdown emphasis in a definition
// to HTML. Lookup tools such as sdcv and koreader need the bword link
// target verbatim, neither html escaped nor url escaped.
func (ls *linkSet) convert(defi string) string {
	for _, p := range ls.patterns {
		repl := fmt.Sprintf(`<a class="dict-internal-link" href="bword://%s">${1}</a>`,
			strings.ReplaceAll(p.name, "$", "$$"))
		defi = p.pattern.ReplaceAllString(defi, repl)
	}
	return emphasisPattern.ReplaceAllString(defi, `<em class="dict-emphasis">${1}</em>`)
}

// backlinks returns the names of the given book's records whose
// definitions link to name.
func (ls *linkSet) backlinks(name string, records []Record) map[string]struct{} {
	var patterns []*regexp.Regexp
	for _, p := range ls.patterns {
		if p.name == name {
			patterns = append(patterns, p.pattern)
		}
	}

	links := map[string]struct{}{}
	for _, rec := range records {
		for _, p := range patterns {
			if p.MatchString(rec.Info) {
				links[rec.Name] = struct{}{}
				break
			}
		}
	}
	return links
}
