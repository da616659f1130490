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
	"regexp"
	"strings"
)

var (
	parenthesized = regexp.MustCompile(`^([^(]*[^( ]) *\(([^)]*)\) *(.*)`)
	prefixed      = regexp.MustCompile(`^[a-z]{1,2}'(.*)`)
)

// altWords returns the alternate search words for a headword. The
// headword itself is not included. Every variant also gets a lowercase
// double, needed at least in koreader for lower-case lookups that
// otherwise exactly match the full name.
func altWords(word string) []string {
	base := []string{word}

	if m := parenthesized.FindStringSubmatch(word); m != nil {
		if m[3] != "" {
			// Robert (Bob) Jordan -> Bob Jordan
			base = append(base, m[2]+" "+m[3])
		} else {
			// Robert (of Jordan) -> Robert of Jordan
			base = append(base, m[1]+" "+m[2])
		}
		// Robert (Bob) Jordan -> Robert Jordan
		base = append(base, m[1]+" "+m[3])
	}

	for _, w := range strings.Split(word, " ") {
		// Paranoia check for empty parens.
		ww := strings.Trim(w, "()")
		if ww == "" {
			continue
		}
		// Words like "of" and "al" end up in the dictionary too. That
		// doesn't get in the way unless someone tries to look one up,
		// so there is no explicit filter.
		base = append(base, ww)
		// al'Jordan -> Jordan
		if m := prefixed.FindStringSubmatch(ww); m != nil {
			base = append(base, m[1])
		}
	}

	seen := map[string]bool{word: true}
	var alts []string
	add := func(w string) {
		w = strings.TrimSpace(w)
		if w == "" || seen[w] {
			return
		}
		seen[w] = true
		alts = append(alts, w)
	}
	for _, w := range base {
		add(w)
		add(strings.ToLower(w))
	}

	return alts
}
