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

// Definition is one sourced definition of a glossary entry.
type Definition struct {
	// Origin names the book and chapter the definition comes from.
	Origin string

	// HTML is the definition text with links and emphasis already
	// converted.
	HTML string
}

// BacklinkGroup is the set of entries within one book that link to a
// glossary entry.
type BacklinkGroup struct {
	// Book is the book title.
	Book string

	// Names are the headwords of the linking entries.
	Names map[string]struct{}
}

// Entry is a glossary entry accumulated over one or more books.
// Definitions and backlink groups are ordered newest book first.
type Entry struct {
	// Name is the headword.
	Name string

	// Definitions are the entry's definitions, newest first.
	Definitions []Definition

	// Backlinks are the entry's backlink groups, newest first.
	Backlinks []BacklinkGroup
}
