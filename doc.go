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

// Package wotdict builds Wheel of Time compendium dictionaries.
//
// Each book of the series has a data file containing glossary records.
// Records are collected into a glossary, which resolves internal links
// between records, discovers backlinks, and renders each entry as an
// HTML article. Glossaries are written out as stardict dictionaries,
// one per book plus one cumulative dictionary covering all books read
// so far, so that a reader partway through the series can use a
// dictionary free of spoilers from later books.
package wotdict
