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
	"fmt"
	"os"
)

// Record is one glossary record in a book data file.
type Record struct {
	// ID is the record's link anchor within the book.
	ID string `json:"id"`

	// Name is the glossary headword.
	Name string `json:"name"`

	// Info is the definition text. It may contain markdown-style
	// emphasis and links to other records of the form [label](#id).
	Info string `json:"info"`

	// Chapter is the chapter the record was collected from.
	Chapter string `json:"chapter"`
}

// ReadBook reads the glossary records of one book data file.
func ReadBook(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	var records []Record
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	return records, nil
}
