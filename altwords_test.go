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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAltWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		word string

		expected []string
	}{
		{
			name: "single word",
			word: "Trolloc",

			expected: []string{"trolloc"},
		},
		{
			name: "nickname in parens",
			word: "Robert (Bob) Jordan",

			expected: []string{
				"robert (bob) jordan",
				"Bob Jordan",
				"bob jordan",
				"Robert Jordan",
				"robert jordan",
				"Robert",
				"robert",
				"Bob",
				"bob",
				"Jordan",
				"jordan",
			},
		},
		{
			name: "trailing parens",
			word: "Robert (of Jordan)",

			expected: []string{
				"robert (of jordan)",
				"Robert of Jordan",
				"robert of jordan",
				"Robert",
				"robert",
				"of",
				"Jordan",
				"jordan",
			},
		},
		{
			name: "apostrophe prefix",
			word: "al'Jordan",

			expected: []string{
				"al'jordan",
				"Jordan",
				"jordan",
			},
		},
		{
			name: "possessive is not a prefix",
			word: "Emond's Field",

			expected: []string{
				"emond's field",
				"Emond's",
				"emond's",
				"Field",
				"field",
			},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := altWords(test.word)
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("altWords(%q) (-want, +got):\n%s", test.word, diff)
			}
		})
	}
}
