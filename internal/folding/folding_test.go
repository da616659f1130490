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

package folding

import "testing"

func TestFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    string

		expected string
	}{
		{
			name: "empty",
			s:    "",

			expected: "",
		},
		{
			name: "no whitespace",
			s:    "Rand",

			expected: "Rand",
		},
		{
			name: "leading whitespace",
			s:    " \t　Rand",

			expected: "Rand",
		},
		{
			name: "trailing whitespace",
			s:    "Rand \t　",

			expected: "Rand",
		},
		{
			name: "internal whitespace run",
			s:    "Rand \t al'Thor",

			expected: "Rand al'Thor",
		},
		{
			name: "only whitespace",
			s:    " \t ",

			expected: "",
		},
		{
			name: "unicode space",
			s:    "Rand al'Thor",

			expected: "Rand al'Thor",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if got := Fold(test.s); got != test.expected {
				t.Fatalf("Fold(%q); want: %q, got: %q", test.s, test.expected, got)
			}
		})
	}
}
