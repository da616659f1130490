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

package stardict

import "strings"

// Compare orders index words the way stardict tools expect: an ASCII
// case-insensitive comparison with a bytewise comparison as tiebreak.
// This matches g_ascii_strcasecmp followed by strcmp, which is the
// ordering lookup tools use for their binary search over the .idx file.
func Compare(a, b string) int {
	if c := asciiCaseCompare(a, b); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// asciiCaseCompare compares two strings bytewise, lowercasing only the
// ASCII letters A-Z. Multibyte sequences are compared as raw bytes.
func asciiCaseCompare(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		ca, cb := lowerASCII(a[i]), lowerASCII(b[i])
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
