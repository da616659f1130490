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

// Package folding normalizes headwords and lookup queries.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Whitespace is a [transform.Transformer] that folds whitespace. It
// drops leading and trailing whitespace and collapses each internal
// whitespace run to a single ASCII space.
type Whitespace struct {
	// started is true once a non-whitespace rune has been seen.
	started bool

	// pending is true while inside an internal whitespace run.
	pending bool
}

// Transform implements [transform.Transformer.Transform].
func (t *Whitespace) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if unicode.IsSpace(r) {
			nSrc += size
			// Whitespace runs before the first word are dropped;
			// anything else is held back until the next word so that
			// trailing whitespace is never emitted.
			t.pending = t.started
			continue
		}

		if t.pending {
			if nDst+1 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = ' '
			nDst++
			t.pending = false
		}

		// r may be utf8.RuneError, whose encoded length differs from
		// the decoded size.
		if nDst+utf8.RuneLen(r) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		t.started = true
		nSrc += size
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (t *Whitespace) Reset() {
	*t = Whitespace{}
}

// Fold returns s with whitespace folded.
func Fold(s string) string {
	folded, _, err := transform.String(&Whitespace{}, s)
	if err != nil {
		// The transformer never returns an error for complete input.
		return s
	}
	return folded
}
