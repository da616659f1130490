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
	"os"
	"path/filepath"

	"github.com/khammond/wotdict/stardict"
)

// WriteOptions are options for writing a glossary out as a stardict
// dictionary.
type WriteOptions struct {
	// Dictzip compresses the .dict file. koreader is fine with a
	// compressed .dict but won't read a compressed .syn, which is
	// never compressed here.
	Dictzip bool
}

// WriteDict writes the glossary as a stardict dictionary under dir
// using the given base name, along with the dictionary stylesheet.
func (g *Glossary) WriteDict(dir, basename, title, author string, opts *WriteOptions) error {
	if opts == nil {
		opts = &WriteOptions{}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %q: %w", dir, err)
	}

	words := make([]*stardict.Word, 0, g.Len())
	for _, e := range g.Entries() {
		words = append(words, &stardict.Word{
			Word:       e.Name,
			Alternates: altWords(e.Name),
			Data:       []byte(e.article(basename)),
		})
	}

	info := &stardict.Info{
		Bookname: title,
		Author:   author,
	}
	if err := stardict.Write(dir, basename, info, words, &stardict.WriteOptions{
		Dictzip: opts.Dictzip,
	}); err != nil {
		return fmt.Errorf("writing dictionary %q: %w", basename, err)
	}

	cssPath := filepath.Join(dir, basename+".css")
	if err := os.WriteFile(cssPath, []byte(StyleSheet), 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", cssPath, err)
	}

	return nil
}
