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

package main

import (
	"fmt"
	"os"

	"github.com/k3a/html2text"
	"github.com/urfave/cli/v2"

	"github.com/khammond/wotdict/internal/folding"
	"github.com/khammond/wotdict/internal/index"
	"github.com/khammond/wotdict/stardict"
)

var lookupCommand = &cli.Command{
	Name:      "lookup",
	Usage:     "Look up a word in built dictionaries",
	ArgsUsage: "DIR WORD",
	Description: `Look up a word in all dictionaries under a directory and print
matching articles as text. Headwords and synonyms both match, ignoring
case and extra whitespace.`,
	Action: func(c *cli.Context) error {
		if c.NArg() != 2 {
			return fmt.Errorf("%w: expected DIR and WORD arguments", ErrFlagParse)
		}
		dir := c.Args().Get(0)
		query := folding.Fold(c.Args().Get(1))

		dicts, errs := stardict.OpenAll(dir)
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, err)
		}

		for _, d := range dicts {
			if err := lookup(c, d, query); err != nil {
				return err
			}
		}

		if len(errs) > 0 {
			return fmt.Errorf("%w: %d dictionaries could not be opened", ErrWotdict, len(errs))
		}

		return nil
	},
}

// lookup prints all of a dictionary's articles matching the query.
func lookup(c *cli.Context, d *stardict.Dict, query string) error {
	words, err := d.Words()
	if err != nil {
		return err
	}
	syns, err := d.Synonyms()
	if err != nil {
		return err
	}

	entries := make([]index.Entry[*stardict.IndexWord], 0, len(words)+len(syns))
	for _, w := range words {
		entries = append(entries, index.Entry[*stardict.IndexWord]{Key: w.Word, Value: w})
	}
	for _, s := range syns {
		if int(s.Index) < len(words) {
			entries = append(entries, index.Entry[*stardict.IndexWord]{Key: s.Word, Value: words[s.Index]})
		}
	}

	idx := index.New(entries, stardict.Compare)

	seen := map[*stardict.IndexWord]bool{}
	for _, w := range idx.Search(query) {
		// A headword and its synonyms may all match the query.
		if seen[w] {
			continue
		}
		seen[w] = true

		article, err := d.Article(w)
		if err != nil {
			return err
		}

		fmt.Fprintln(c.App.Writer, d.Bookname())
		fmt.Fprintln(c.App.Writer)
		fmt.Fprintln(c.App.Writer, w.Word)
		fmt.Fprintln(c.App.Writer, html2text.HTML2Text(string(article)))
	}

	return nil
}
