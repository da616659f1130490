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
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/khammond/wotdict"
)

var buildCommand = &cli.Command{
	Name:  "build",
	Usage: "Build the compendium dictionaries",
	Description: `Build one dictionary per configured book plus one cumulative
dictionary per book covering it and all books before it. Each
dictionary is written to its own subdirectory of the output directory.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "read the book list from `FILE`",
			Aliases: []string{"c"},
			Value:   "books.yaml",
		},
		&cli.BoolFlag{
			Name:  "dictzip",
			Usage: "compress article data with dictzip",
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := wotdict.LoadConfig(c.String("config"))
		if err != nil {
			return err
		}

		opts := &wotdict.WriteOptions{
			Dictzip: c.Bool("dictzip"),
		}

		cumulative := wotdict.NewGlossary()
		for _, b := range cfg.Books {
			fmt.Fprintf(c.App.Writer, "Converting %s %s\n", b.Number, b.Title)

			path := cfg.BookPath(b)
			title := cfg.DictTitle(b)

			if err := cumulative.Ingest(path, b.Title); err != nil {
				return err
			}
			base := b.CumulativeBase()
			if err := cumulative.WriteDict(filepath.Join(cfg.OutputDir, base), base, title, cfg.Author, opts); err != nil {
				return err
			}

			single := wotdict.NewGlossary()
			if err := single.Ingest(path, b.Title); err != nil {
				return err
			}
			base = b.SingleBase()
			if err := single.WriteDict(filepath.Join(cfg.OutputDir, base), base, title, cfg.Author, opts); err != nil {
				return err
			}
		}

		return nil
	},
}
