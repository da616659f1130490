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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/khammond/wotdict/stardict"
)

var listCommand = &cli.Command{
	Name:      "list",
	Usage:     "List built dictionaries",
	ArgsUsage: "[DIR]",
	Action: func(c *cli.Context) error {
		dir := c.Args().First()
		if dir == "" {
			dir = "dicts"
		}

		dicts, errs := stardict.OpenAll(dir)
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, err)
		}

		tbl := table.New("Name", "Words", "Synonyms", "Index Size").WithWriter(c.App.Writer)
		for _, d := range dicts {
			tbl.AddRow(d.Bookname(), d.WordCount(), d.SynWordCount(), d.IdxFileSize())
		}
		tbl.Print()

		if len(errs) > 0 {
			return fmt.Errorf("%w: %d dictionaries could not be opened", ErrWotdict, len(errs))
		}

		return nil
	},
}
