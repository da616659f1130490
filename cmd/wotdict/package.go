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

	"github.com/urfave/cli/v2"

	"github.com/khammond/wotdict/pack"
)

var packageCommand = &cli.Command{
	Name:  "package",
	Usage: "Package built dictionaries into zip archives",
	Description: `Produce one zip archive per dictionary subdirectory, named after
the subdirectory and containing its files under flattened names. A
missing dictionary directory produces no archives.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "dicts",
			Usage: "package dictionaries under `DIR`",
			Value: "dicts",
		},
		&cli.StringFlag{
			Name:  "out",
			Usage: "write archives to `DIR`",
			Value: ".",
		},
	},
	Action: func(c *cli.Context) error {
		archives, err := pack.Package(c.String("dicts"), c.String("out"))
		if err != nil {
			return err
		}

		for _, archive := range archives {
			fmt.Fprintln(c.App.Writer, archive)
		}

		return nil
	},
}
