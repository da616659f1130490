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
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates an invalid build configuration.
var ErrInvalidConfig = errors.New("invalid config")

// Book identifies one book of the series in the build configuration.
type Book struct {
	// Number is the book's two-digit number used in file names.
	Number string `yaml:"number"`

	// Title is the book title.
	Title string `yaml:"title"`
}

// SingleBase is the dictionary base name for the book alone.
func (b Book) SingleBase() string {
	return "wot-book-" + b.Number
}

// CumulativeBase is the dictionary base name for the book and all
// books before it.
func (b Book) CumulativeBase() string {
	return "wot-cumulative-book-" + b.Number
}

// Config is the build configuration. The book list order is the build
// order, which also determines what the cumulative dictionaries
// contain. Note that New Spring ("00") is a prequel usually read
// between books 10 and 11, which is where the shipped configuration
// places it.
type Config struct {
	// Title is the dictionary title prefix.
	Title string `yaml:"title"`

	// Author is the dictionary author metadata.
	Author string `yaml:"author"`

	// DataDir is the directory containing the book data files.
	DataDir string `yaml:"data_dir"`

	// OutputDir is the directory dictionaries are written under, one
	// subdirectory per dictionary.
	OutputDir string `yaml:"output_dir"`

	// Books is the ordered book list.
	Books []Book `yaml:"books"`
}

// BookPath is the path of the book's data file.
func (c *Config) BookPath(b Book) string {
	return filepath.Join(c.DataDir, "book-"+b.Number+".json")
}

// DictTitle is the title of the book's dictionaries.
func (c *Config) DictTitle(b Book) string {
	return fmt.Sprintf("%s %s: %s", c.Title, b.Number, b.Title)
}

// LoadConfig reads and validates a build configuration file.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}

	if c.DataDir == "" {
		c.DataDir = filepath.Join("assets", "data")
	}
	if c.OutputDir == "" {
		c.OutputDir = "dicts"
	}

	if c.Title == "" {
		return nil, fmt.Errorf("%w: missing title", ErrInvalidConfig)
	}
	if len(c.Books) == 0 {
		return nil, fmt.Errorf("%w: no books", ErrInvalidConfig)
	}

	numbers := map[string]bool{}
	for _, b := range c.Books {
		if b.Number == "" || b.Title == "" {
			return nil, fmt.Errorf("%w: book entries need a number and a title", ErrInvalidConfig)
		}
		if numbers[b.Number] {
			return nil, fmt.Errorf("%w: duplicate book number %q", ErrInvalidConfig, b.Number)
		}
		numbers[b.Number] = true
	}

	return &c, nil
}
