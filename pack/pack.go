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

// Package pack bundles built dictionaries into per-dictionary zip
// archives suitable for upload.
//
// Each immediate subdirectory of the packaging root corresponds to one
// dictionary and produces one archive named after the subdirectory.
// Archive entries are named by base name only with all directory
// components stripped.
package pack

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// ErrNotDirectory indicates that the packaging root exists but is not
// a directory.
var ErrNotDirectory = errors.New("not a directory")

// Package writes one zip archive per immediate subdirectory of root
// into outDir and returns the paths of the archives written, sorted by
// name.
//
// A missing root is not an error: the build step simply produced no
// dictionaries and zero archives are written. A root that exists but
// is not a directory returns an error wrapping ErrNotDirectory. Any
// read or write failure aborts immediately.
func Package(root, outDir string) ([]string, error) {
	info, err := os.Stat(root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrNotDirectory, root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", root, err)
	}

	var archives []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		archive := filepath.Join(outDir, e.Name()+".zip")
		if err := writeArchive(archive, filepath.Join(root, e.Name())); err != nil {
			return nil, err
		}
		archives = append(archives, archive)
	}

	sort.Strings(archives)
	return archives, nil
}

// writeArchive writes a zip archive containing every regular file
// found under dir, each entry named by the file's base name only. When
// two files share a base name after stripping directory components the
// one encountered later in the walk wins.
func writeArchive(archive, dir string) (err error) {
	files := map[string]string{}
	if err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files[d.Name()] = path
		}
		return nil
	}); err != nil {
		return fmt.Errorf("reading %q: %w", dir, err)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	f, err := os.Create(archive)
	if err != nil {
		return fmt.Errorf("creating %q: %w", archive, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %q: %w", archive, cerr)
		}
	}()

	zw := zip.NewWriter(f)
	for _, name := range names {
		if err := addFile(zw, name, files[name]); err != nil {
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("writing %q: %w", archive, err)
	}

	return nil
}

// addFile copies one source file into the archive under its base name.
func addFile(zw *zip.Writer, name, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %q: %w", path, err)
	}
	defer src.Close()

	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("creating archive entry %q: %w", name, err)
	}
	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("archiving %q: %w", path, err)
	}

	return nil
}
