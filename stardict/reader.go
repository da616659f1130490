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

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ianlewis/go-dictzip"
)

// IndexWord is an .idx file entry.
type IndexWord struct {
	// Word is the headword.
	Word string

	// Offset is the article offset in the .dict file.
	Offset uint32

	// Size is the article size in the .dict file.
	Size uint32
}

// SynWord is a .syn file entry.
type SynWord struct {
	// Word is the synonym word.
	Word string

	// Index is the index of the original word in the .idx file.
	Index uint32
}

// Dict is a stardict dictionary opened for reading.
type Dict struct {
	ifoPath string

	bookname     string
	author       string
	description  string
	version      string
	wordcount    int64
	synwordcount int64
	idxfilesize  int64

	sameTypeSequence string
}

// OpenAll opens all dictionaries under a directory. It returns all
// successfully opened dictionaries along with any errors that
// occurred.
func OpenAll(path string) ([]*Dict, []error) {
	var dicts []*Dict
	var errs []error
	if err := filepath.WalkDir(path, func(path string, info fs.DirEntry, err error) error {
		// Walking the file path will ignore errors.
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if !info.IsDir() && strings.EqualFold(filepath.Ext(info.Name()), ".ifo") {
			d, err := Open(path)
			if err != nil {
				errs = append(errs, err)
				return nil
			}
			dicts = append(dicts, d)
		}
		return nil
	}); err != nil {
		errs = append(errs, err)
		return nil, errs
	}
	return dicts, errs
}

// Open opens a dictionary from the given .ifo file path.
func Open(path string) (*Dict, error) {
	if ext := filepath.Ext(path); !strings.EqualFold(ext, ".ifo") {
		return nil, fmt.Errorf("bad extension: %v", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	metadata, err := readIfo(f)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	d := &Dict{
		ifoPath:          path,
		bookname:         metadata["bookname"],
		author:           metadata["author"],
		description:      metadata["description"],
		version:          metadata["version"],
		sameTypeSequence: metadata["sametypesequence"],
	}

	switch d.version {
	case "2.4.2", "3.0.0":
	default:
		return nil, fmt.Errorf("invalid version: %v", d.version)
	}

	if d.bookname == "" {
		return nil, fmt.Errorf("%q: %w", path, ErrNoBookname)
	}

	d.wordcount, err = strconv.ParseInt(metadata["wordcount"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad wordcount: %w", err)
	}

	d.idxfilesize, err = strconv.ParseInt(metadata["idxfilesize"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad idxfilesize: %w", err)
	}

	if synwordcount := metadata["synwordcount"]; synwordcount != "" {
		d.synwordcount, err = strconv.ParseInt(synwordcount, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad synwordcount: %w", err)
		}
	}

	return d, nil
}

// readIfo parses .ifo key=value metadata.
func readIfo(r io.Reader) (map[string]string, error) {
	metadata := map[string]string{}
	s := bufio.NewScanner(bufio.NewReader(r))
	if s.Scan() {
		if s.Text() != ifoMagic {
			return nil, fmt.Errorf("bad magic data")
		}
	}

	i := 0
	for s.Scan() {
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("invalid line: %q", line)
		}
		key = strings.TrimRight(key, " ")
		if i == 0 && key != "version" {
			return nil, fmt.Errorf("missing version")
		}
		metadata[key] = strings.TrimLeft(value, " ")
		i++
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	return metadata, nil
}

// Bookname returns the dictionary name.
func (d *Dict) Bookname() string {
	return d.bookname
}

// Author returns the dictionary author.
func (d *Dict) Author() string {
	return d.author
}

// Description returns the dictionary description.
func (d *Dict) Description() string {
	return d.description
}

// WordCount returns the dictionary word count.
func (d *Dict) WordCount() int64 {
	return d.wordcount
}

// SynWordCount returns the dictionary synonym count.
func (d *Dict) SynWordCount() int64 {
	return d.synwordcount
}

// IdxFileSize returns the size of the dictionary index in bytes.
func (d *Dict) IdxFileSize() int64 {
	return d.idxfilesize
}

// Words reads the dictionary index.
func (d *Dict) Words() ([]*IndexWord, error) {
	r, path, err := openSibling(d.ifoPath, []string{".idx", ".idx.gz", ".IDX", ".IDX.GZ"})
	if err != nil {
		return nil, err
	}
	defer r.Close()

	s := bufio.NewScanner(bufio.NewReader(r))
	s.Split(splitIndex)

	var words []*IndexWord
	for s.Scan() {
		b := s.Bytes()
		i := bytes.IndexByte(b, 0)
		if i < 0 || len(b) < i+9 {
			return nil, fmt.Errorf("truncated index entry in %q", path)
		}
		words = append(words, &IndexWord{
			Word:   string(b[:i]),
			Offset: binary.BigEndian.Uint32(b[i+1:]),
			Size:   binary.BigEndian.Uint32(b[i+5:]),
		})
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	return words, nil
}

// Synonyms reads the synonym index. It returns nil if the dictionary
// has no .syn file.
func (d *Dict) Synonyms() ([]*SynWord, error) {
	if d.synwordcount == 0 {
		return nil, nil
	}

	r, path, err := openSibling(d.ifoPath, []string{".syn", ".syn.gz", ".SYN", ".SYN.GZ"})
	if err != nil {
		return nil, err
	}
	defer r.Close()

	s := bufio.NewScanner(bufio.NewReader(r))
	s.Split(splitSyn)

	var words []*SynWord
	for s.Scan() {
		b := s.Bytes()
		i := bytes.IndexByte(b, 0)
		if i < 0 || len(b) < i+5 {
			return nil, fmt.Errorf("truncated synonym entry in %q", path)
		}
		words = append(words, &SynWord{
			Word:  string(b[:i]),
			Index: binary.BigEndian.Uint32(b[i+1:]),
		})
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	return words, nil
}

// Article reads the article data for the given index word from the
// .dict or .dict.dz file.
func (d *Dict) Article(w *IndexWord) ([]byte, error) {
	baseName := strings.TrimSuffix(d.ifoPath, filepath.Ext(d.ifoPath))

	exts := []string{".dict", ".dict.dz", ".DICT", ".DICT.DZ"}
	var dictPath string
	for _, ext := range exts {
		if _, err := os.Stat(baseName + ext); err == nil {
			dictPath = baseName + ext
			break
		}
	}
	if dictPath == "" {
		return nil, fmt.Errorf("no dict found for %q", d.ifoPath)
	}

	f, err := os.Open(dictPath)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", dictPath, err)
	}
	defer f.Close()

	b := make([]byte, w.Size)
	if strings.EqualFold(filepath.Ext(dictPath), ".dz") {
		z, err := dictzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", dictPath, err)
		}
		if _, err := z.ReadAt(b, int64(w.Offset)); err != nil {
			return nil, fmt.Errorf("reading %q: %w", dictPath, err)
		}
		return b, nil
	}

	if _, err := f.Seek(int64(w.Offset), io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking %q: %w", dictPath, err)
	}
	if _, err := io.ReadFull(f, b); err != nil {
		return nil, fmt.Errorf("reading %q: %w", dictPath, err)
	}

	return b, nil
}

// openSibling opens the first file next to the .ifo file matching one
// of the given extensions, transparently decompressing gzip.
func openSibling(ifoPath string, exts []string) (io.ReadCloser, string, error) {
	baseName := strings.TrimSuffix(ifoPath, filepath.Ext(ifoPath))

	var path string
	for _, ext := range exts {
		if _, err := os.Stat(baseName + ext); err == nil {
			path = baseName + ext
			break
		}
	}
	if path == "" {
		return nil, "", fmt.Errorf("no %v file found for %q", exts[0], ifoPath)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("opening %q: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".gz") {
		z, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, "", fmt.Errorf("opening %q: %w", path, err)
		}
		return &gzipReadCloser{z: z, f: f}, path, nil
	}

	return f, path, nil
}

type gzipReadCloser struct {
	z *gzip.Reader
	f *os.File
}

func (r *gzipReadCloser) Read(p []byte) (int, error) {
	return r.z.Read(p)
}

func (r *gzipReadCloser) Close() error {
	if err := r.z.Close(); err != nil {
		r.f.Close()
		return err
	}
	return r.f.Close()
}

// splitIndex splits an index entry in the .idx file.
func splitIndex(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		// Found zero byte. The entry is the word, the terminator, and
		// two 32-bit integers.
		tokenSize := i + 9
		if len(data) >= tokenSize {
			return tokenSize, data[:tokenSize], nil
		}
	}

	if atEOF {
		return len(data), data, nil
	}

	// Request more data.
	return 0, nil, nil
}

// splitSyn splits a synonym entry in the .syn file.
func splitSyn(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		// Found zero byte. The entry is the word, the terminator, and
		// the 32-bit original word index.
		tokenSize := i + 5
		if len(data) >= tokenSize {
			return tokenSize, data[:tokenSize], nil
		}
	}

	if atEOF {
		return len(data), data, nil
	}

	// Request more data.
	return 0, nil, nil
}
