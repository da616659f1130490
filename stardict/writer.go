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
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/ianlewis/go-dictzip"
)

// ifoMagic is the magic string on the first line of every .ifo file.
const ifoMagic = "StarDict's dict ifo file"

// formatVersion is the dictionary format version written to new
// dictionaries. Offsets are always written as 32-bit integers.
const formatVersion = "3.0.0"

// ErrNoBookname indicates that dictionary metadata is missing the
// required bookname.
var ErrNoBookname = errors.New("missing bookname")

// ErrDictTooLarge indicates that article data exceeds what 32-bit
// offsets can address.
var ErrDictTooLarge = errors.New("dictionary too large")

// Word is a single dictionary entry to be written. The headword is
// written to the .idx file and the alternates, if any, are written to
// the .syn file referencing the headword.
type Word struct {
	// Word is the headword.
	Word string

	// Alternates are additional search words resolving to this entry.
	Alternates []string

	// Data is the article data.
	Data []byte
}

// Info is dictionary metadata written to the .ifo file.
type Info struct {
	// Bookname is the dictionary name. Required.
	Bookname string

	// Author is the dictionary author.
	Author string

	// Description is a short dictionary description.
	Description string

	// SameTypeSequence is the data type of every article. It defaults
	// to 'h' (HTML).
	SameTypeSequence byte
}

func (i *Info) sameTypeSequence() byte {
	if i.SameTypeSequence == 0 {
		return 'h'
	}
	return i.SameTypeSequence
}

// WriteOptions are options for writing a dictionary.
type WriteOptions struct {
	// Dictzip compresses the .dict file using the dictzip format,
	// producing a .dict.dz file instead of .dict.
	Dictzip bool
}

type synEntry struct {
	word  string
	index uint32
}

// Write writes a dictionary to dir under the given base name. Words
// are sorted into index order before writing so callers may pass them
// in any order. A .syn file is only produced when at least one word
// has alternates.
func Write(dir, basename string, info *Info, words []*Word, opts *WriteOptions) error {
	if info == nil || info.Bookname == "" {
		return ErrNoBookname
	}
	if opts == nil {
		opts = &WriteOptions{}
	}

	sorted := make([]*Word, len(words))
	copy(sorted, words)
	slices.SortStableFunc(sorted, func(a, b *Word) int {
		return Compare(a.Word, b.Word)
	})

	var dictBuf, idxBuf bytes.Buffer
	for _, w := range sorted {
		offset := dictBuf.Len()
		if offset+len(w.Data) > math.MaxUint32 {
			return fmt.Errorf("%w: %q", ErrDictTooLarge, basename)
		}
		dictBuf.Write(w.Data)

		idxBuf.WriteString(w.Word)
		idxBuf.WriteByte(0)
		var b [8]byte
		binary.BigEndian.PutUint32(b[:4], uint32(offset))
		binary.BigEndian.PutUint32(b[4:], uint32(len(w.Data)))
		idxBuf.Write(b[:])
	}

	var syn []synEntry
	for i, w := range sorted {
		for _, alt := range w.Alternates {
			if alt == "" {
				continue
			}
			syn = append(syn, synEntry{word: alt, index: uint32(i)})
		}
	}
	slices.SortStableFunc(syn, func(a, b synEntry) int {
		return Compare(a.word, b.word)
	})

	if err := writeDictFile(dir, basename, dictBuf.Bytes(), opts.Dictzip); err != nil {
		return err
	}

	idxPath := filepath.Join(dir, basename+".idx")
	if err := os.WriteFile(idxPath, idxBuf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", idxPath, err)
	}

	if len(syn) > 0 {
		var synBuf bytes.Buffer
		for _, s := range syn {
			synBuf.WriteString(s.word)
			synBuf.WriteByte(0)
			var b [4]byte
			binary.BigEndian.PutUint32(b[:], s.index)
			synBuf.Write(b[:])
		}
		synPath := filepath.Join(dir, basename+".syn")
		if err := os.WriteFile(synPath, synBuf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("writing %q: %w", synPath, err)
		}
	}

	var ifoBuf bytes.Buffer
	ifoBuf.WriteString(ifoMagic + "\n")
	ifoBuf.WriteString("version=" + formatVersion + "\n")
	ifoBuf.WriteString("bookname=" + info.Bookname + "\n")
	ifoBuf.WriteString("wordcount=" + strconv.Itoa(len(sorted)) + "\n")
	if len(syn) > 0 {
		ifoBuf.WriteString("synwordcount=" + strconv.Itoa(len(syn)) + "\n")
	}
	ifoBuf.WriteString("idxfilesize=" + strconv.Itoa(idxBuf.Len()) + "\n")
	if info.Author != "" {
		ifoBuf.WriteString("author=" + info.Author + "\n")
	}
	if info.Description != "" {
		ifoBuf.WriteString("description=" + info.Description + "\n")
	}
	ifoBuf.WriteString("sametypesequence=")
	ifoBuf.WriteByte(info.sameTypeSequence())
	ifoBuf.WriteByte('\n')

	ifoPath := filepath.Join(dir, basename+".ifo")
	if err := os.WriteFile(ifoPath, ifoBuf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", ifoPath, err)
	}

	return nil
}

// writeDictFile writes the article data, optionally compressed with
// dictzip so that readers retain random access to articles.
func writeDictFile(dir, basename string, data []byte, useDictzip bool) (err error) {
	if !useDictzip {
		dictPath := filepath.Join(dir, basename+".dict")
		if err := os.WriteFile(dictPath, data, 0o644); err != nil {
			return fmt.Errorf("writing %q: %w", dictPath, err)
		}
		return nil
	}

	dictPath := filepath.Join(dir, basename+".dict.dz")
	f, err := os.Create(dictPath)
	if err != nil {
		return fmt.Errorf("creating %q: %w", dictPath, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %q: %w", dictPath, cerr)
		}
	}()

	z, err := dictzip.NewWriter(f)
	if err != nil {
		return fmt.Errorf("creating dictzip writer for %q: %w", dictPath, err)
	}
	if _, err := z.Write(data); err != nil {
		return fmt.Errorf("writing %q: %w", dictPath, err)
	}
	if err := z.Close(); err != nil {
		return fmt.Errorf("closing dictzip writer for %q: %w", dictPath, err)
	}

	return nil
}
