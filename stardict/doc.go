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

// Package stardict writes and reads stardict dictionaries.
//
// A stardict dictionary consists of several files sharing a base name:
//  1. An .ifo file containing metadata about the dictionary.
//  2. An .idx file containing the sorted index. Each index entry is a
//     utf-8 word terminated by a null byte followed by the offset and
//     size of the word's article in the .dict file, both 32-bit
//     integers in network byte order.
//  3. A .dict file containing the article data. The dict file may be
//     compressed using the dictzip format (.dict.dz).
//  4. An optional .syn file containing synonyms. Each entry is a utf-8
//     word terminated by a null byte followed by the 32-bit index of
//     the original word in the .idx file.
//
// More info on the dictionary format can be found at this URL:
// https://github.com/huzheng001/stardict-3/blob/master/dict/doc/StarDictFileFormat
package stardict
