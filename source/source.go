// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package source provides source files and positions within them.
//
// Positions are byte offsets everywhere inside the compiler; a [File] turns
// an offset into a user-displayable [Location] on demand.
package source

import (
	"slices"
	"strings"
	"sync"
)

// File is a source code file.
//
// It contains the book-keeping needed to resolve byte offsets into editor
// coordinates.
//
// A nil *File behaves like an empty file with the path "".
type File struct {
	path, text string

	once sync.Once
	// A prefix sum of the line lengths of text. Given a byte offset, the
	// line containing it is recovered with a binary search on this slice.
	//
	// Equivalently, this is the index after each \n in the original file.
	lineIndex []int
}

// NewFile constructs a new source file.
func NewFile(path, text string) *File {
	return &File{path: path, text: text}
}

// Path returns this file's filesystem path.
//
// It does not need to be a real path; it only identifies the file in
// diagnostics.
func (f *File) Path() string {
	if f == nil {
		return ""
	}

	return f.path
}

// Text returns this file's textual contents.
func (f *File) Text() string {
	if f == nil {
		return ""
	}

	return f.text
}

// Span returns a span over this file.
func (f *File) Span(start, end int) Span {
	if f == nil {
		return Span{}
	}

	return Span{f, start, end}
}

// Location resolves a byte offset into a full [Location].
//
// Columns are measured in terminal cells; see [Location.Column]. This
// operation is O(log n).
func (f *File) Location(offset int) Location {
	if f == nil && offset == 0 {
		return Location{Offset: 0, Line: 1, Column: 1}
	}

	lines := f.lines()

	// Find the largest index in lines such that lines[line] <= offset.
	line, exact := slices.BinarySearch(lines, offset)
	if !exact {
		line--
	}

	return Location{
		Offset: offset,
		Line:   line + 1,
		Column: stringWidth(0, f.Text()[lines[line]:offset]) + 1,
	}
}

// Line returns the 1-indexed line of text containing the given offset,
// including its trailing newline.
func (f *File) Line(offset int) string {
	lines := f.lines()
	line, exact := slices.BinarySearch(lines, offset)
	if !exact {
		line--
	}

	start := lines[line]
	if line+1 < len(lines) {
		return f.text[start:lines[line+1]]
	}
	return f.text[start:]
}

func (f *File) lines() []int {
	// Compute the prefix sum on-demand.
	f.once.Do(func() {
		var next int

		// We add 1 to the return value of IndexByte because we want the
		// index immediately *after* the newline byte.
		text := f.Text()
		for {
			newline := strings.IndexByte(text, '\n') + 1
			if newline == 0 {
				break
			}

			text = text[newline:]

			f.lineIndex = append(f.lineIndex, next)
			next += newline
		}

		f.lineIndex = append(f.lineIndex, next)
	})
	return f.lineIndex
}
