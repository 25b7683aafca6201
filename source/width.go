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

package source

import (
	"strings"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the width we assume for all tabstops.
const TabstopWidth int = 4

// stringWidth computes the rendered width of text in terminal cells,
// starting at the given column.
//
// We can't just use uniseg.StringWidth, because that doesn't respect
// tabstops correctly.
func stringWidth(column int, text string) int {
	for text != "" {
		nextTab := strings.IndexByte(text, '\t')
		chunk := text
		if nextTab != -1 {
			chunk, text = text[:nextTab], text[nextTab+1:]
		} else {
			text = ""
		}

		column += uniseg.StringWidth(chunk)
		if nextTab != -1 {
			// Round up to the next multiple of TabstopWidth.
			column += TabstopWidth - (column % TabstopWidth)
		}
	}

	return column
}
