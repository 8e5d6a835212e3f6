//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package editor

import (
	"github.com/mattn/go-runewidth"

	"github.com/timburks/ved/pkg/types"
)

// A Viewport is the cursor position and scroll offset of one buffer.
// Offset.Rows is the first visible row, Offset.Cols the first visible
// display cell.
type Viewport struct {
	Cursor types.Point
	Offset types.Size
}

// Clamp keeps the cursor inside the buffer and the cursor inside the
// visible area of a text region of the given size.
func (v *Viewport) Clamp(b *Buffer, mode types.Mode, size types.Size, tabWidth int) {
	v.keepCursorInBuffer(b, mode)
	v.adjustOffsetForScrolling(b, size, tabWidth)
}

func (v *Viewport) keepCursorInBuffer(b *Buffer, mode types.Mode) {
	v.Cursor.Row = clipToRange(v.Cursor.Row, 0, b.GetRowCount()-1)
	lastCol := b.GetRowLength(v.Cursor.Row)
	if mode == types.ModeNormal {
		// in normal mode the cursor sits on a character
		lastCol--
	}
	v.Cursor.Col = clipToRange(v.Cursor.Col, 0, lastCol)
}

// Recompute the display offset to keep the cursor onscreen.
func (v *Viewport) adjustOffsetForScrolling(b *Buffer, size types.Size, tabWidth int) {
	textRows := max(size.Rows, 1)
	if v.Cursor.Row < v.Offset.Rows {
		// scroll up
		v.Offset.Rows = v.Cursor.Row
	}
	if v.Cursor.Row-v.Offset.Rows >= textRows {
		// scroll down
		v.Offset.Rows = v.Cursor.Row - textRows + 1
	}
	// never leave blank rows below the last line
	v.Offset.Rows = clipToRange(v.Offset.Rows, 0, max(0, b.GetRowCount()-textRows))

	textCols := max(size.Cols, 1)
	text := b.rows[v.Cursor.Row].Text
	cell := DisplayColumn(text, v.Cursor.Col, tabWidth)
	width := 1
	if v.Cursor.Col < len(text) {
		width = max(CellWidth(text[v.Cursor.Col], cell, tabWidth), 1)
	}
	if cell < v.Offset.Cols {
		// scroll left
		v.Offset.Cols = cell
	}
	if cell+width > v.Offset.Cols+textCols {
		// scroll right
		v.Offset.Cols = cell + width - textCols
	}
	v.Offset.Cols = max(v.Offset.Cols, 0)
}

// CellWidth is the number of terminal cells taken by c when drawn at display
// column cell. Tabs advance to the next multiple of tabWidth.
func CellWidth(c rune, cell int, tabWidth int) int {
	if c == '\t' {
		if tabWidth < 1 {
			tabWidth = 1
		}
		return tabWidth - cell%tabWidth
	}
	return runewidth.RuneWidth(c)
}

// DisplayColumn is the display cell where column col of text starts.
func DisplayColumn(text []rune, col int, tabWidth int) int {
	cell := 0
	for i := 0; i < col && i < len(text); i++ {
		cell += CellWidth(text[i], cell, tabWidth)
	}
	return cell
}

func clipToRange(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
