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
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/timburks/ved/pkg/types"
)

func checkViewport(t *testing.T, e *Editor, step string) {
	t.Helper()
	b := e.GetActiveBuffer()
	c := e.GetCursor()
	o := e.GetOffset()
	if c.Row < 0 || c.Row >= b.GetRowCount() {
		t.Fatalf("%s: cursor row %d outside buffer of %d rows", step, c.Row, b.GetRowCount())
	}
	lastCol := b.GetRowLength(c.Row)
	if e.GetMode() == types.ModeNormal {
		lastCol = max(lastCol-1, 0)
	}
	if c.Col < 0 || c.Col > lastCol {
		t.Fatalf("%s: cursor column %d outside 0..%d", step, c.Col, lastCol)
	}
	rows := e.VisibleRows()
	if c.Row < o.Rows || c.Row >= o.Rows+rows {
		t.Fatalf("%s: cursor row %d not visible from offset %d with %d rows", step, c.Row, o.Rows, rows)
	}
	if o.Rows < 0 || o.Cols < 0 {
		t.Fatalf("%s: negative offset %+v", step, o)
	}
	cell := DisplayColumn([]rune(e.GetCurrentLine()), c.Col, e.GetTabWidth())
	if cell < o.Cols || cell >= o.Cols+e.TextSize().Cols {
		t.Fatalf("%s: cursor cell %d not visible from column offset %d", step, cell, o.Cols)
	}
}

func TestRandomMotionsKeepCursorVisible(t *testing.T) {
	var lines []string
	for i := 0; i < 57; i++ {
		lines = append(lines, strings.Repeat("x", (i*7)%90)+strings.Repeat("\t", i%3))
	}
	e := NewEditor(NewBuffer("", strings.Join(lines, "\n")))
	e.SetSize(types.Size{Rows: 12, Cols: 40})

	kinds := []types.ActionKind{
		types.ActionMoveUp,
		types.ActionMoveDown,
		types.ActionMoveLeft,
		types.ActionMoveRight,
		types.ActionMoveStartOfLine,
		types.ActionMoveEndOfLine,
		types.ActionPageUp,
		types.ActionPageDown,
	}
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		a := types.Action{Kind: kinds[r.Intn(len(kinds))], Count: r.Intn(4)}
		if r.Intn(50) == 0 {
			mode := types.ModeNormal
			if e.GetMode() == types.ModeNormal {
				mode = types.ModeInsert
			}
			a = types.EnterMode(mode)
		}
		e.Perform(a)
		checkViewport(t, e, fmt.Sprintf("step %d (%s)", i, a))
	}
}

func TestResizeKeepsCursorVisible(t *testing.T) {
	e := NewEditor(NewBuffer("", strings.Repeat("line\n", 100)))
	e.Perform(types.Action{Kind: types.ActionMoveDown, Count: 60})
	for _, size := range []types.Size{{Rows: 5, Cols: 10}, {Rows: 1, Cols: 1}, {Rows: 0, Cols: 0}, {Rows: 200, Cols: 80}} {
		e.SetSize(size)
		checkViewport(t, e, fmt.Sprintf("size %+v", size))
	}
}

func TestNoBlankRowsBelowLastLine(t *testing.T) {
	e := NewEditor(NewBuffer("", strings.Repeat("line\n", 30)))
	e.SetSize(types.Size{Rows: 12, Cols: 80})
	e.Perform(types.Do(types.ActionPageDown))
	e.Perform(types.Do(types.ActionPageDown))
	e.Perform(types.Do(types.ActionPageDown))
	e.Perform(types.Do(types.ActionPageDown))
	if c := e.GetCursor(); c.Row != 29 {
		t.Errorf("PageDown should stop on the last row, got %d", c.Row)
	}
	if o := e.GetOffset(); o.Rows != 20 {
		t.Errorf("Unexpected row offset %d", o.Rows)
	}
}

func TestCellWidth(t *testing.T) {
	for _, tc := range []struct {
		c     rune
		cell  int
		width int
	}{
		{'a', 0, 1},
		{'\t', 0, 8},
		{'\t', 3, 5},
		{'\t', 8, 8},
		{'世', 0, 2},
	} {
		if w := CellWidth(tc.c, tc.cell, 8); w != tc.width {
			t.Errorf("CellWidth(%q, %d) = %d, want %d", tc.c, tc.cell, w, tc.width)
		}
	}
	if cell := DisplayColumn([]rune("a\tb世c"), 4, 4); cell != 7 {
		t.Errorf("DisplayColumn = %d, want 7", cell)
	}
}
