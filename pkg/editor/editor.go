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
	"log"
	"time"

	"github.com/timburks/ved/pkg/types"
)

// Rows of the terminal used by the info bar and the message bar.
const ReservedRows = 2

const (
	DefaultTabWidth      = 8
	DefaultStatusTimeout = 5 * time.Second
)

// An Evaluator runs a script expression for the eval command and returns
// its printed result.
type Evaluator func(expr string) (string, error)

// The Editor owns the open buffers and all editing state. Every change to
// that state goes through Perform.
type Editor struct {
	buffers       []*Buffer
	views         []Viewport // one per buffer
	active        int        // index of the active buffer
	mode          types.Mode
	commandText   string // command as it is being typed on the command line
	status        status
	terminal      types.Size // size of the whole terminal
	quit          bool
	tabWidth      int
	statusTimeout time.Duration
	evaluator     Evaluator
	now           func() time.Time
}

// NewEditor creates an editor for buffers. With no buffers it opens one
// unnamed scratch buffer.
func NewEditor(buffers ...*Buffer) *Editor {
	if len(buffers) == 0 {
		buffers = []*Buffer{NewBuffer("", "")}
	}
	e := &Editor{
		buffers:       buffers,
		views:         make([]Viewport, len(buffers)),
		mode:          types.ModeNormal,
		terminal:      types.Size{Rows: 24, Cols: 80},
		tabWidth:      DefaultTabWidth,
		statusTimeout: DefaultStatusTimeout,
		now:           time.Now,
	}
	return e
}

func (e *Editor) SetTabWidth(n int) {
	if n > 0 {
		e.tabWidth = n
	}
}

func (e *Editor) GetTabWidth() int {
	return e.tabWidth
}

func (e *Editor) SetStatusTimeout(d time.Duration) {
	e.statusTimeout = d
}

func (e *Editor) SetEvaluator(ev Evaluator) {
	e.evaluator = ev
}

// SetSize records the terminal size and re-clamps the cursor against it.
func (e *Editor) SetSize(s types.Size) {
	e.terminal = s
	e.Clamp()
}

func (e *Editor) GetSize() types.Size {
	return e.terminal
}

// TextSize is the part of the terminal used to show buffer text.
func (e *Editor) TextSize() types.Size {
	return types.Size{
		Rows: max(e.terminal.Rows-ReservedRows, 1),
		Cols: max(e.terminal.Cols, 1),
	}
}

// VisibleRows is the number of buffer rows shown at once.
func (e *Editor) VisibleRows() int {
	return e.TextSize().Rows
}

func (e *Editor) GetMode() types.Mode {
	return e.mode
}

func (e *Editor) GetCommandText() string {
	return e.commandText
}

func (e *Editor) Done() bool {
	return e.quit
}

func (e *Editor) GetBuffers() []*Buffer {
	return e.buffers
}

func (e *Editor) GetActiveIndex() int {
	return e.active
}

func (e *Editor) GetActiveBuffer() *Buffer {
	return e.buffers[e.active]
}

func (e *Editor) GetLineCount() int {
	return e.GetActiveBuffer().GetRowCount()
}

func (e *Editor) GetCurrentLine() string {
	line, _ := e.GetActiveBuffer().Line(e.GetCursor().Row)
	return line
}

func (e *Editor) GetBufferName() string {
	return e.GetActiveBuffer().DisplayName()
}

func (e *Editor) GetCursor() types.Point {
	return e.views[e.active].Cursor
}

func (e *Editor) GetOffset() types.Size {
	return e.views[e.active].Offset
}

func (e *Editor) view() *Viewport {
	return &e.views[e.active]
}

// Clamp keeps the cursor and scroll offset of the active buffer valid.
func (e *Editor) Clamp() {
	e.view().Clamp(e.GetActiveBuffer(), e.mode, e.TextSize(), e.tabWidth)
}

// Perform applies one action to the editor state.
func (e *Editor) Perform(a types.Action) {
	b := e.GetActiveBuffer()
	v := e.view()
	switch a.Kind {
	case types.ActionNone:
	case types.ActionQuit:
		e.quit = true
	case types.ActionSave:
		e.save("")
	case types.ActionSaveAs:
		e.save(a.Text)
	case types.ActionMoveUp:
		v.Cursor.Row = max(v.Cursor.Row-a.Times(), 0)
	case types.ActionMoveDown:
		v.Cursor.Row = min(v.Cursor.Row+a.Times(), b.GetRowCount()-1)
	case types.ActionMoveLeft:
		v.Cursor.Col = max(v.Cursor.Col-a.Times(), 0)
	case types.ActionMoveRight:
		v.Cursor.Col = min(v.Cursor.Col+a.Times(), b.GetRowLength(v.Cursor.Row))
	case types.ActionMoveStartOfLine:
		v.Cursor.Col = 0
	case types.ActionMoveEndOfLine:
		v.Cursor.Col = b.GetRowLength(v.Cursor.Row)
	case types.ActionPageUp:
		v.Cursor.Row = max(v.Cursor.Row-e.VisibleRows()*a.Times(), 0)
	case types.ActionPageDown:
		v.Cursor.Row = min(v.Cursor.Row+e.VisibleRows()*a.Times(), b.GetRowCount()-1)
	case types.ActionAddChar:
		if err := b.InsertChar(v.Cursor.Col, v.Cursor.Row, a.Ch); err != nil {
			log.Printf("add character: %v", err)
			break
		}
		v.Cursor.Col++
	case types.ActionNewLine:
		if err := b.SplitLine(v.Cursor.Col, v.Cursor.Row); err != nil {
			log.Printf("new line: %v", err)
			break
		}
		v.Cursor.Row++
		v.Cursor.Col = 0
	case types.ActionDeleteChar:
		if e.mode == types.ModeInsert {
			e.backspaceChar()
		} else {
			e.deleteCharacters(a.Times())
		}
	case types.ActionDeleteLine:
		for i := 0; i < a.Times(); i++ {
			if _, err := b.RemoveLine(v.Cursor.Row); err != nil {
				log.Printf("delete line: %v", err)
				break
			}
			v.Cursor.Row = min(v.Cursor.Row, b.GetRowCount()-1)
		}
	case types.ActionEnterMode:
		e.enterMode(a.Mode)
	case types.ActionNextBuffer:
		e.active = (e.active + a.Times()) % len(e.buffers)
	case types.ActionPreviousBuffer:
		n := len(e.buffers)
		e.active = ((e.active-a.Times())%n + n) % n
	case types.ActionCommandAppend:
		if e.mode == types.ModeCommand {
			e.commandText += string(a.Ch)
		}
	case types.ActionCommandBackspace:
		if e.mode == types.ModeCommand && len(e.commandText) > 0 {
			text := []rune(e.commandText)
			e.commandText = string(text[:len(text)-1])
		}
	case types.ActionExecuteCommand:
		e.performCommand(a.Text)
		if e.mode == types.ModeCommand {
			e.enterMode(types.ModeNormal)
		}
	default:
		log.Printf("unhandled action %s", a)
	}
	e.Clamp()
}

func (e *Editor) enterMode(m types.Mode) {
	if m == types.ModeCommand || e.mode == types.ModeCommand {
		e.commandText = ""
	}
	e.mode = m
}

// backspaceChar deletes the character left of the cursor. At the start of a
// line it joins the line to the one above.
func (e *Editor) backspaceChar() {
	b := e.GetActiveBuffer()
	v := e.view()
	if v.Cursor.Col > 0 {
		if _, err := b.RemoveChar(v.Cursor.Col-1, v.Cursor.Row); err != nil {
			log.Printf("backspace: %v", err)
			return
		}
		v.Cursor.Col--
	} else if v.Cursor.Row > 0 {
		col, err := b.JoinLine(v.Cursor.Row - 1)
		if err != nil {
			log.Printf("backspace: %v", err)
			return
		}
		v.Cursor.Row--
		v.Cursor.Col = col
	}
}

// deleteCharacters deletes up to n characters under the cursor without
// crossing the end of the line.
func (e *Editor) deleteCharacters(n int) {
	b := e.GetActiveBuffer()
	v := e.view()
	for i := 0; i < n; i++ {
		if v.Cursor.Col >= b.GetRowLength(v.Cursor.Row) {
			return
		}
		if _, err := b.RemoveChar(v.Cursor.Col, v.Cursor.Row); err != nil {
			log.Printf("delete character: %v", err)
			return
		}
	}
}

// save writes the active buffer, to path when it is not empty. It reports
// the outcome in the status message and returns true on success.
func (e *Editor) save(path string) bool {
	b := e.GetActiveBuffer()
	var err error
	if path == "" {
		err = b.Save()
	} else {
		err = b.SaveAs(path)
	}
	if err != nil {
		log.Printf("save %s: %v", b.DisplayName(), err)
		e.setStatus("save failed: %v", err)
		return false
	}
	e.setStatus("%q %dL written", b.DisplayName(), b.GetRowCount())
	return true
}

// MoveCursorToLine moves to the start of line (counting from 1), clipped to the buffer.
func (e *Editor) MoveCursorToLine(line int) {
	v := e.view()
	v.Cursor.Row = clipToRange(line-1, 0, e.GetActiveBuffer().GetRowCount()-1)
	v.Cursor.Col = 0
	e.Clamp()
}
