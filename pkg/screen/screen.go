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

// Package screen drives the terminal with termbox.
package screen

import (
	"fmt"

	"github.com/nsf/termbox-go"

	"github.com/timburks/ved/pkg/types"
)

// The Screen owns the terminal while it is open: raw input, the alternate
// screen and the 256-color output mode.
type Screen struct {
	open bool
}

func NewScreen() *Screen {
	return &Screen{}
}

// Init opens the terminal.
func (s *Screen) Init() error {
	if s.open {
		return nil
	}
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.Output256)
	s.open = true
	return nil
}

// Close restores the terminal. It is safe to call more than once.
func (s *Screen) Close() {
	if !s.open {
		return
	}
	s.open = false
	termbox.Close()
}

func (s *Screen) Size() types.Size {
	cols, rows := termbox.Size()
	return types.Size{Rows: rows, Cols: cols}
}

func (s *Screen) Clear() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

func (s *Screen) Flush() error {
	return termbox.Flush()
}

func (s *Screen) SetCell(col, row int, ch rune, style types.Style) {
	fg, bg := attributes(style)
	termbox.SetCell(col, row, ch, fg, bg)
}

func (s *Screen) SetCursor(p types.Point) {
	termbox.SetCursor(p.Col, p.Row)
}

func attributes(style types.Style) (termbox.Attribute, termbox.Attribute) {
	fg := termbox.Attribute(style.Fg)
	bg := termbox.Attribute(style.Bg)
	if style.Bold {
		fg |= termbox.AttrBold
	}
	if style.Underline {
		fg |= termbox.AttrUnderline
	}
	if style.Reverse {
		fg |= termbox.AttrReverse
	}
	return fg, bg
}

// PollEvent blocks until the next key press or resize.
func (s *Screen) PollEvent() types.Event {
	for {
		event := termbox.PollEvent()
		switch event.Type {
		case termbox.EventKey:
			return types.Event{
				Type: types.EventKey,
				Key:  key(event.Key),
				Ch:   event.Ch,
			}
		case termbox.EventResize:
			termbox.Flush()
			return types.ResizeEvent(event.Height, event.Width)
		case termbox.EventError:
			return types.Event{Type: types.EventError, Err: event.Err}
		}
	}
}

func key(k termbox.Key) types.Key {
	switch k {
	case 0:
		return types.KeyNone
	case termbox.KeyArrowDown:
		return types.KeyArrowDown
	case termbox.KeyArrowLeft:
		return types.KeyArrowLeft
	case termbox.KeyArrowRight:
		return types.KeyArrowRight
	case termbox.KeyArrowUp:
		return types.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return types.KeyBackspace
	case termbox.KeyDelete:
		return types.KeyDelete
	case termbox.KeyCtrlA:
		return types.KeyCtrlA
	case termbox.KeyCtrlB:
		return types.KeyCtrlB
	case termbox.KeyCtrlC:
		return types.KeyCtrlC
	case termbox.KeyCtrlD:
		return types.KeyCtrlD
	case termbox.KeyCtrlE:
		return types.KeyCtrlE
	case termbox.KeyCtrlF:
		return types.KeyCtrlF
	case termbox.KeyCtrlG:
		return types.KeyCtrlG
	//case termbox.KeyCtrlH: same as KeyBackspace
	//case termbox.KeyCtrlI: same as KeyTab
	case termbox.KeyCtrlK:
		return types.KeyCtrlK
	case termbox.KeyCtrlL:
		return types.KeyCtrlL
	//case termbox.KeyCtrlM: same as KeyEnter
	case termbox.KeyCtrlN:
		return types.KeyCtrlN
	case termbox.KeyCtrlO:
		return types.KeyCtrlO
	case termbox.KeyCtrlP:
		return types.KeyCtrlP
	case termbox.KeyCtrlQ:
		return types.KeyCtrlQ
	case termbox.KeyCtrlR:
		return types.KeyCtrlR
	case termbox.KeyCtrlS:
		return types.KeyCtrlS
	case termbox.KeyCtrlT:
		return types.KeyCtrlT
	case termbox.KeyCtrlU:
		return types.KeyCtrlU
	case termbox.KeyCtrlV:
		return types.KeyCtrlV
	case termbox.KeyCtrlW:
		return types.KeyCtrlW
	case termbox.KeyCtrlX:
		return types.KeyCtrlX
	case termbox.KeyCtrlY:
		return types.KeyCtrlY
	case termbox.KeyCtrlZ:
		return types.KeyCtrlZ
	case termbox.KeyEnd:
		return types.KeyEnd
	case termbox.KeyEnter:
		return types.KeyEnter
	case termbox.KeyEsc:
		return types.KeyEsc
	case termbox.KeyHome:
		return types.KeyHome
	case termbox.KeyPgdn:
		return types.KeyPgdn
	case termbox.KeyPgup:
		return types.KeyPgup
	case termbox.KeySpace:
		return types.KeySpace
	case termbox.KeyTab:
		return types.KeyTab
	default:
		return types.KeyUnsupported
	}
}
