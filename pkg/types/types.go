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

// Package types holds the vocabulary shared by the editor, the commander
// and the screen: positions, modes, input events, actions and styles.
package types

// Mode is the current interpretation context for key input.
type Mode int

// Editor modes
const (
	ModeNormal Mode = iota
	ModeInsert
	ModeCommand
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeCommand:
		return "COMMAND"
	default:
		return "UNKNOWN"
	}
}

// Point is a cursor position in character (column) and line (row) units.
type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// Color is a terminal color attribute. Zero is the terminal default,
// other values are 256-color palette indices plus one.
type Color uint16

const (
	ColorDefault Color = 0
	ColorBlack   Color = 1
	ColorRed     Color = 2
	ColorGreen   Color = 3
	ColorYellow  Color = 4
	ColorBlue    Color = 5
	ColorMagenta Color = 6
	ColorCyan    Color = 7
	ColorWhite   Color = 8
)

// Style describes how a span of text is drawn.
type Style struct {
	Fg        Color
	Bg        Color
	Bold      bool
	Italic    bool
	Underline bool
	Reverse   bool
}

// Span is a run of text drawn in a single style.
type Span struct {
	Style Style
	Text  string
}

// A Highlighter splits a line of text into styled spans. The concatenated
// span texts must equal the input line. Implementations return an error
// when they cannot style a line; callers then draw the line unstyled.
type Highlighter interface {
	Highlight(line string, language string) ([]Span, error)
}

// A Display receives the cells of a rendered frame.
type Display interface {
	SetCell(col, row int, ch rune, style Style)
	SetCursor(p Point)
}
