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

package session

import (
	"fmt"
	"log"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/timburks/ved/pkg/editor"
	"github.com/timburks/ved/pkg/types"
)

var (
	plainStyle   = types.Style{}
	fillerStyle  = types.Style{Fg: types.ColorBlue}
	infoBarStyle = types.Style{Fg: types.ColorWhite, Bg: types.ColorBlue, Bold: true}
)

// Render draws the active buffer, the info bar and the message bar.
func (s *Session) Render() error {
	e := s.editor
	s.terminal.Clear()

	size := e.GetSize()
	textSize := e.TextSize()
	s.renderBuffer(textSize)
	if size.Rows > 1 {
		s.renderInfoBar(textSize.Rows, size.Cols)
	}
	if size.Rows > 2 {
		s.renderMessageBar(textSize.Rows+1, size.Cols)
	}
	s.terminal.SetCursor(s.cursorForDisplay(textSize))
	return s.terminal.Flush()
}

func (s *Session) renderBuffer(textSize types.Size) {
	e := s.editor
	b := e.GetActiveBuffer()
	offset := e.GetOffset()
	for i := 0; i < textSize.Rows; i++ {
		row := i + offset.Rows
		if row >= b.GetRowCount() {
			s.terminal.SetCell(0, i, '~', fillerStyle)
			continue
		}
		line, _ := b.Line(row)
		s.renderLine(i, s.highlight(line, b.Language()), offset.Cols, textSize.Cols)
	}
}

// highlight styles a line, falling back to plain text when the highlighter fails.
func (s *Session) highlight(line string, language string) []types.Span {
	plain := []types.Span{{Style: plainStyle, Text: line}}
	if s.highlighter == nil || line == "" {
		return plain
	}
	spans, err := s.highlighter.Highlight(line, language)
	if err != nil {
		if !s.failed[language] {
			log.Printf("highlight %q: %v", language, err)
			s.failed[language] = true
		}
		return plain
	}
	return spans
}

// renderLine draws spans on screen row y, skipping the first offset display
// cells and clipping to cols.
func (s *Session) renderLine(y int, spans []types.Span, offset int, cols int) {
	tabWidth := s.editor.GetTabWidth()
	cell := 0
	for _, span := range spans {
		for _, c := range span.Text {
			width := editor.CellWidth(c, cell, tabWidth)
			x := cell - offset
			cell += width
			if x < 0 || width == 0 {
				continue
			}
			if x+width > cols {
				return
			}
			if c == '\t' {
				for k := 0; k < width; k++ {
					s.terminal.SetCell(x+k, y, ' ', span.Style)
				}
				continue
			}
			s.terminal.SetCell(x, y, c, span.Style)
		}
	}
}

// Compute the text to display on the info bar.
func (s *Session) computeInfoBarText(length int) string {
	e := s.editor
	b := e.GetActiveBuffer()
	text := fmt.Sprintf(" %s  %s", e.GetMode(), b.DisplayName())
	if b.Modified() {
		text += " [+]"
	}
	finalText := fmt.Sprintf(" %d/%d ", e.GetCursor().Row+1, b.GetRowCount())
	if n := len(e.GetBuffers()); n > 1 {
		finalText = fmt.Sprintf(" %d/%d  [%d/%d] ", e.GetCursor().Row+1, b.GetRowCount(), e.GetActiveIndex()+1, n)
	}
	padding := length - runewidth.StringWidth(text) - runewidth.StringWidth(finalText)
	if padding < 1 {
		return runewidth.Truncate(text+" "+finalText, length, "")
	}
	return text + strings.Repeat(" ", padding) + finalText
}

func (s *Session) renderInfoBar(y int, cols int) {
	text := s.computeInfoBarText(cols)
	x := s.writeString(0, y, text, infoBarStyle, cols)
	for ; x < cols; x++ {
		s.terminal.SetCell(x, y, ' ', infoBarStyle)
	}
}

// GetMessageBarText returns the command being typed, or the status message.
func (s *Session) GetMessageBarText() string {
	e := s.editor
	if e.GetMode() == types.ModeCommand {
		return ":" + e.GetCommandText()
	}
	if message, ok := e.GetMessage(); ok {
		return message
	}
	return ""
}

func (s *Session) renderMessageBar(y int, cols int) {
	s.writeString(0, y, s.GetMessageBarText(), plainStyle, cols)
	if pending := s.commander.GetMultiplierText(); pending != "" {
		x := cols - runewidth.StringWidth(pending) - 1
		if x > 0 {
			s.writeString(x, y, pending, plainStyle, cols)
		}
	}
}

// writeString draws text from column x and returns the column after it.
func (s *Session) writeString(x, y int, text string, style types.Style, cols int) int {
	for _, c := range text {
		width := runewidth.RuneWidth(c)
		if width == 0 {
			continue
		}
		if x+width > cols {
			break
		}
		s.terminal.SetCell(x, y, c, style)
		x += width
	}
	return x
}

func (s *Session) cursorForDisplay(textSize types.Size) types.Point {
	e := s.editor
	if e.GetMode() == types.ModeCommand {
		col := runewidth.StringWidth(":" + e.GetCommandText())
		return types.Point{Row: textSize.Rows + 1, Col: min(col, max(e.GetSize().Cols-1, 0))}
	}
	cursor := e.GetCursor()
	offset := e.GetOffset()
	line, _ := e.GetActiveBuffer().Line(cursor.Row)
	cell := editor.DisplayColumn([]rune(line), cursor.Col, e.GetTabWidth())
	return types.Point{
		Row: cursor.Row - offset.Rows,
		Col: cell - offset.Cols,
	}
}
