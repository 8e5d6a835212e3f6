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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// NoName is displayed for buffers that are not bound to a file.
const NoName = "[No Name]"

var (
	ErrRowOutOfRange    = errors.New("row out of range")
	ErrColumnOutOfRange = errors.New("column out of range")
	ErrNoPath           = errors.New("no file name")
)

// A Buffer holds the lines of one file, or of a scratch buffer when path
// is empty. A buffer always has at least one row.
type Buffer struct {
	path     string
	rows     []*Row
	modified bool
}

// NewBuffer creates a buffer bound to path (which may be empty) holding text.
func NewBuffer(path string, text string) *Buffer {
	b := &Buffer{path: path}
	b.setText(text)
	return b
}

// LoadBuffer reads the file at path into a new buffer. A file that does not
// exist yet gives an empty buffer bound to path so that it can be created
// with a save.
func LoadBuffer(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewBuffer(path, ""), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return NewBuffer(path, string(data)), nil
}

func (b *Buffer) setText(text string) {
	lines := splitLines(text)
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
}

// splitLines drops a single trailing line separator and splits the rest.
// Empty text gives one empty line.
func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func (b *Buffer) Path() string {
	return b.path
}

func (b *Buffer) Modified() bool {
	return b.modified
}

// DisplayName is a short name for the buffer derived from its path.
func (b *Buffer) DisplayName() string {
	if b.path == "" {
		return NoName
	}
	return filepath.Base(b.path)
}

// Language is a hint for syntax highlighting; it is empty for scratch buffers.
func (b *Buffer) Language() string {
	if b.path == "" {
		return ""
	}
	return filepath.Base(b.path)
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

// GetRowLength returns the length of row i in runes, or zero when i is out of range.
func (b *Buffer) GetRowLength(i int) int {
	if i < 0 || i >= len(b.rows) {
		return 0
	}
	return b.rows[i].Length()
}

func (b *Buffer) Line(row int) (string, error) {
	if err := b.checkRow(row); err != nil {
		return "", err
	}
	return b.rows[row].String(), nil
}

// Lines returns a copy of the buffer contents.
func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.rows))
	for i, r := range b.rows {
		lines[i] = r.String()
	}
	return lines
}

func (b *Buffer) TextAfter(row, col int) string {
	if row < 0 || row >= len(b.rows) {
		return ""
	}
	return b.rows[row].TextAfter(col)
}

func (b *Buffer) checkRow(row int) error {
	if row < 0 || row >= len(b.rows) {
		return fmt.Errorf("%w: %d", ErrRowOutOfRange, row)
	}
	return nil
}

// InsertChar inserts c before column col of row. col may equal the row
// length to append.
func (b *Buffer) InsertChar(col, row int, c rune) error {
	if err := b.checkRow(row); err != nil {
		return err
	}
	if col < 0 || col > b.rows[row].Length() {
		return fmt.Errorf("%w: %d", ErrColumnOutOfRange, col)
	}
	b.rows[row].InsertChar(col, c)
	b.modified = true
	return nil
}

// RemoveChar deletes and returns the character at column col of row.
func (b *Buffer) RemoveChar(col, row int) (rune, error) {
	if err := b.checkRow(row); err != nil {
		return 0, err
	}
	if col < 0 || col >= b.rows[row].Length() {
		return 0, fmt.Errorf("%w: %d", ErrColumnOutOfRange, col)
	}
	c := b.rows[row].DeleteChar(col)
	b.modified = true
	return c, nil
}

// InsertNewLine inserts an empty line before row. row may equal the row
// count to append a line.
func (b *Buffer) InsertNewLine(row int) error {
	if row < 0 || row > len(b.rows) {
		return fmt.Errorf("%w: %d", ErrRowOutOfRange, row)
	}
	b.insertRow(row, NewRow(""))
	b.modified = true
	return nil
}

func (b *Buffer) insertRow(i int, r *Row) {
	b.rows = append(b.rows, nil)
	copy(b.rows[i+1:], b.rows[i:])
	b.rows[i] = r
}

// SplitLine moves the text of row from col onward to a new row below it.
func (b *Buffer) SplitLine(col, row int) error {
	if err := b.checkRow(row); err != nil {
		return err
	}
	if col < 0 || col > b.rows[row].Length() {
		return fmt.Errorf("%w: %d", ErrColumnOutOfRange, col)
	}
	b.insertRow(row+1, b.rows[row].Split(col))
	b.modified = true
	return nil
}

// JoinLine appends row+1 to row and removes row+1. It returns the column
// where the two texts meet.
func (b *Buffer) JoinLine(row int) (int, error) {
	if err := b.checkRow(row); err != nil {
		return 0, err
	}
	if err := b.checkRow(row + 1); err != nil {
		return 0, err
	}
	col := b.rows[row].Length()
	b.rows[row].Join(b.rows[row+1])
	b.rows = append(b.rows[0:row+1], b.rows[row+2:]...)
	b.modified = true
	return col, nil
}

// RemoveLine deletes row and returns its text. The last remaining line is
// cleared instead of removed.
func (b *Buffer) RemoveLine(row int) (string, error) {
	if err := b.checkRow(row); err != nil {
		return "", err
	}
	text := b.rows[row].String()
	if len(b.rows) == 1 {
		b.rows[0] = NewRow("")
	} else {
		b.rows = append(b.rows[0:row], b.rows[row+1:]...)
	}
	b.modified = true
	return text, nil
}

// Bytes returns the file representation of the buffer.
func (b *Buffer) Bytes() []byte {
	var s strings.Builder
	for _, row := range b.rows {
		s.WriteString(string(row.Text))
		s.WriteString(lineSeparator)
	}
	return []byte(s.String())
}

// Save writes the buffer to its file.
func (b *Buffer) Save() error {
	if b.path == "" {
		return ErrNoPath
	}
	return b.write(b.path)
}

// SaveAs writes the buffer to path and binds the buffer to it.
func (b *Buffer) SaveAs(path string) error {
	if path == "" {
		return ErrNoPath
	}
	if err := b.write(path); err != nil {
		return err
	}
	b.path = path
	return nil
}

func (b *Buffer) write(path string) error {
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	b.modified = false
	return nil
}
