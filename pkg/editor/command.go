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
	"log"
	"strconv"
	"strings"

	"github.com/timburks/ved/pkg/types"
)

// performCommand runs an ex-command typed on the command line.
func (e *Editor) performCommand(text string) {
	parts := strings.Fields(text)
	if len(parts) == 0 {
		return
	}
	var path string
	if len(parts) > 1 {
		path = parts[1]
	}
	switch parts[0] {
	case "w", "write":
		e.save(path)
	case "q", "quit":
		if b := e.firstModifiedBuffer(); b != nil {
			e.setStatus("unsaved changes in %s (add ! to override)", b.DisplayName())
			return
		}
		e.quit = true
	case "q!", "quit!":
		e.quit = true
	case "wq":
		if e.save(path) {
			e.quit = true
		}
	case "next":
		e.Perform(types.Do(types.ActionNextBuffer))
	case "prev":
		e.Perform(types.Do(types.ActionPreviousBuffer))
	case "buffers":
		e.setStatus("%s", e.listBuffers())
	case "cursor":
		cursor := e.GetCursor()
		e.setStatus("%d,%d", cursor.Row+1, cursor.Col+1)
	case "$":
		e.MoveCursorToLine(e.GetActiveBuffer().GetRowCount())
	case "eval":
		e.eval(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), parts[0])))
	default:
		if line, err := strconv.Atoi(parts[0]); err == nil {
			e.MoveCursorToLine(line)
			return
		}
		e.setStatus("unknown command: %s", strings.TrimSpace(text))
	}
}

func (e *Editor) firstModifiedBuffer() *Buffer {
	for _, b := range e.buffers {
		if b.Modified() {
			return b
		}
	}
	return nil
}

func (e *Editor) listBuffers() string {
	var s strings.Builder
	for i, b := range e.buffers {
		if i > 0 {
			s.WriteString(" ")
		}
		marker := ""
		if i == e.active {
			marker = "%"
		}
		if b.Modified() {
			marker += "+"
		}
		fmt.Fprintf(&s, "[%d%s] %s", i+1, marker, b.DisplayName())
	}
	return s.String()
}

func (e *Editor) eval(expr string) {
	if e.evaluator == nil {
		e.setStatus("eval is not available")
		return
	}
	if expr == "" {
		return
	}
	result, err := e.evaluator(expr)
	if err != nil {
		log.Printf("eval %s: %v", expr, err)
		e.setStatus("eval failed: %v", err)
		return
	}
	e.setStatus("%s", result)
}
