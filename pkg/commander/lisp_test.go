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

package commander

import (
	"errors"
	"strings"
	"testing"

	"github.com/timburks/ved/pkg/editor"
	"github.com/timburks/ved/pkg/types"
)

func scratch(text string) *editor.Editor {
	return editor.NewEditor(editor.NewBuffer("notes.txt", text))
}

func eval(t *testing.T, e Scriptable, expr string) string {
	t.Helper()
	result, err := ParseEval(e, expr)
	if err != nil {
		t.Fatalf("ParseEval(%s): %v", expr, err)
	}
	return result
}

func TestScriptMotions(t *testing.T) {
	e := scratch("one\ntwo\nthree")
	eval(t, e, "(down 2)")
	if row := eval(t, e, "(row)"); row != "3" {
		t.Errorf("Unexpected row %s", row)
	}
	eval(t, e, "(end-of-line)")
	if col := eval(t, e, "(col)"); col != "5" {
		t.Errorf("Unexpected column %s", col)
	}
	eval(t, e, "(up)")
	eval(t, e, "(beginning-of-line)")
	if c := e.GetCursor(); c != (types.Point{Row: 1, Col: 0}) {
		t.Errorf("Unexpected cursor %+v", c)
	}
	if n := eval(t, e, "(line-count)"); n != "3" {
		t.Errorf("Unexpected line count %s", n)
	}
}

func TestScriptEditing(t *testing.T) {
	e := scratch("one\ntwo\nthree")
	if _, err := ParseEvalScript(e, `
(insert "ab")
(split-line)
(insert "cd")
`); err != nil {
		t.Fatalf("ParseEvalScript: %v", err)
	}
	if got := strings.Join(e.GetActiveBuffer().Lines(), "|"); got != "ab|cdone|two|three" {
		t.Errorf("Unexpected text %q", got)
	}
	if e.GetMode() != types.ModeNormal {
		t.Errorf("insert should restore the mode, got %s", e.GetMode())
	}
	eval(t, e, "(delete-character 3)")
	eval(t, e, "(down)")
	eval(t, e, "(delete-row)")
	if got := strings.Join(e.GetActiveBuffer().Lines(), "|"); got != "ab|cd|three" {
		t.Errorf("Unexpected text %q", got)
	}
}

func TestScriptCommands(t *testing.T) {
	e := editor.NewEditor(editor.NewBuffer("a", "1\n2\n3"), editor.NewBuffer("b", "x"))
	eval(t, e, `(command "$")`)
	if c := e.GetCursor(); c.Row != 2 {
		t.Errorf("Unexpected cursor %+v", c)
	}
	eval(t, e, "(next-buffer)")
	if e.GetBufferName() != "b" {
		t.Errorf("Unexpected buffer %s", e.GetBufferName())
	}
	eval(t, e, "(previous-buffer)")
	eval(t, e, "(quit)")
	if !e.Done() {
		t.Errorf("quit should finish the editor")
	}
}

func TestScriptErrors(t *testing.T) {
	e := scratch("abc")
	for _, expr := range []string{
		`(insert 3)`,
		`(save-as 3)`,
		`(down "x")`,
	} {
		if _, err := ParseEval(e, expr); err == nil {
			t.Errorf("ParseEval(%s) should fail", expr)
		}
	}
	if got := e.GetCurrentLine(); got != "abc" {
		t.Errorf("Failed scripts changed the buffer to %q", got)
	}
	// primitives need an editor
	if _, err := countedAction(types.ActionMoveDown)(nil, nil); !errors.Is(err, errNoEditor) {
		t.Errorf("Unexpected error %v", err)
	}
}

func TestEvalCommandUsesLisp(t *testing.T) {
	e := scratch("one\ntwo")
	e.SetEvaluator(Evaluator(e))
	e.Perform(types.ExecuteCommand("eval (+ (line-count) 40)"))
	if msg := e.GetLastMessage(); msg != "42" {
		t.Errorf("Unexpected status %q", msg)
	}
}
