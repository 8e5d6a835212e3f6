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
	"fmt"
	"log"

	"github.com/steelseries/golisp"

	"github.com/timburks/ved/pkg/types"
)

// Scriptable is the editor as seen by lisp scripts.
type Scriptable interface {
	State
	Perform(a types.Action)
	GetCursor() types.Point
	GetLineCount() int
	GetCurrentLine() string
	GetBufferName() string
}

var errNoEditor = errors.New("no editor is attached")

// the editor that primitives act on while a script runs
var target Scriptable

type primitive func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error)

func init() {
	motions := map[string]types.ActionKind{
		"up":        types.ActionMoveUp,
		"down":      types.ActionMoveDown,
		"left":      types.ActionMoveLeft,
		"right":     types.ActionMoveRight,
		"page-up":   types.ActionPageUp,
		"page-down": types.ActionPageDown,
	}
	for name, kind := range motions {
		golisp.MakePrimitiveFunction(name, "0|1", countedAction(kind))
	}
	simple := map[string]types.ActionKind{
		"beginning-of-line": types.ActionMoveStartOfLine,
		"end-of-line":       types.ActionMoveEndOfLine,
		"next-buffer":       types.ActionNextBuffer,
		"previous-buffer":   types.ActionPreviousBuffer,
		"split-line":        types.ActionNewLine,
		"save":              types.ActionSave,
		"quit":              types.ActionQuit,
	}
	for name, kind := range simple {
		golisp.MakePrimitiveFunction(name, "0", countedAction(kind))
	}
	golisp.MakePrimitiveFunction("delete-character", "0|1", deleteCharacterImpl)
	golisp.MakePrimitiveFunction("delete-row", "0|1", countedAction(types.ActionDeleteLine))
	golisp.MakePrimitiveFunction("insert", "1", InsertImpl)
	golisp.MakePrimitiveFunction("save-as", "1", SaveAsImpl)
	golisp.MakePrimitiveFunction("command", "1", CommandImpl)
	golisp.MakePrimitiveFunction("row", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		if target == nil {
			return nil, errNoEditor
		}
		return golisp.IntegerWithValue(int64(target.GetCursor().Row + 1)), nil
	})
	golisp.MakePrimitiveFunction("col", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		if target == nil {
			return nil, errNoEditor
		}
		return golisp.IntegerWithValue(int64(target.GetCursor().Col + 1)), nil
	})
	golisp.MakePrimitiveFunction("line-count", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		if target == nil {
			return nil, errNoEditor
		}
		return golisp.IntegerWithValue(int64(target.GetLineCount())), nil
	})
	golisp.MakePrimitiveFunction("line", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		if target == nil {
			return nil, errNoEditor
		}
		return golisp.StringWithValue(target.GetCurrentLine()), nil
	})
	golisp.MakePrimitiveFunction("buffer-name", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		if target == nil {
			return nil, errNoEditor
		}
		return golisp.StringWithValue(target.GetBufferName()), nil
	})
}

// countedAction makes a primitive that performs kind, optionally repeated
// by an integer argument.
func countedAction(kind types.ActionKind) primitive {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		if target == nil {
			return nil, errNoEditor
		}
		count, err := countArgument(args)
		if err != nil {
			return nil, err
		}
		target.Perform(types.Action{Kind: kind, Count: count})
		return nil, nil
	}
}

// delete-character always deletes under the cursor, whatever the mode.
func deleteCharacterImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if target == nil {
		return nil, errNoEditor
	}
	count, err := countArgument(args)
	if err != nil {
		return nil, err
	}
	mode := target.GetMode()
	if mode != types.ModeNormal {
		target.Perform(types.EnterMode(types.ModeNormal))
	}
	target.Perform(types.Action{Kind: types.ActionDeleteChar, Count: count})
	if mode != types.ModeNormal {
		target.Perform(types.EnterMode(mode))
	}
	return nil, nil
}

// InsertImpl inserts text at the cursor. Newlines in the text split lines.
func InsertImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if target == nil {
		return nil, errNoEditor
	}
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("insert requires a string argument")
	}
	mode := target.GetMode()
	target.Perform(types.EnterMode(types.ModeInsert))
	for _, c := range golisp.StringValue(val) {
		if c == '\n' {
			target.Perform(types.Do(types.ActionNewLine))
		} else {
			target.Perform(types.AddChar(c))
		}
	}
	target.Perform(types.EnterMode(mode))
	return nil, nil
}

func SaveAsImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if target == nil {
		return nil, errNoEditor
	}
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("save-as requires a string argument")
	}
	target.Perform(types.SaveAs(golisp.StringValue(val)))
	return nil, nil
}

// CommandImpl runs an ex-command, as if typed after a colon.
func CommandImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if target == nil {
		return nil, errNoEditor
	}
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("command requires a string argument")
	}
	target.Perform(types.ExecuteCommand(golisp.StringValue(val)))
	return nil, nil
}

func countArgument(args *golisp.Data) (int, error) {
	if golisp.NilP(args) {
		return 0, nil
	}
	val := golisp.Car(args)
	switch {
	case golisp.IntegerP(val):
		return int(golisp.IntegerValue(val)), nil
	case golisp.FloatP(val):
		return int(golisp.FloatValue(val)), nil
	default:
		return 0, fmt.Errorf("expected a count, got %s", golisp.String(val))
	}
}

// ParseEval evaluates a lisp expression against e and returns the printed result.
func ParseEval(e Scriptable, command string) (string, error) {
	previous := target
	target = e
	defer func() { target = previous }()

	value, err := golisp.ParseAndEval(command)
	if err != nil {
		log.Printf("ERR %+v", err)
		return "", err
	}
	log.Printf("SEXPR %+v", golisp.String(value))
	return golisp.String(value), nil
}

// ParseEvalScript evaluates every expression in a script and returns the
// printed value of the last one.
func ParseEvalScript(e Scriptable, script string) (string, error) {
	return ParseEval(e, "(begin\n"+script+"\n)")
}

// Evaluator binds ParseEval to an editor for its eval command.
func Evaluator(e Scriptable) func(string) (string, error) {
	return func(expr string) (string, error) {
		return ParseEval(e, expr)
	}
}
