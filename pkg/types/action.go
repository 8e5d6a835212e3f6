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

package types

import "fmt"

// ActionKind names an intent produced by the commander.
type ActionKind int

// Action kinds
const (
	ActionNone ActionKind = iota
	ActionQuit
	ActionSave
	ActionSaveAs
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMoveStartOfLine
	ActionMoveEndOfLine
	ActionPageUp
	ActionPageDown
	ActionAddChar
	ActionNewLine
	ActionDeleteChar
	ActionDeleteLine
	ActionEnterMode
	ActionNextBuffer
	ActionPreviousBuffer
	ActionCommandAppend
	ActionCommandBackspace
	ActionExecuteCommand
)

var actionNames = map[ActionKind]string{
	ActionNone:             "none",
	ActionQuit:             "quit",
	ActionSave:             "save",
	ActionSaveAs:           "save-as",
	ActionMoveUp:           "up",
	ActionMoveDown:         "down",
	ActionMoveLeft:         "left",
	ActionMoveRight:        "right",
	ActionMoveStartOfLine:  "beginning-of-line",
	ActionMoveEndOfLine:    "end-of-line",
	ActionPageUp:           "page-up",
	ActionPageDown:         "page-down",
	ActionAddChar:          "add-character",
	ActionNewLine:          "newline",
	ActionDeleteChar:       "delete-character",
	ActionDeleteLine:       "delete-row",
	ActionEnterMode:        "enter-mode",
	ActionNextBuffer:       "next-buffer",
	ActionPreviousBuffer:   "previous-buffer",
	ActionCommandAppend:    "command-append",
	ActionCommandBackspace: "command-backspace",
	ActionExecuteCommand:   "command",
}

func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(k))
}

// An Action is a discrete intent applied atomically by the editor.
// Only the fields relevant to Kind are set.
type Action struct {
	Kind  ActionKind
	Ch    rune   // ActionAddChar, ActionCommandAppend
	Mode  Mode   // ActionEnterMode
	Text  string // ActionSaveAs path, ActionExecuteCommand text
	Count int    // repeat count; zero means once
}

// Times returns the number of times the action should be applied.
func (a Action) Times() int {
	if a.Count < 1 {
		return 1
	}
	return a.Count
}

func (a Action) String() string {
	s := a.Kind.String()
	switch a.Kind {
	case ActionAddChar, ActionCommandAppend:
		s += fmt.Sprintf("(%q)", a.Ch)
	case ActionEnterMode:
		s += "(" + a.Mode.String() + ")"
	case ActionSaveAs, ActionExecuteCommand:
		s += fmt.Sprintf("(%q)", a.Text)
	}
	if a.Count > 1 {
		s = fmt.Sprintf("%d*%s", a.Count, s)
	}
	return s
}

// Do builds an action with no arguments.
func Do(kind ActionKind) Action {
	return Action{Kind: kind}
}

func EnterMode(m Mode) Action {
	return Action{Kind: ActionEnterMode, Mode: m}
}

func AddChar(ch rune) Action {
	return Action{Kind: ActionAddChar, Ch: ch}
}

func SaveAs(path string) Action {
	return Action{Kind: ActionSaveAs, Text: path}
}

func ExecuteCommand(text string) Action {
	return Action{Kind: ActionExecuteCommand, Text: text}
}

func CommandAppend(ch rune) Action {
	return Action{Kind: ActionCommandAppend, Ch: ch}
}
