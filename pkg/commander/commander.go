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
	"log"
	"strconv"

	"github.com/timburks/ved/pkg/types"
)

// Counts larger than this are reduced to it.
const maxMultiplier = 99999

// State is the part of the editor the commander reads to interpret keys.
type State interface {
	GetMode() types.Mode
	GetCommandText() string
}

// The Commander converts user input into actions for the editor.
type Commander struct {
	debug          bool   // debug mode logs every event and the action it produced
	multiplierText string // multiplier string as it is being entered
}

func NewCommander() *Commander {
	return &Commander{}
}

func (c *Commander) SetDebug(debug bool) {
	c.debug = debug
}

// GetMultiplierText returns a count that is being typed in normal mode.
func (c *Commander) GetMultiplierText() string {
	return c.multiplierText
}

// Translate maps an input event to an action for the current mode. It
// returns false when the event produces no action.
func (c *Commander) Translate(s State, event types.Event) (types.Action, bool) {
	if event.Type != types.EventKey {
		return types.Action{}, false
	}
	var action types.Action
	var ok bool
	switch s.GetMode() {
	case types.ModeNormal:
		action, ok = c.processKeyNormalMode(event)
	case types.ModeInsert:
		action, ok = c.processKeyInsertMode(event)
	case types.ModeCommand:
		action, ok = c.processKeyCommandMode(s, event)
	}
	if c.debug {
		log.Printf("mode=%s event=%+v action=%s ok=%t", s.GetMode(), event, action, ok)
	}
	return action, ok
}

func (c *Commander) processKeyNormalMode(event types.Event) (types.Action, bool) {
	key := event.Key
	ch := event.Ch

	// counts are collected until a key produces an action
	if key == types.KeyNone && (ch >= '1' && ch <= '9' || ch == '0' && c.multiplierText != "") {
		c.multiplierText += string(ch)
		return types.Action{}, false
	}
	count := c.getMultiplier()

	var action types.Action
	switch key {
	case types.KeyArrowUp:
		action = types.Do(types.ActionMoveUp)
	case types.KeyArrowDown:
		action = types.Do(types.ActionMoveDown)
	case types.KeyArrowLeft:
		action = types.Do(types.ActionMoveLeft)
	case types.KeyArrowRight:
		action = types.Do(types.ActionMoveRight)
	case types.KeyHome:
		action = types.Do(types.ActionMoveStartOfLine)
	case types.KeyEnd:
		action = types.Do(types.ActionMoveEndOfLine)
	case types.KeyCtrlD, types.KeyPgdn:
		action = types.Do(types.ActionPageDown)
	case types.KeyCtrlU, types.KeyPgup:
		action = types.Do(types.ActionPageUp)
	case types.KeyCtrlW:
		action = types.Do(types.ActionSave)
	case types.KeyNone:
		switch ch {
		case ':':
			action = types.EnterMode(types.ModeCommand)
		case 'i':
			action = types.EnterMode(types.ModeInsert)
		case 'k':
			action = types.Do(types.ActionMoveUp)
		case 'j':
			action = types.Do(types.ActionMoveDown)
		case 'h':
			action = types.Do(types.ActionMoveLeft)
		case 'l':
			action = types.Do(types.ActionMoveRight)
		case '0':
			action = types.Do(types.ActionMoveStartOfLine)
		case '$':
			action = types.Do(types.ActionMoveEndOfLine)
		case 'n':
			action = types.Do(types.ActionNextBuffer)
		case 'p':
			action = types.Do(types.ActionPreviousBuffer)
		case 'd':
			action = types.Do(types.ActionDeleteLine)
		case 'x':
			action = types.Do(types.ActionDeleteChar)
		default:
			return types.Action{}, false
		}
	default:
		return types.Action{}, false
	}
	action.Count = count
	return action, true
}

func (c *Commander) processKeyInsertMode(event types.Event) (types.Action, bool) {
	switch event.Key {
	case types.KeyEsc: // end an insert
		return types.EnterMode(types.ModeNormal), true
	case types.KeyEnter:
		return types.Do(types.ActionNewLine), true
	case types.KeyBackspace:
		return types.Do(types.ActionDeleteChar), true
	case types.KeyTab:
		return types.AddChar('\t'), true
	case types.KeySpace:
		return types.AddChar(' '), true
	case types.KeyNone:
		if isPrintable(event.Ch) {
			return types.AddChar(event.Ch), true
		}
	}
	return types.Action{}, false
}

func (c *Commander) processKeyCommandMode(s State, event types.Event) (types.Action, bool) {
	switch event.Key {
	case types.KeyEsc:
		return types.EnterMode(types.ModeNormal), true
	case types.KeyEnter:
		return types.ExecuteCommand(s.GetCommandText()), true
	case types.KeyBackspace:
		if s.GetCommandText() == "" {
			return types.Action{}, false
		}
		return types.Do(types.ActionCommandBackspace), true
	case types.KeySpace:
		return types.CommandAppend(' '), true
	case types.KeyNone:
		if isPrintable(event.Ch) {
			return types.CommandAppend(event.Ch), true
		}
	}
	return types.Action{}, false
}

func isPrintable(ch rune) bool {
	return ch >= ' ' && ch != 0x7f
}

func (c *Commander) getMultiplier() int {
	if c.multiplierText == "" {
		return 0
	}
	i, err := strconv.Atoi(c.multiplierText)
	c.multiplierText = ""
	if err != nil || i > maxMultiplier {
		return maxMultiplier
	}
	return i
}
