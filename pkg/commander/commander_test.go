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
	"testing"

	"github.com/timburks/ved/pkg/types"
)

type state struct {
	mode types.Mode
	text string
}

func (s *state) GetMode() types.Mode    { return s.mode }
func (s *state) GetCommandText() string { return s.text }

func TestNormalModeKeys(t *testing.T) {
	for _, tc := range []struct {
		event types.Event
		want  types.Action
	}{
		{types.CharEvent(':'), types.EnterMode(types.ModeCommand)},
		{types.CharEvent('i'), types.EnterMode(types.ModeInsert)},
		{types.CharEvent('k'), types.Do(types.ActionMoveUp)},
		{types.CharEvent('j'), types.Do(types.ActionMoveDown)},
		{types.CharEvent('h'), types.Do(types.ActionMoveLeft)},
		{types.CharEvent('l'), types.Do(types.ActionMoveRight)},
		{types.CharEvent('0'), types.Do(types.ActionMoveStartOfLine)},
		{types.CharEvent('$'), types.Do(types.ActionMoveEndOfLine)},
		{types.CharEvent('n'), types.Do(types.ActionNextBuffer)},
		{types.CharEvent('p'), types.Do(types.ActionPreviousBuffer)},
		{types.CharEvent('d'), types.Do(types.ActionDeleteLine)},
		{types.CharEvent('x'), types.Do(types.ActionDeleteChar)},
		{types.KeyEvent(types.KeyArrowUp), types.Do(types.ActionMoveUp)},
		{types.KeyEvent(types.KeyArrowDown), types.Do(types.ActionMoveDown)},
		{types.KeyEvent(types.KeyArrowLeft), types.Do(types.ActionMoveLeft)},
		{types.KeyEvent(types.KeyArrowRight), types.Do(types.ActionMoveRight)},
		{types.KeyEvent(types.KeyHome), types.Do(types.ActionMoveStartOfLine)},
		{types.KeyEvent(types.KeyEnd), types.Do(types.ActionMoveEndOfLine)},
		{types.KeyEvent(types.KeyCtrlD), types.Do(types.ActionPageDown)},
		{types.KeyEvent(types.KeyPgdn), types.Do(types.ActionPageDown)},
		{types.KeyEvent(types.KeyCtrlU), types.Do(types.ActionPageUp)},
		{types.KeyEvent(types.KeyPgup), types.Do(types.ActionPageUp)},
		{types.KeyEvent(types.KeyCtrlW), types.Do(types.ActionSave)},
	} {
		c := NewCommander()
		got, ok := c.Translate(&state{mode: types.ModeNormal}, tc.event)
		if !ok || got != tc.want {
			t.Errorf("Translate(%+v) = %s, %t; want %s", tc.event, got, ok, tc.want)
		}
	}
}

func TestUnboundKeysProduceNothing(t *testing.T) {
	c := NewCommander()
	s := &state{mode: types.ModeNormal}
	for _, event := range []types.Event{
		types.CharEvent('z'),
		types.KeyEvent(types.KeyEnter),
		types.KeyEvent(types.KeyCtrlZ),
		types.ResizeEvent(10, 10),
	} {
		if a, ok := c.Translate(s, event); ok {
			t.Errorf("Translate(%+v) produced %s", event, a)
		}
	}
	s.mode = types.ModeInsert
	if a, ok := c.Translate(s, types.CharEvent(0x7f)); ok {
		t.Errorf("Control character produced %s", a)
	}
}

func TestCounts(t *testing.T) {
	c := NewCommander()
	s := &state{mode: types.ModeNormal}
	for _, ch := range "120" {
		if _, ok := c.Translate(s, types.CharEvent(ch)); ok {
			t.Fatalf("Digit %q should not produce an action", ch)
		}
	}
	if c.GetMultiplierText() != "120" {
		t.Errorf("Unexpected pending count %q", c.GetMultiplierText())
	}
	a, ok := c.Translate(s, types.CharEvent('j'))
	if !ok || a.Kind != types.ActionMoveDown || a.Count != 120 {
		t.Errorf("Unexpected action %s", a)
	}
	if c.GetMultiplierText() != "" {
		t.Errorf("Count should be consumed")
	}
	a, _ = c.Translate(s, types.CharEvent('j'))
	if a.Times() != 1 {
		t.Errorf("Count should not carry over, got %s", a)
	}
	for _, ch := range "9999999" {
		c.Translate(s, types.CharEvent(ch))
	}
	a, _ = c.Translate(s, types.CharEvent('x'))
	if a.Count != maxMultiplier {
		t.Errorf("Count should be capped, got %d", a.Count)
	}
}

func TestInsertModeKeys(t *testing.T) {
	s := &state{mode: types.ModeInsert}
	for _, tc := range []struct {
		event types.Event
		want  types.Action
	}{
		{types.KeyEvent(types.KeyEsc), types.EnterMode(types.ModeNormal)},
		{types.KeyEvent(types.KeyEnter), types.Do(types.ActionNewLine)},
		{types.KeyEvent(types.KeyBackspace), types.Do(types.ActionDeleteChar)},
		{types.KeyEvent(types.KeyTab), types.AddChar('\t')},
		{types.KeyEvent(types.KeySpace), types.AddChar(' ')},
		{types.CharEvent('q'), types.AddChar('q')},
		{types.CharEvent('1'), types.AddChar('1')},
		{types.CharEvent('ü'), types.AddChar('ü')},
	} {
		got, ok := NewCommander().Translate(s, tc.event)
		if !ok || got != tc.want {
			t.Errorf("Translate(%+v) = %s, %t; want %s", tc.event, got, ok, tc.want)
		}
	}
}

func TestCommandModeKeys(t *testing.T) {
	c := NewCommander()
	s := &state{mode: types.ModeCommand}
	if _, ok := c.Translate(s, types.KeyEvent(types.KeyBackspace)); ok {
		t.Errorf("Backspace on an empty command line should do nothing")
	}
	s.text = "wq"
	for _, tc := range []struct {
		event types.Event
		want  types.Action
	}{
		{types.KeyEvent(types.KeyEsc), types.EnterMode(types.ModeNormal)},
		{types.KeyEvent(types.KeyEnter), types.ExecuteCommand("wq")},
		{types.KeyEvent(types.KeyBackspace), types.Do(types.ActionCommandBackspace)},
		{types.KeyEvent(types.KeySpace), types.CommandAppend(' ')},
		{types.CharEvent('!'), types.CommandAppend('!')},
	} {
		got, ok := c.Translate(s, tc.event)
		if !ok || got != tc.want {
			t.Errorf("Translate(%+v) = %s, %t; want %s", tc.event, got, ok, tc.want)
		}
	}
}
