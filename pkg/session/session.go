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

// Package session runs the editor's main loop against a terminal:
// render, read an event, translate it to an action, perform it, repeat.
package session

import (
	"fmt"
	"log"

	"github.com/timburks/ved/pkg/commander"
	"github.com/timburks/ved/pkg/editor"
	"github.com/timburks/ved/pkg/types"
)

// A Terminal is the screen the session draws on and reads input from.
// Init acquires it and Close releases it; Close must tolerate repeated calls.
type Terminal interface {
	types.Display
	Init() error
	Close()
	Size() types.Size
	PollEvent() types.Event
	Clear()
	Flush() error
}

// A Session ties an editor and a commander to a terminal.
type Session struct {
	editor      *editor.Editor
	commander   *commander.Commander
	terminal    Terminal
	highlighter types.Highlighter // nil draws plain text
	failed      map[string]bool   // languages the highlighter failed on
}

func NewSession(e *editor.Editor, c *commander.Commander, t Terminal, h types.Highlighter) *Session {
	return &Session{
		editor:      e,
		commander:   c,
		terminal:    t,
		highlighter: h,
		failed:      make(map[string]bool),
	}
}

// Run acquires the terminal and processes events until the editor quits.
// The terminal is released on every return path, including panics.
func (s *Session) Run() error {
	if err := s.terminal.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	defer s.terminal.Close()

	s.editor.SetSize(s.terminal.Size())
	for {
		s.editor.Clamp()
		if err := s.Render(); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		if s.editor.Done() {
			return nil
		}
		if err := s.ProcessEvent(s.terminal.PollEvent()); err != nil {
			return err
		}
	}
}

// ProcessEvent applies one input event to the editor.
func (s *Session) ProcessEvent(event types.Event) error {
	switch event.Type {
	case types.EventResize:
		s.editor.SetSize(event.Size)
	case types.EventKey:
		if action, ok := s.commander.Translate(s.editor, event); ok {
			s.editor.Perform(action)
		}
	case types.EventError:
		log.Printf("terminal event error: %v", event.Err)
		return fmt.Errorf("read event: %w", event.Err)
	}
	return nil
}
