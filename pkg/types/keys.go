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

// EventType distinguishes key presses from terminal resizes.
type EventType int

// Event types
const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventError
)

// Key identifies a non-character key. Printable input arrives in Event.Ch
// with Key set to KeyNone.
type Key int

// Keys
const (
	KeyNone Key = iota
	KeyUnsupported
	KeyEsc
	KeyEnter
	KeyBackspace
	KeyTab
	KeySpace
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeyDelete
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlK
	KeyCtrlL
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
)

// Event is an input event read from the terminal.
type Event struct {
	Type EventType
	Key  Key
	Ch   rune
	Size Size  // new terminal size for EventResize
	Err  error // set for EventError
}

// KeyEvent builds a key event for a special key.
func KeyEvent(k Key) Event {
	return Event{Type: EventKey, Key: k}
}

// CharEvent builds a key event for a printable character.
func CharEvent(ch rune) Event {
	return Event{Type: EventKey, Ch: ch}
}

// ResizeEvent builds a resize event.
func ResizeEvent(rows, cols int) Event {
	return Event{Type: EventResize, Size: Size{Rows: rows, Cols: cols}}
}
