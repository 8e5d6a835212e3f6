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

package screen

import (
	"testing"

	"github.com/nsf/termbox-go"

	"github.com/timburks/ved/pkg/types"
)

func TestKeys(t *testing.T) {
	for _, tc := range []struct {
		in   termbox.Key
		want types.Key
	}{
		{0, types.KeyNone},
		{termbox.KeyEsc, types.KeyEsc},
		{termbox.KeyEnter, types.KeyEnter},
		{termbox.KeyBackspace, types.KeyBackspace},
		{termbox.KeyBackspace2, types.KeyBackspace},
		{termbox.KeyTab, types.KeyTab},
		{termbox.KeySpace, types.KeySpace},
		{termbox.KeyArrowUp, types.KeyArrowUp},
		{termbox.KeyPgdn, types.KeyPgdn},
		{termbox.KeyCtrlW, types.KeyCtrlW},
		{termbox.KeyF1, types.KeyUnsupported},
	} {
		if got := key(tc.in); got != tc.want {
			t.Errorf("key(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestAttributes(t *testing.T) {
	fg, bg := attributes(types.Style{Fg: types.ColorRed, Bg: 200, Bold: true, Reverse: true})
	if fg != termbox.ColorRed|termbox.AttrBold|termbox.AttrReverse {
		t.Errorf("Unexpected foreground %x", fg)
	}
	if bg != termbox.Attribute(200) {
		t.Errorf("Unexpected background %x", bg)
	}
}

func TestCloseWithoutInit(t *testing.T) {
	s := NewScreen()
	s.Close()
	s.Close()
}
