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
	"time"
)

// A status message and the time it was set.
type status struct {
	message string
	time    time.Time
}

func (e *Editor) setStatus(format string, args ...any) {
	e.status = status{message: fmt.Sprintf(format, args...), time: e.now()}
}

// GetMessage returns the status message while it is fresh. Older messages
// are kept but no longer shown.
func (e *Editor) GetMessage() (string, bool) {
	if e.status.message == "" {
		return "", false
	}
	if e.now().Sub(e.status.time) >= e.statusTimeout {
		return "", false
	}
	return e.status.message, true
}

// GetLastMessage returns the most recent status message regardless of its age.
func (e *Editor) GetLastMessage() string {
	return e.status.message
}
