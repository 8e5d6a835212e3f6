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

// Package editor implements the core text editing functions of ved.
// All changes to editor state are made by performing actions; the
// editor applies each one completely and then re-clamps the cursor.
// An editor holds one or more buffers and shows one at a time. Each
// buffer keeps its own cursor and scroll position, so switching
// between buffers returns to where you were.
package editor
