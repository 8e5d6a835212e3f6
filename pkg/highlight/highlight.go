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

// Package highlight styles lines of text for display using chroma lexers
// and styles. Colors are reduced to the 256-color terminal palette.
package highlight

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/timburks/ved/pkg/types"
)

const DefaultTheme = "monokai"

var ErrTokenMismatch = errors.New("tokens do not reproduce the line")

// The Highlighter highlights single lines. Lexers are chosen from the
// language hint, which is usually a file name.
type Highlighter struct {
	style  *chroma.Style
	lexers map[string]chroma.Lexer
}

func NewHighlighter(theme string) *Highlighter {
	style := styles.Get(theme)
	if style == nil {
		style = styles.Fallback
	}
	return &Highlighter{
		style:  style,
		lexers: make(map[string]chroma.Lexer),
	}
}

func (h *Highlighter) lexer(language string) chroma.Lexer {
	if l, ok := h.lexers[language]; ok {
		return l
	}
	var l chroma.Lexer
	if language != "" {
		l = lexers.Match(language)
		if l == nil {
			l = lexers.Get(language)
		}
	}
	if l == nil {
		l = lexers.Fallback
	}
	l = chroma.Coalesce(l)
	h.lexers[language] = l
	return l
}

// Highlight splits line into styled spans.
func (h *Highlighter) Highlight(line string, language string) ([]types.Span, error) {
	if line == "" {
		return nil, nil
	}
	iterator, err := h.lexer(language).Tokenise(nil, line)
	if err != nil {
		return nil, fmt.Errorf("tokenise: %w", err)
	}
	spans := make([]types.Span, 0)
	for _, token := range iterator.Tokens() {
		if token.Value == "" {
			continue
		}
		spans = append(spans, types.Span{
			Style: h.styleFor(token.Type),
			Text:  token.Value,
		})
	}
	// lexers may add a final newline that is not part of the line
	if n := len(spans); n > 0 && !strings.HasSuffix(line, "\n") {
		spans[n-1].Text = strings.TrimSuffix(spans[n-1].Text, "\n")
		if spans[n-1].Text == "" {
			spans = spans[:n-1]
		}
	}
	var joined strings.Builder
	for _, span := range spans {
		joined.WriteString(span.Text)
	}
	if joined.String() != line {
		return nil, ErrTokenMismatch
	}
	return spans, nil
}

func (h *Highlighter) styleFor(t chroma.TokenType) types.Style {
	entry := h.style.Get(t)
	return types.Style{
		Fg:        PaletteColor(entry.Colour),
		Bold:      entry.Bold == chroma.Yes,
		Italic:    entry.Italic == chroma.Yes,
		Underline: entry.Underline == chroma.Yes,
	}
}

// PaletteColor maps a chroma colour to the nearest entry of the xterm
// 256-color palette. Unset colours map to the terminal default.
func PaletteColor(c chroma.Colour) types.Color {
	if !c.IsSet() {
		return types.ColorDefault
	}
	r, g, b := int(c.Red()), int(c.Green()), int(c.Blue())
	var index int
	if r == g && g == b {
		switch {
		case r < 8:
			index = 16
		case r > 238:
			index = 231
		default:
			index = 232 + (r-8)/10
		}
	} else {
		index = 16 + 36*cubeLevel(r) + 6*cubeLevel(g) + cubeLevel(b)
	}
	// palette attributes are offset by one so that zero stays the default
	return types.Color(index + 1)
}

// cubeLevel maps a channel value to one of the six levels of the color cube.
func cubeLevel(v int) int {
	switch {
	case v < 48:
		return 0
	case v < 115:
		return 1
	default:
		return (v - 35) / 40
	}
}
