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

// Package config reads user settings from settings.toml in the ved
// configuration directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/timburks/ved/pkg/editor"
	"github.com/timburks/ved/pkg/highlight"
)

// DirEnv names the environment variable that overrides the configuration directory.
const DirEnv = "VED_CONFIG_DIR"

const (
	DefaultTheme         = highlight.DefaultTheme
	DefaultTabWidth      = editor.DefaultTabWidth
	DefaultStatusTimeout = editor.DefaultStatusTimeout
	DefaultLogName       = ".vedlog"
	maxTabWidth          = 32
)

type Settings struct {
	Theme         string   `toml:"theme"`
	Highlight     bool     `toml:"highlight"`
	TabWidth      int      `toml:"tab_width"`
	StatusTimeout Duration `toml:"status_timeout"`
	LogFile       string   `toml:"log_file"`
}

// Duration is a time.Duration written as a string such as "5s" in TOML.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// Default returns the settings used when no settings file exists.
func Default() Settings {
	return Settings{
		Theme:         DefaultTheme,
		Highlight:     true,
		TabWidth:      DefaultTabWidth,
		StatusTimeout: Duration{DefaultStatusTimeout},
		LogFile:       defaultLogFile(),
	}
}

func defaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), DefaultLogName)
	}
	return filepath.Join(home, DefaultLogName)
}

// Dir returns the configuration directory.
func Dir() string {
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "ved")
	}
	return ".ved"
}

// Load reads settings.toml from dir. A missing file is not an error and
// gives the default settings; values that are present override defaults.
func Load(dir string) (Settings, string, error) {
	path := filepath.Join(dir, "settings.toml")
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), path, nil
	}
	if err != nil {
		return Default(), path, fmt.Errorf("read settings %q: %w", path, err)
	}
	settings, err := Decode(data)
	if err != nil {
		return Default(), path, fmt.Errorf("parse settings %q: %w", path, err)
	}
	return settings, path, nil
}

// Decode parses TOML settings on top of the defaults.
func Decode(data []byte) (Settings, error) {
	settings := Default()
	if err := toml.Unmarshal(data, &settings); err != nil {
		return Default(), err
	}
	return Normalise(settings), nil
}

// Encode writes settings as TOML.
func Encode(settings Settings) ([]byte, error) {
	return toml.Marshal(Normalise(settings))
}

// Normalise replaces missing or out-of-range values with defaults.
func Normalise(s Settings) Settings {
	if s.Theme == "" {
		s.Theme = DefaultTheme
	}
	if s.TabWidth < 1 || s.TabWidth > maxTabWidth {
		s.TabWidth = DefaultTabWidth
	}
	if s.StatusTimeout.Duration <= 0 {
		s.StatusTimeout = Duration{DefaultStatusTimeout}
	}
	if s.LogFile == "" {
		s.LogFile = defaultLogFile()
	}
	return s
}
