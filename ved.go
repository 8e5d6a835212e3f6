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
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/timburks/ved/pkg/commander"
	"github.com/timburks/ved/pkg/config"
	"github.com/timburks/ved/pkg/editor"
	"github.com/timburks/ved/pkg/highlight"
	"github.com/timburks/ved/pkg/screen"
	"github.com/timburks/ved/pkg/session"
	"github.com/timburks/ved/pkg/types"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "ved: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := flag.NewFlagSet("ved", flag.ContinueOnError)
	configDir := flags.String("config", config.Dir(), "configuration directory")
	script := flags.String("eval", "", "run a lisp script against the files and exit")
	logFile := flags.String("log", "", "log file (overrides log_file in settings)")
	debug := flags.Bool("debug", false, "log every translated action")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: ved [flags] [paths...]\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	settings, path, err := config.Load(*configDir)
	if err != nil {
		return err
	}
	if *logFile != "" {
		settings.LogFile = *logFile
	}

	if *script == "" && !isTerminal() {
		return fmt.Errorf("standard input and output must be a terminal")
	}

	// The editor manages all text manipulation.
	buffers := make([]*editor.Buffer, 0, flags.NArg())
	for _, filename := range flags.Args() {
		b, err := editor.LoadBuffer(filename)
		if err != nil {
			return err
		}
		buffers = append(buffers, b)
	}
	e := editor.NewEditor(buffers...)
	e.SetTabWidth(settings.TabWidth)
	e.SetStatusTimeout(settings.StatusTimeout.Duration)
	e.SetEvaluator(commander.Evaluator(e))

	if *script != "" {
		// Run a script and exit.
		log.SetOutput(os.Stderr)
		source, err := os.ReadFile(*script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		result, err := commander.ParseEvalScript(e, string(source))
		if err != nil {
			return err
		}
		fmt.Println(result)
		return nil
	}

	// Open a log file.
	f, err := os.OpenFile(settings.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer f.Close()
	log.SetOutput(f)
	log.Printf("settings from %s: %+v", path, settings)

	// The commander converts key events into actions for the editor.
	c := commander.NewCommander()
	c.SetDebug(*debug)

	var h types.Highlighter
	if settings.Highlight {
		h = highlight.NewHighlighter(settings.Theme)
	}

	return session.NewSession(e, c, screen.NewScreen(), h).Run()
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
