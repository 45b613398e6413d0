// Copyright
// SPDX-License-Identifier: MIT
// mermed: terminal Mermaid editor with live preview via mmdc, pan/zoom, themes, SVG/PNG export
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"mermed/internal/render"
	"mermed/internal/settings"
	appTUI "mermed/internal/tui"
)

const Version = "0.3.0"

// Quiet interval between the last edit and the render it triggers.
const renderQuiet = 300 * time.Millisecond

func main() {
	fs := flag.NewFlagSet("mermed", flag.ExitOnError)
	fs.Usage = usage
	theme := fs.String("theme", "", "Diagram theme: default|dark|forest|neutral|base (invalid names are ignored)")
	stateDir := fs.String("state-dir", "", "Settings directory (default: ~/.mermed)")
	logPath := fs.String("log-file", "", "Append logs to file (created if missing)")
	noColor := fs.Bool("no-color", false, "Disable colored output (NO_COLOR is also honored)")
	verbose := fs.Bool("v", false, "Verbose logs")
	version := fs.Bool("version", false, "Print version")
	_ = fs.Parse(os.Args[1:])

	if *version {
		fmt.Println("mermed", Version)
		return
	}

	lf, err := openLogFile(*logPath)
	if err != nil {
		fmt.Println("Could not open log file:", err)
	}
	defer func() {
		if lf != nil {
			_ = lf.Close()
		}
	}()
	if lf != nil {
		log.SetOutput(lf)
	}
	logf := func(format string, args ...any) {
		if lf == nil && !*verbose {
			return
		}
		log.Printf(format, args...)
	}

	// Persisted state: the last-selected theme. A broken settings store is
	// not fatal; the app just runs without persistence.
	store, err := settings.Open(*stateDir)
	if err != nil {
		logf("settings unavailable: %v", err)
		store = nil
	} else {
		defer store.Close()
	}

	// Theme precedence: valid -theme flag, then persisted, then default.
	selected := *theme
	if !appTUI.ValidTheme(selected) {
		selected = ""
		if store != nil {
			if persisted, err := store.Theme(); err == nil && appTUI.ValidTheme(persisted) {
				selected = persisted
			}
		}
	}
	if selected == "" {
		selected = appTUI.DefaultTheme
	}

	var initialPath string
	if fs.NArg() > 0 {
		initialPath = fs.Arg(0)
	}

	renderer := render.NewMermaidCLI(logf)

	// The program pointer is filled in below; the scheduler only delivers
	// results once the event loop is running.
	var p *tea.Program
	sched := render.NewScheduler(renderer, renderQuiet, func(u render.Update) {
		if p != nil {
			p.Send(u)
		}
	}, logf)

	m := appTUI.New(appTUI.Options{
		Scheduler:   sched,
		Store:       store,
		InitialPath: initialPath,
		Theme:       selected,
		NoColor:     *noColor,
		Logf:        logf,
	})
	p = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		sched.Close()
		fmt.Fprintln(os.Stderr, "mermed:", err)
		os.Exit(1)
	}
	sched.Close()
}

func usage() {
	fmt.Println(`mermed ` + Version + `
Terminal Mermaid editor with a live preview rendered through mmdc (mermaid-cli).
USAGE
  mermed [options] [FILE]
OPTIONS
  -theme NAME      Diagram theme: default|dark|forest|neutral|base.
                   Invalid names are ignored (persisted/default theme is used).
  -state-dir PATH  Settings directory (default: ~/.mermed)
  -log-file PATH   Append logs to file (created if missing)
  -no-color        Disable colored output (NO_COLOR is also honored)
  -v               Verbose logs
  -version         Print version
KEYS
  ctrl+o open   ctrl+s save   ctrl+e export SVG   ctrl+g export PNG
  ctrl+t theme  ctrl+d unsaved changes   ctrl+h help   ctrl+q quit
NOTES
  • The preview re-renders 300 ms after the last edit; theme changes re-render immediately.
  • Export writes diagram.svg / diagram.png (2x) to the current directory.
  • Requires mmdc on PATH: npm install -g @mermaid-js/mermaid-cli`)
}

func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		_ = os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	_, _ = fmt.Fprintf(f, "=== mermed %s started at %s ===\n", Version, time.Now().Format(time.RFC3339))
	return f, nil
}
