// Package tui is the application shell: a split-pane Mermaid editor with a
// live preview, driven by a single bubbletea event loop. All mutable state
// lives in the Model and is only touched from Update.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mermed/internal/clip"
	"mermed/internal/doc"
	"mermed/internal/export"
	"mermed/internal/render"
	"mermed/internal/settings"
	"mermed/internal/tui/state"
	"mermed/internal/tui/util"
	"mermed/internal/tui/widgets/helpoverlay"
	"mermed/internal/tui/widgets/preview"
	"mermed/internal/tui/widgets/statusbar"
	"mermed/internal/view"
)

const (
	// Clipboard is inspected once, shortly after startup.
	clipDelay = 600 * time.Millisecond

	// Zoom glide frame interval.
	animFrame = 30 * time.Millisecond
)

type mode int

const (
	modeEdit mode = iota
	modePromptOpen
	modePromptSave
	modeConfirmClip
	modeDiff
	modeTheme
	modeHelp
)

type (
	clipTickMsg struct{}
	clipTextMsg struct{ text string }
	animTickMsg struct{}
	initMsg     struct{}
)

// Options wires the shell to its collaborators. Store may be nil when the
// settings database could not be opened; the app then runs without
// persistence.
type Options struct {
	Scheduler   *render.Scheduler
	Store       *settings.Store
	InitialPath string
	Theme       string
	NoColor     bool
	Logf        func(format string, args ...any)
}

type Model struct {
	mode mode
	ui   state.UIState
	keys keyMap

	ta   textarea.Model
	ti   textinput.Model
	prev preview.Model
	bar  statusbar.StatusBar
	help helpoverlay.HelpOverlay

	sched *render.Scheduler
	store *settings.Store
	doc   *doc.Document
	logf  func(format string, args ...any)

	lastText  string // last snapshot handed to the scheduler
	markup    string // last successful render, used by export
	rendered  bool
	clipText  string // clipboard candidate awaiting confirmation
	themeIdx  int
	recent    []string
	initPath  string
	noColor   bool
	animating bool
}

func New(opts Options) Model {
	logf := opts.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}
	ta := textarea.New()
	ta.Placeholder = "graph TD\n  A-->B"
	ta.Focus()

	theme := opts.Theme
	if !ValidTheme(theme) {
		theme = DefaultTheme
	}
	m := Model{
		keys:     defaultKeyMap(),
		ta:       ta,
		ti:       textinput.New(),
		prev:     preview.New(),
		bar:      statusbar.NewStatusBar(),
		help:     helpoverlay.NewHelpOverlay(),
		sched:    opts.Scheduler,
		store:    opts.Store,
		doc:      doc.New(),
		logf:     logf,
		initPath: opts.InitialPath,
		noColor:  util.NoColor(opts.NoColor),
	}
	m.ui = state.SetTheme(m.ui, theme)
	m.ui = state.SetStatus(m.ui, "Ready")
	m.sched.SetTheme(theme)
	for i, t := range Themes {
		if t == theme {
			m.themeIdx = i
		}
	}
	if m.store != nil {
		if recent, err := m.store.Recent(); err == nil {
			m.recent = recent
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		func() tea.Msg { return initMsg{} },
		tea.Tick(clipDelay, func(time.Time) tea.Msg { return clipTickMsg{} }),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case initMsg:
		if m.initPath != "" {
			m.openFile(m.initPath)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width, msg.Height)
		m.layout()
		return m, nil

	case render.Update:
		m.applyRender(msg)
		return m, nil

	case tea.MouseMsg:
		if m.mode != modeEdit {
			return m, nil
		}
		m.prev.HandleMouse(msg)
		cmd := m.maybeAnimate()
		return m, cmd

	case animTickMsg:
		m.animating = false
		if m.prev.Camera().Step() {
			return m, m.animateCmd()
		}
		return m, nil

	case clipTickMsg:
		return m, func() tea.Msg { return clipTextMsg{text: clip.Read()} }

	case clipTextMsg:
		if m.mode == modeEdit && clip.LooksLikeDiagram(msg.text) && msg.text != m.ta.Value() {
			m.clipText = msg.text
			m.mode = modeConfirmClip
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.sched.Close()
		return m, tea.Quit
	}

	switch m.mode {
	case modeEdit:
		return m.updateEdit(msg)

	case modePromptOpen, modePromptSave:
		switch msg.String() {
		case "esc":
			m.mode = modeEdit
			m.ta.Focus()
			return m, nil
		case "enter":
			path := m.ti.Value()
			save := m.mode == modePromptSave
			m.mode = modeEdit
			m.ta.Focus()
			if path == "" {
				return m, nil
			}
			if save {
				m.saveFile(path)
			} else {
				m.openFile(path)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd

	case modeConfirmClip:
		switch msg.String() {
		case "y", "Y", "enter":
			m.adoptClipboard()
		}
		m.mode = modeEdit
		return m, nil

	case modeDiff, modeHelp:
		switch msg.String() {
		case "esc", "q", "ctrl+d", "ctrl+h":
			m.mode = modeEdit
		}
		return m, nil

	case modeTheme:
		switch msg.String() {
		case "esc":
			m.mode = modeEdit
		case "up", "k":
			if m.themeIdx > 0 {
				m.themeIdx--
			}
		case "down", "j":
			if m.themeIdx < len(Themes)-1 {
				m.themeIdx++
			}
		case "enter":
			m.mode = modeEdit
			m.applyTheme(Themes[m.themeIdx])
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Open):
		m.promptPath(modePromptOpen, "")
		return m, nil
	case key.Matches(msg, m.keys.Save):
		if m.doc.Path() != "" {
			m.saveFile(m.doc.Path())
			return m, nil
		}
		m.promptPath(modePromptSave, doc.DefaultName)
		return m, nil
	case key.Matches(msg, m.keys.ExportSVG):
		m.exportFile(export.SVGName, export.SVG)
		return m, nil
	case key.Matches(msg, m.keys.ExportPNG):
		m.exportFile(export.PNGName, export.PNG)
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		m.mode = modeTheme
		return m, nil
	case key.Matches(msg, m.keys.Diff):
		m.mode = modeDiff
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.mode = modeHelp
		return m, nil
	case key.Matches(msg, m.keys.FocusNext):
		m.ui = state.ToggleFocus(m.ui)
		if m.ui.Focus == state.FocusEditor {
			m.ta.Focus()
		} else {
			m.ta.Blur()
		}
		return m, nil
	}

	if m.ui.Focus == state.FocusPreview {
		switch msg.String() {
		case "+", "=":
			m.prev.Camera().ZoomBy(view.ZoomStepKey)
			cmd := m.maybeAnimate()
			return m, cmd
		case "-":
			m.prev.Camera().ZoomBy(-view.ZoomStepKey)
			cmd := m.maybeAnimate()
			return m, cmd
		case "0":
			m.prev.Camera().Reset()
			return m, nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	if snapshot := m.ta.Value(); snapshot != m.lastText {
		m.lastText = snapshot
		m.sched.TextChanged(snapshot)
		m.ui = state.SetDirty(m.ui, m.doc.Dirty(snapshot))
	}
	return m, cmd
}

// applyRender folds a scheduler update into the UI. The scheduler already
// guarantees the update is newer than anything applied before.
func (m *Model) applyRender(u render.Update) {
	switch {
	case u.Empty:
		m.prev.SetPlaceholder()
		m.markup = ""
		m.rendered = false
		m.ui = state.SetStatus(m.ui, "Ready")
	case u.Err != nil:
		m.prev.SetFailure(u.Err.Error())
		m.rendered = false
		m.ui = state.SetError(m.ui, "Error: "+u.Err.Error())
	default:
		m.prev.SetMarkup(u.Markup)
		m.markup = u.Markup
		m.rendered = true
		m.ui = state.SetStatus(m.ui, "Syntax OK")
	}
}

func (m *Model) promptPath(target mode, def string) {
	m.mode = target
	m.ti = textinput.New()
	m.ti.SetValue(def)
	m.ti.CursorEnd()
	m.ti.Focus()
	m.ta.Blur()
}

func (m *Model) openFile(path string) {
	text, err := m.doc.Open(path)
	if err != nil {
		m.ui = state.SetError(m.ui, "Error: "+err.Error())
		return
	}
	m.ta.SetValue(text)
	m.lastText = text
	m.prev.Camera().Reset()
	m.ui = state.SetDirty(m.ui, false)
	m.ui = state.SetStatus(m.ui, "Opened "+m.doc.Name())
	m.sched.RenderNow(text)
	if m.store != nil {
		if err := m.store.Touch(path); err != nil {
			m.logf("settings: %v", err)
		}
	}
}

func (m *Model) saveFile(path string) {
	snapshot := m.ta.Value()
	if err := m.doc.Save(path, snapshot); err != nil {
		m.ui = state.SetError(m.ui, "Error: "+err.Error())
		return
	}
	m.ui = state.SetDirty(m.ui, false)
	m.ui = state.SetStatus(m.ui, "Saved "+m.doc.Name())
	if m.store != nil {
		if err := m.store.Touch(path); err != nil {
			m.logf("settings: %v", err)
		}
	}
}

func (m *Model) exportFile(name string, write func(markup, path string) error) {
	if err := write(m.markup, name); err != nil {
		m.ui = state.SetError(m.ui, "Error: "+err.Error())
		return
	}
	m.ui = state.SetStatus(m.ui, "Exported "+name)
}

func (m *Model) applyTheme(name string) {
	m.ui = state.SetTheme(m.ui, name)
	if m.store != nil {
		if err := m.store.SetTheme(name); err != nil {
			m.logf("settings: %v", err)
		}
	}
	// Theme re-renders bypass the debounce.
	m.sched.ThemeChanged(m.ta.Value(), name)
}

func (m *Model) adoptClipboard() {
	m.ta.SetValue(m.clipText)
	m.lastText = m.clipText
	m.ui = state.SetDirty(m.ui, m.doc.Dirty(m.clipText))
	m.ui = state.SetStatus(m.ui, "Imported diagram from clipboard")
	m.prev.Camera().Reset()
	m.sched.RenderNow(m.clipText)
	m.clipText = ""
}

func (m *Model) maybeAnimate() tea.Cmd {
	if m.animating || !m.prev.Camera().Animating() {
		return nil
	}
	return m.animateCmd()
}

func (m *Model) animateCmd() tea.Cmd {
	m.animating = true
	return tea.Tick(animFrame, func(time.Time) tea.Msg { return animTickMsg{} })
}

// layout sizes the two panes: editor on the left half, preview on the
// right, one status line at the bottom. Mouse coordinates are translated
// into the preview's inner frame.
func (m *Model) layout() {
	w, h := m.ui.Width, m.ui.Height
	if w < 10 || h < 5 {
		return
	}
	paneH := h - 1
	edW := w / 2
	pvW := w - edW
	m.ta.SetWidth(edW - 2)
	m.ta.SetHeight(paneH - 2)
	m.prev.SetFrame(edW+1, 1, pvW-2, paneH-2)
}

func (m Model) View() string {
	if m.ui.Width == 0 {
		return "loading..."
	}
	pal := util.ThemePalette(m.ui.Theme)
	if m.noColor {
		// Zero-value colors leave styles unstyled.
		pal = util.Palette{}
	}
	switch m.mode {
	case modeHelp:
		return m.help.View()
	case modeDiff:
		return renderUnsavedDiff(m.doc.Baseline(), m.ta.Value(), pal)
	case modeTheme:
		return m.viewThemePicker(pal)
	}
	return m.viewMain(pal)
}

func (m Model) viewMain(pal util.Palette) string {
	paneH := m.ui.Height - 1
	edW := m.ui.Width / 2
	pvW := m.ui.Width - edW

	edBorder := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(pal.Border)
	pvBorder := edBorder
	if m.ui.Focus == state.FocusEditor {
		edBorder = edBorder.BorderForeground(pal.Primary)
	} else {
		pvBorder = pvBorder.BorderForeground(pal.Primary)
	}

	editor := edBorder.Width(edW - 2).Height(paneH - 2).Render(m.ta.View())
	prev := pvBorder.Width(pvW - 2).Height(paneH - 2).Render(m.prev.View(pal))
	panes := lipgloss.JoinHorizontal(lipgloss.Top, editor, prev)

	bottom := m.bar.View(m.ui, m.doc.Name(), m.prev.Camera().Zoom(), pal)
	switch m.mode {
	case modePromptOpen:
		bottom = m.viewPrompt("Open file: ", pal)
	case modePromptSave:
		bottom = m.viewPrompt("Save as: ", pal)
	case modeConfirmClip:
		bottom = lipgloss.NewStyle().Foreground(pal.Primary).
			Render("Clipboard looks like a diagram. Replace buffer? (y/n)")
	}
	return lipgloss.JoinVertical(lipgloss.Left, panes, bottom)
}

func (m Model) viewPrompt(label string, pal util.Palette) string {
	line := lipgloss.NewStyle().Foreground(pal.Primary).Render(label) + m.ti.View()
	if m.mode == modePromptOpen && len(m.recent) > 0 {
		line += lipgloss.NewStyle().Foreground(pal.Muted).Render("  (recent: " + m.recent[0] + ")")
	}
	return line
}

func (m Model) viewThemePicker(pal util.Palette) string {
	title := lipgloss.NewStyle().Bold(true).Render("Theme")
	sel := lipgloss.NewStyle().Foreground(pal.Primary).Bold(true)
	out := title + "\n\n"
	for i, t := range Themes {
		line := "  " + t
		if t == m.ui.Theme {
			line += " (current)"
		}
		if i == m.themeIdx {
			line = sel.Render("> " + t)
			if t == m.ui.Theme {
				line += " (current)"
			}
		}
		out += line + "\n"
	}
	out += "\nenter: apply   esc: cancel\n"
	return out
}
