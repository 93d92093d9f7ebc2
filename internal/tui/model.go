// Package tui is the interactive terminal form: one tab per assessment
// variant plus a reference tab. Every committed edit is saved through the
// session.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonathan/ihp-exam/internal/catalog"
	"github.com/jonathan/ihp-exam/internal/exam"
	"github.com/jonathan/ihp-exam/internal/export"
)

// Exporter produces the document of the active tab.
type Exporter interface {
	Export(ctx context.Context, req export.Request) (export.Result, error)
	Busy() bool
}

type mode int

const (
	modeBrowse mode = iota
	modeEdit
	modeConfirmReset
)

// exportDoneMsg carries the outcome of an export started by the form.
type exportDoneMsg struct {
	res export.Result
	err error
}

// Model is the bubbletea model of the form.
type Model struct {
	ctx      context.Context
	session  *exam.Session
	exporter Exporter
	keys     Keys

	tab    int
	cursor map[catalog.Tab]int
	fields map[catalog.Tab][]field
	mode   mode
	editor textarea.Model
	info   viewport.Model
	status string
	failed bool
	busy   bool
	width  int
	height int
}

// New returns a form over session. exporter may be nil, which disables
// export.
func New(ctx context.Context, session *exam.Session, exporter Exporter) *Model {
	ed := textarea.New()
	ed.ShowLineNumbers = false
	ed.CharLimit = 0
	ed.SetHeight(8)

	m := &Model{
		ctx:      ctx,
		session:  session,
		exporter: exporter,
		keys:     NewKeys(),
		cursor:   make(map[catalog.Tab]int),
		fields:   make(map[catalog.Tab][]field),
		editor:   ed,
		info:     viewport.New(80, 20),
		width:    80,
		height:   24,
	}
	for _, v := range catalog.Variants() {
		m.fields[v.ID] = fieldsFor(v)
	}
	m.info.SetContent(infoText())
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// ActiveTab returns the tab being shown.
func (m *Model) ActiveTab() catalog.Tab {
	return catalog.Tabs[m.tab]
}

// Status returns the status line text.
func (m *Model) Status() string {
	return m.status
}

// Exporting reports whether an export started by the form is running.
func (m *Model) Exporting() bool {
	return m.busy
}

func (m *Model) variant() (*catalog.Variant, bool) {
	return catalog.Lookup(m.ActiveTab())
}

func (m *Model) current() (field, bool) {
	fs := m.fields[m.ActiveTab()]
	if len(fs) == 0 {
		return field{}, false
	}
	return fs[m.cursor[m.ActiveTab()]], true
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.editor.SetWidth(max(msg.Width-6, 20))
		m.info.Width = msg.Width
		m.info.Height = max(msg.Height-6, 5)
		return m, nil

	case exportDoneMsg:
		m.busy = false
		switch {
		case msg.err != nil:
			m.setError(fmt.Sprintf("Kunne ikke lage PDF: %v", msg.err))
		case msg.res.Skipped:
			m.setStatus("Ingenting å eksportere.")
		default:
			m.setStatus(fmt.Sprintf("Lagret %s (%d sider)", msg.res.Path, msg.res.Pages))
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeEdit:
			return m.updateEdit(msg)
		case modeConfirmReset:
			return m.updateConfirm(msg)
		}
		return m.updateBrowse(msg)
	}

	if m.mode == modeEdit {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTab):
		m.tab = (m.tab + 1) % len(catalog.Tabs)
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.tab = (m.tab + len(catalog.Tabs) - 1) % len(catalog.Tabs)
		return m, nil
	case key.Matches(msg, m.keys.Export):
		return m, m.startExport()
	}
	for i, b := range m.keys.Tabs {
		if key.Matches(msg, b) {
			m.tab = i
			return m, nil
		}
	}

	v, ok := m.variant()
	if !ok {
		var cmd tea.Cmd
		m.info, cmd = m.info.Update(msg)
		return m, cmd
	}

	fs := m.fields[v.ID]
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor[v.ID] > 0 {
			m.cursor[v.ID]--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor[v.ID] < len(fs)-1 {
			m.cursor[v.ID]++
		}
	case key.Matches(msg, m.keys.Reset):
		m.mode = modeConfirmReset
		m.setStatus(exam.ResetPrompt(v) + " (y/n)")
	case key.Matches(msg, m.keys.NextType) && fs[m.cursor[v.ID]].kind == fieldCustomerType:
		next := nextCustomerType(v, m.session.Record(v).CustomerType)
		if err := m.session.SetCustomerType(m.ctx, v, next); err != nil {
			m.setError(err.Error())
		} else {
			m.setStatus("Kundetype: " + next.Label())
		}
	case key.Matches(msg, m.keys.Edit):
		return m, m.startEdit(v, fs[m.cursor[v.ID]])
	}
	return m, nil
}

func (m *Model) startEdit(v *catalog.Variant, f field) tea.Cmd {
	m.mode = modeEdit
	m.editor.SetValue(f.value(m.session, v))
	if f.multiline() {
		m.editor.SetHeight(8)
	} else {
		m.editor.SetHeight(1)
	}
	m.setStatus("Redigerer " + strings.TrimSpace(f.label))
	return m.editor.Focus()
}

func (m *Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Save):
		v, _ := m.variant()
		f, _ := m.current()
		if err := f.commit(m.ctx, m.session, v, m.editor.Value()); err != nil {
			m.setError(err.Error())
			return m, nil
		}
		m.mode = modeBrowse
		m.editor.Blur()
		m.setStatus("Lagret.")
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeBrowse
		m.editor.Blur()
		m.setStatus("")
		return m, nil
	}

	if f, _ := m.current(); !f.multiline() && msg.Type == tea.KeyEnter {
		return m, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v, _ := m.variant()
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.mode = modeBrowse
		ok, err := m.session.Reset(m.ctx, v, exam.ConfirmFunc(func(string) (bool, error) {
			return true, nil
		}))
		switch {
		case err != nil:
			m.setError(err.Error())
		case ok:
			m.cursor[v.ID] = 0
			m.setStatus(v.ID.Label() + " er nullstilt.")
		}
	case key.Matches(msg, m.keys.No):
		m.mode = modeBrowse
		m.setStatus("Avbrutt.")
	}
	return m, nil
}

// startExport runs the export of the active tab as a command. It returns
// nil while an export is running.
func (m *Model) startExport() tea.Cmd {
	if m.exporter == nil {
		m.setError("Eksport er ikke tilgjengelig.")
		return nil
	}
	if m.busy || m.exporter.Busy() {
		return nil
	}
	m.busy = true
	m.setStatus("Lager PDF…")

	req := export.Request{Tab: m.ActiveTab(), Header: m.session.Header()}
	if v, ok := m.variant(); ok {
		req.Record = m.session.Record(v)
	}
	ctx, exporter := m.ctx, m.exporter
	return func() tea.Msg {
		res, err := exporter.Export(ctx, req)
		return exportDoneMsg{res: res, err: err}
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.failed = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.failed = true
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Prøve i innholdsproduksjon (IHP03-01)"))
	b.WriteString("\n")
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	if v, ok := m.variant(); ok {
		b.WriteString(m.viewFields(v))
	} else {
		b.WriteString(m.info.View())
	}
	b.WriteString("\n")

	if m.mode == modeEdit {
		b.WriteString(editorStyle.Render(m.editor.View()))
		b.WriteString("\n")
	}

	b.WriteString(m.viewStatus())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpLine()))
	return b.String()
}

func (m *Model) viewTabs() string {
	tabs := make([]string, len(catalog.Tabs))
	for i, t := range catalog.Tabs {
		label := fmt.Sprintf("%d %s", i+1, t.Label())
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = tabStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) viewFields(v *catalog.Variant) string {
	fs := m.fields[v.ID]
	cur := m.cursor[v.ID]

	rows := m.height - 8
	if m.mode == modeEdit {
		rows -= 10
	}
	rows = max(rows, 3)
	start := max(0, min(cur-rows/2, len(fs)-rows))
	end := min(len(fs), start+rows)

	var b strings.Builder
	for i := start; i < end; i++ {
		f := fs[i]
		if f.section != "" {
			b.WriteString(sectionStyle.Render(f.section))
			b.WriteString("\n")
		}
		prefix := "  "
		text := oneLine(f.label, 32)
		label := labelStyle.Render(text)
		if i == cur {
			prefix = cursorStyle.Render("> ")
			label = cursorStyle.Inherit(labelStyle).Render(text)
		}
		val := oneLine(f.value(m.session, v), max(m.width-40, 10))
		if val == "" {
			val = mutedStyle.Render("—")
		}
		b.WriteString(prefix + label + " " + val + "\n")
	}
	return b.String()
}

func (m *Model) viewStatus() string {
	switch {
	case m.Exporting():
		return busyStyle.Render("Lager PDF…")
	case m.status == "":
		return ""
	case m.failed:
		return statusErrStyle.Render(m.status)
	}
	return statusOKStyle.Render(m.status)
}

func (m *Model) helpLine() string {
	switch m.mode {
	case modeEdit:
		return "ctrl+s: lagre  esc: avbryt"
	case modeConfirmReset:
		return "y: ja  n: nei"
	}
	if _, ok := m.variant(); !ok {
		return "tab/1-3: fane  ↑/↓: rull  e: last ned PDF  q: avslutt"
	}
	return "tab/1-3: fane  ↑/↓: velg  enter: rediger  e: last ned PDF  r: nullstill  q: avslutt"
}

func oneLine(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) > n {
		return string(r[:n-1]) + "…"
	}
	return s
}

func infoText() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Kompetansemål"))
	b.WriteString("\n")
	for i, aim := range catalog.CompetenceAims {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, aim)
	}
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Kjerneelementer"))
	b.WriteString("\n")
	for _, el := range catalog.CoreElements {
		fmt.Fprintf(&b, "• %s: %s\n", el.Title, el.Description)
	}
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Vurdering"))
	b.WriteString("\n")
	for _, r := range catalog.Rubric {
		fmt.Fprintf(&b, "• %s: %s\n", r.Title, r.Description)
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(catalog.Note))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s\n%s\n", catalog.CompetenceAimsURL, catalog.CoreElementsURL)
	return b.String()
}
