package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/FHQ-Lab/Buatsoalujian-ai/internal/assessment"
	"github.com/FHQ-Lab/Buatsoalujian-ai/internal/docrender"
	"github.com/FHQ-Lab/Buatsoalujian-ai/internal/formscript"
)

// tab indexes the four viewer sections.
type tab int

const (
	tabQuestions tab = iota
	tabAnswerKeys
	tabGrid
	tabRubric
)

var tabTitles = []string{"Soal", "Kunci Jawaban", "Kisi-Kisi", "Rubrik"}

// exportDoneMsg reports the result of a background export.
type exportDoneMsg struct {
	artifact string // "docx" or "script"
	path     string
	err      error
}

// Model is the assessment viewer: a read-only, tabbed view over one
// generated assessment with export shortcuts.
type Model struct {
	assessment *assessment.Assessment

	active    tab
	offsets   [4]int
	width     int
	height    int
	exporting bool
	notice    string
	noticeErr bool
}

// NewModel creates a viewer for the given assessment.
func NewModel(a *assessment.Assessment) Model {
	return Model{assessment: a}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case exportDoneMsg:
		m.exporting = false
		if msg.err != nil {
			m.notice = fmt.Sprintf("Gagal mengekspor %s: %v", msg.artifact, msg.err)
			m.noticeErr = true
		} else {
			m.notice = fmt.Sprintf("Tersimpan: %s", msg.path)
			m.noticeErr = false
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "tab", "right", "l":
			m.active = (m.active + 1) % tab(len(tabTitles))
			return m, nil

		case "shift+tab", "left", "h":
			m.active = (m.active + tab(len(tabTitles)) - 1) % tab(len(tabTitles))
			return m, nil

		case "1", "2", "3", "4":
			m.active = tab(int(msg.String()[0] - '1'))
			return m, nil

		case "up", "k":
			if m.offsets[m.active] > 0 {
				m.offsets[m.active]--
			}
			return m, nil

		case "down", "j":
			m.offsets[m.active]++
			return m, nil

		case "d":
			// One render at a time; a second keypress while the previous
			// export is in flight is ignored.
			if m.exporting {
				return m, nil
			}
			m.exporting = true
			m.notice = "Mengekspor DOCX..."
			m.noticeErr = false
			return m, exportDocxCmd(m.assessment)

		case "s":
			if m.exporting {
				return m, nil
			}
			m.exporting = true
			m.notice = "Mengekspor skrip Google Forms..."
			m.noticeErr = false
			return m, exportScriptCmd(m.assessment)
		}
	}

	return m, nil
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.renderFrame())
	return v
}

// renderFrame composes the full frame: header, tab bar, content, footer.
func (m Model) renderFrame() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := titleStyle.Width(m.width).Render(m.assessment.Title)
	tabBar := m.renderTabBar()
	footer := m.renderFooter()

	chromeHeight := lipgloss.Height(header) + lipgloss.Height(tabBar) + lipgloss.Height(footer) + 2
	contentHeight := m.height - chromeHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.renderContent(contentHeight)

	return header + "\n" + tabBar + "\n\n" + content + "\n" + footer
}

// renderTabBar renders the four tab labels with the active one highlighted.
func (m Model) renderTabBar() string {
	parts := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		label := fmt.Sprintf("%d %s", i+1, title)
		if tab(i) == m.active {
			parts[i] = tabActiveStyle.Render(label)
		} else {
			parts[i] = tabInactiveStyle.Render(label)
		}
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, strings.Join(parts, " "))
}

// renderContent renders the active tab, clipped to height with the
// current scroll offset applied.
func (m Model) renderContent(height int) string {
	contentWidth := m.width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	var body string
	switch m.active {
	case tabQuestions:
		body = viewQuestions(m.assessment, contentWidth)
	case tabAnswerKeys:
		body = viewAnswerKeys(m.assessment, contentWidth)
	case tabGrid:
		body = viewGrid(m.assessment, contentWidth)
	case tabRubric:
		body = viewRubric(m.assessment, contentWidth)
	}

	lines := strings.Split(body, "\n")

	offset := m.offsets[m.active]
	maxOffset := len(lines) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}

	end := offset + height
	if end > len(lines) {
		end = len(lines)
	}
	visible := lines[offset:end]

	indented := make([]string, len(visible))
	for i, line := range visible {
		indented[i] = "  " + line
	}
	return strings.Join(indented, "\n")
}

// renderFooter renders the key hints and the current export notice.
func (m Model) renderFooter() string {
	hints := []struct{ key, desc string }{
		{"Tab", "Ganti tab"},
		{"↑↓", "Gulir"},
		{"d", "Ekspor DOCX"},
		{"s", "Ekspor skrip"},
		{"q", "Keluar"},
	}

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts,
			lipgloss.NewStyle().Foreground(Text).Bold(true).Render(h.key)+
				" "+dimStyle.Render(h.desc))
	}
	line := "  " + strings.Join(parts, "   ")

	if m.notice != "" {
		style := noticeStyle
		if m.noticeErr {
			style = errorStyle
		}
		line += "\n  " + style.Render(m.notice)
	}

	return lipgloss.NewStyle().Width(m.width).Render(line)
}

// exportDocxCmd renders the DOCX document and writes it to the working
// directory, named after the assessment title.
func exportDocxCmd(a *assessment.Assessment) tea.Cmd {
	return func() tea.Msg {
		data, err := docrender.Render(context.Background(), a)
		if err != nil {
			return exportDoneMsg{artifact: "docx", err: err}
		}
		path := docrender.Filename(a.Title)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return exportDoneMsg{artifact: "docx", err: err}
		}
		return exportDoneMsg{artifact: "docx", path: path}
	}
}

// exportScriptCmd writes the Google Apps Script file to the working directory.
func exportScriptCmd(a *assessment.Assessment) tea.Cmd {
	return func() tea.Msg {
		script := formscript.Generate(a)
		path := formscript.Filename
		if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
			return exportDoneMsg{artifact: "script", err: err}
		}
		return exportDoneMsg{artifact: "script", path: path}
	}
}

// Run starts the viewer program.
func Run(a *assessment.Assessment) error {
	p := tea.NewProgram(NewModel(a))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}
