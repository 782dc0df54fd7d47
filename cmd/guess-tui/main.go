package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Interactive browser for guess CSVs produced by annotate-trks: a
// scrollable per-flight table of entry/exit assignments with a toggle to
// hide flights that got no assignment at all.

const listHeight = 25

// guessRow is one parsed line of the guess CSV.
type guessRow struct {
	callsign      string
	date          string
	entryPoint    string
	entryDistance string
	exitPoint     string
	exitDistance  string
}

func (r guessRow) resolved() bool {
	return r.entryPoint != "" || r.exitPoint != ""
}

type model struct {
	rows         []guessRow
	hasDate      bool
	selected     int
	offset       int
	onlyResolved bool
	source       string
}

func (m model) Init() tea.Cmd {
	return nil
}

// visible returns the rows under the current filter.
func (m model) visible() []guessRow {
	if !m.onlyResolved {
		return m.rows
	}
	var out []guessRow
	for _, r := range m.rows {
		if r.resolved() {
			out = append(out, r)
		}
	}
	return out
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.visible())-1 {
				m.selected++
			}
		case "pgup":
			m.selected -= listHeight
			if m.selected < 0 {
				m.selected = 0
			}
		case "pgdown":
			m.selected += listHeight
			if n := len(m.visible()); m.selected >= n {
				m.selected = n - 1
			}
		case "g":
			m.selected = 0
		case "G":
			m.selected = len(m.visible()) - 1
		case "u":
			m.onlyResolved = !m.onlyResolved
			m.selected = 0
			m.offset = 0
		}

		// Keep the selection inside the window.
		if m.selected < m.offset {
			m.offset = m.selected
		}
		if m.selected >= m.offset+listHeight {
			m.offset = m.selected - listHeight + 1
		}
	}
	return m, nil
}

func (m model) View() string {
	var s strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86")).
		Background(lipgloss.Color("235")).
		Padding(0, 1)
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	unresolvedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	s.WriteString(titleStyle.Render("TRKGUESS RESULTS — " + m.source))
	s.WriteString("\n\n")

	rows := m.visible()
	if len(rows) == 0 {
		s.WriteString("No flights to show.\n\n")
		s.WriteString(helpStyle.Render("U: Toggle unresolved  Q: Quit"))
		s.WriteString("\n")
		return s.String()
	}

	s.WriteString(headerStyle.Render(m.formatRow(guessRow{
		callsign:      "Callsign",
		date:          "Date",
		entryPoint:    "Entry",
		entryDistance: "Dist(km)",
		exitPoint:     "Exit",
		exitDistance:  "Dist(km)",
	}, false)))
	s.WriteString("\n")

	end := m.offset + listHeight
	if end > len(rows) {
		end = len(rows)
	}
	for i := m.offset; i < end; i++ {
		line := m.formatRow(rows[i], true)
		switch {
		case i == m.selected:
			line = selectedStyle.Render("> " + line)
		case !rows[i].resolved():
			line = unresolvedStyle.Render("  " + line)
		default:
			line = "  " + line
		}
		s.WriteString(line)
		s.WriteString("\n")
	}

	resolved := 0
	for _, r := range m.rows {
		if r.resolved() {
			resolved++
		}
	}
	s.WriteString(fmt.Sprintf("\n%d flights, %d with an assignment (%d/%d shown)\n", len(m.rows), resolved, end-m.offset, len(rows)))
	s.WriteString(helpStyle.Render("↑/↓: Select  PGUP/PGDN: Page  G/g: End/start  U: Toggle unresolved  Q: Quit"))
	s.WriteString("\n")
	return s.String()
}

// formatRow lays a row out in fixed columns; markEmpty renders missing
// assignment fields as a dash.
func (m model) formatRow(r guessRow, markEmpty bool) string {
	cell := func(v string, width int) string {
		if v == "" && markEmpty {
			v = "-"
		}
		if len(v) > width {
			v = v[:width]
		}
		return fmt.Sprintf("%-*s", width, v)
	}

	var b strings.Builder
	b.WriteString(cell(r.callsign, 10))
	if m.hasDate {
		b.WriteString(cell(r.date, 10))
	}
	b.WriteString(cell(r.entryPoint, 8))
	b.WriteString(cell(trimDistance(r.entryDistance), 10))
	b.WriteString(cell(r.exitPoint, 8))
	b.WriteString(cell(trimDistance(r.exitDistance), 10))
	return b.String()
}

// trimDistance shortens full-precision distances for display.
func trimDistance(s string) string {
	if i := strings.Index(s, "."); i >= 0 && len(s) > i+3 {
		return s[:i+3]
	}
	return s
}

// loadGuessCSV reads a guess CSV, using the header to locate columns so
// files with and without the date column both work.
func loadGuessCSV(path string) ([]guessRow, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, false, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, false, nil
	}

	col := make(map[string]int)
	for i, name := range records[0] {
		col[name] = i
	}
	for _, required := range []string{"Callsign", "EntryPoint", "ExitPoint"} {
		if _, ok := col[required]; !ok {
			return nil, false, fmt.Errorf("%s has no %s column; is it a guess CSV?", path, required)
		}
	}
	dateCol, hasDate := col["date"]

	get := func(record []string, i int, ok bool) string {
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rows []guessRow
	for _, record := range records[1:] {
		entryDistCol, entryDistOK := col["Distance_to_EntryPoint"]
		exitDistCol, exitDistOK := col["Distance_to_ExitPoint"]
		rows = append(rows, guessRow{
			callsign:      record[col["Callsign"]],
			date:          get(record, dateCol, hasDate),
			entryPoint:    record[col["EntryPoint"]],
			entryDistance: get(record, entryDistCol, entryDistOK),
			exitPoint:     record[col["ExitPoint"]],
			exitDistance:  get(record, exitDistCol, exitDistOK),
		})
	}
	return rows, hasDate, nil
}

func main() {
	input := flag.String("input", "airport_guess.csv", "Guess CSV produced by annotate-trks")
	flag.Parse()

	rows, hasDate, err := loadGuessCSV(*input)
	if err != nil {
		log.Fatalf("Failed to load results: %v", err)
	}

	m := model{rows: rows, hasDate: hasDate, source: *input}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("TUI failed: %v", err)
	}
}
