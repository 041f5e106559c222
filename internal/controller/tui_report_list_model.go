package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/handcheck/internal/model"
)

// reportDelegate renders one report per line, scrolling the selected test id.
type reportDelegate struct {
	offset int
}

func (d reportDelegate) Height() int  { return 1 }
func (d reportDelegate) Spacing() int { return 0 }
func (d reportDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d reportDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	ri, ok := item.(reportItem)
	if !ok {
		return
	}

	started := ri.report.StartedAt.Local().Format(reportTimeFormat)
	verdict := statusStyle(ri.report.Summary.Verdict).Width(6).Render(ri.report.Summary.Verdict.String())

	// started (19) + verdict (6) + spacing (4)
	width := lm.Width() - 29

	var idStyle lipgloss.Style

	var displayID string

	if index == lm.Index() {
		idStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		displayID = animateScroll(ri.report.TestID, width, d.offset)
	} else {
		idStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		displayID = truncateToWidth(ri.report.TestID, width)
	}

	_, _ = fmt.Fprintf(w, "%s  %s  %s", dimStyle.Render(started), verdict, idStyle.Render(displayID))
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	gap := "   "

	// ticks before scrolling starts
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + gap)
	n := len(runes)
	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := 0; i < width; i++ {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

// reportListModel lets the operator browse past reports and open one.
type reportListModel struct {
	width        int
	height       int
	reports      list.Model
	delegate     reportDelegate
	failed       int
	detail       *m.Report
	animOffset   int
	lastSelected int
}

func newReportListModel(reports []m.Report) reportListModel {
	delegate := reportDelegate{}

	items := make([]list.Item, 0, len(reports))
	failed := 0

	// newest first
	for i := len(reports) - 1; i >= 0; i-- {
		items = append(items, reportItem{report: reports[i]})

		if reports[i].Summary.Verdict == m.Fail {
			failed++
		}
	}

	reportList := list.New(items, delegate, 80, 20)
	reportList.SetShowPagination(false)
	reportList.SetShowFilter(true)
	reportList.SetShowHelp(false)
	reportList.SetShowTitle(false)
	reportList.SetShowStatusBar(false)
	reportList.FilterInput.Placeholder = "Filter by test, suite or verdict…"

	return reportListModel{
		width:    80,
		height:   24,
		reports:  reportList,
		delegate: delegate,
		failed:   failed,
	}
}

func (r reportListModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (r reportListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		r.reports.SetWidth(r.width)

		return r, nil

	case tickMsg:
		if r.reports.FilterState() == list.Filtering {
			return r, nil
		}

		r.animOffset++
		r.delegate.offset = r.animOffset
		r.reports.SetDelegate(r.delegate)

		return r, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyMsg:
		return r.handleKey(msg)
	}

	return r, nil
}

func (r reportListModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if r.detail != nil {
		switch msg.String() {
		case "q", "ctrl+c":
			return r, tea.Quit
		case "esc", "enter", "backspace":
			r.detail = nil
		}

		return r, nil
	}

	if r.reports.FilterState() != list.Filtering {
		switch msg.String() {
		case "q", "ctrl+c":
			return r, tea.Quit
		case "enter":
			if item, ok := r.reports.SelectedItem().(reportItem); ok {
				report := item.report
				r.detail = &report
			}

			return r, nil
		}
	}

	var cmd tea.Cmd

	r.reports, cmd = r.reports.Update(msg)

	if r.reports.Index() != r.lastSelected {
		r.lastSelected = r.reports.Index()
		r.animOffset = 0
		r.delegate.offset = 0
		r.reports.SetDelegate(r.delegate)
	}

	return r, cmd
}

func (r reportListModel) View() string {
	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(r.width)

	if r.detail != nil {
		body := lipgloss.NewStyle().Padding(1, 2).Render(renderReportDetail(*r.detail, r.width-4))

		return lipgloss.JoinVertical(lipgloss.Left, body, footerStyle.Render("esc back • q quit"))
	}

	title := titleStyle.Padding(1, 0, 0, 2).Render("handcheck reports")
	summary := lipgloss.NewStyle().Padding(0, 0, 1, 2).Render(fmt.Sprintf(
		"Reports: %s   Failed: %s",
		accentStyle.Render(fmt.Sprintf("%d", len(r.reports.Items()))),
		statusStyle(m.Fail).Render(fmt.Sprintf("%d", r.failed)),
	))

	// title (2), summary (2), footer (1), border (2), header (2)
	listHeight := r.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	// margin (2), border (2), padding (2)
	listWidth := r.width - 6

	r.reports.SetHeight(listHeight)
	r.reports.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-19s  %-6s  %s", "Started", "Result", "Test"))

	table := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, headers, r.reports.View()))

	footer := footerStyle.Render("↑/k up • ↓/j down • enter open • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, summary, table, footer)
}
