package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/fitlog-cli/fitlog/internal/analytics"
	"github.com/fitlog-cli/fitlog/internal/model"
	"github.com/fitlog-cli/fitlog/internal/storage"
)

// refreshMsg is sent when data needs to be refreshed.
type refreshMsg struct{}

// errMsg is sent when an error occurs.
type errMsg struct {
	err error
}

// DashboardModel is the main bubbletea model for the dashboard.
type DashboardModel struct {
	// Data snapshot
	workoutCounts map[time.Time]int
	goals         []*model.Goal
	predictions   map[string]analytics.GoalProgress
	percentages   map[string]float64

	// Repositories
	goalRepo     *storage.GoalRepo
	progressRepo *storage.ProgressRepo
	workoutRepo  *storage.WorkoutRepo

	// UI state
	month    analytics.Month
	selected time.Time
	width    int
	height   int
	err      error
}

// DashboardConfig holds configuration for the dashboard.
type DashboardConfig struct {
	GoalRepo     *storage.GoalRepo
	ProgressRepo *storage.ProgressRepo
	WorkoutRepo  *storage.WorkoutRepo
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel(config DashboardConfig) *DashboardModel {
	now := time.Now()

	// Seed the width before the first WindowSizeMsg arrives.
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	return &DashboardModel{
		goalRepo:     config.GoalRepo,
		progressRepo: config.ProgressRepo,
		workoutRepo:  config.WorkoutRepo,
		month:        analytics.MonthOf(now),
		selected:     analytics.DateOf(now),
		width:        width,
		predictions:  make(map[string]analytics.GoalProgress),
		percentages:  make(map[string]float64),
	}
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	return m.refreshCmd()
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case refreshMsg:
		m.loadData()
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "left", "h":
		m.month = m.month.Prev()
		return m, nil

	case "right", "l":
		m.month = m.month.Next()
		return m, nil

	case "t":
		now := time.Now()
		m.month = analytics.MonthOf(now)
		m.selected = analytics.DateOf(now)
		return m, nil

	case "r":
		m.loadData()
		return m, nil
	}

	return m, nil
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	sections = append(sections, m.renderHeader())

	if m.err != nil {
		sections = append(sections, StyleError.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	sections = append(sections, StyleCalendarBox.Render(m.renderCalendar()))
	sections = append(sections, StyleStreakBox.Render(m.renderStreaks()))

	if goals := m.renderGoals(); goals != "" {
		sections = append(sections, StyleGoalBox.Render(goals))
	}

	sections = append(sections, m.renderHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the dashboard header.
func (m *DashboardModel) renderHeader() string {
	title := StyleTitle.Render("FitLog Dashboard")
	now := time.Now().Format("Mon Jan 2, 15:04")
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", StyleSubtitle.Render(now)) + "\n"
}

// renderCalendar renders the month grid.
func (m *DashboardModel) renderCalendar() string {
	today := analytics.DateOf(time.Now())
	data := analytics.BuildMonth(m.month, m.workoutCounts, m.selected, today)

	var b strings.Builder
	b.WriteString(StyleTitle.Render(m.month.First().Format("January 2006")))
	b.WriteString("\n")
	b.WriteString(StyleSubtitle.Render(" Su  Mo  Tu  We  Th  Fr  Sa"))
	b.WriteString("\n")

	for i, day := range data.Days {
		cell := fmt.Sprintf("%3d", day.Date.Day())
		switch {
		case day.IsToday:
			cell = StyleDayToday.Render(cell)
		case day.IsSelected:
			cell = StyleDaySelected.Render(cell)
		case !day.IsCurrentMonth:
			cell = StyleDayPad.Render(cell)
		case day.HasWorkout:
			cell = StyleDayWorkout.Render(cell)
		}
		b.WriteString(cell)
		if (i+1)%7 == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}

	return b.String()
}

// renderStreaks renders the streak summary line.
func (m *DashboardModel) renderStreaks() string {
	today := analytics.DateOf(time.Now())
	current := analytics.CurrentStreak(m.workoutCounts, today)
	longest := analytics.LongestStreak(m.workoutCounts)
	return fmt.Sprintf("Streak: %d day(s)   Longest: %d day(s)", current, longest)
}

// renderGoals renders a progress bar per goal.
func (m *DashboardModel) renderGoals() string {
	if len(m.goals) == 0 {
		return ""
	}

	barWidth := 20
	var lines []string
	for _, g := range m.goals {
		pct := m.percentages[g.ID]
		bar := ProgressBar(pct*100, barWidth)

		status := ""
		if gp, ok := m.predictions[g.ID]; ok {
			if gp.OnTrack {
				status = StyleSubtitle.Render(" on track")
			} else {
				status = StyleWarning.Render(" behind")
			}
		}

		lines = append(lines, fmt.Sprintf("%s  %s %3.0f%%%s",
			StyleGoal.Render(g.Title), bar, pct*100, status))
	}
	return strings.Join(lines, "\n")
}

// renderHelp renders the key hint bar.
func (m *DashboardModel) renderHelp() string {
	return StyleHelp.Render("←/→ month · t today · r refresh · q quit")
}

// loadData loads a fresh snapshot from the repositories and recomputes all
// derived analytics from it.
func (m *DashboardModel) loadData() {
	counts, err := m.workoutRepo.CountsByDate()
	if err != nil {
		m.err = err
		return
	}
	m.workoutCounts = counts

	goals, err := m.goalRepo.List()
	if err != nil {
		m.err = err
		return
	}
	m.goals = goals

	today := analytics.DateOf(time.Now())
	m.predictions = make(map[string]analytics.GoalProgress, len(goals))
	m.percentages = make(map[string]float64, len(goals))
	for _, g := range goals {
		pct, err := analytics.ProgressPercentage(g)
		if err != nil {
			continue // skip malformed goals rather than fail the whole view
		}
		m.percentages[g.ID] = pct

		records, err := m.progressRepo.ListByGoal(g.ID)
		if err != nil {
			continue
		}
		if gp, err := analytics.Predict(g, records, today); err == nil {
			m.predictions[g.ID] = gp
		}
	}

	m.err = nil
}

// refreshCmd returns a command that sends a refresh message.
func (m *DashboardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshMsg{}
	}
}

// Run starts the dashboard TUI.
func Run(config DashboardConfig) error {
	m := NewDashboardModel(config)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
