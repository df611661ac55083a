package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/veyr/internal/drag"
	"github.com/thenoetrevino/veyr/internal/models"
	"github.com/thenoetrevino/veyr/internal/tui/notifications"
	"github.com/thenoetrevino/veyr/internal/tui/state"
)

// View renders the current state of the application on the alternate
// screen, with cell motion mouse reporting for drags.
// Required by tea.Model interface
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	view.Content = m.content()
	return view
}

// content is the rendered frame
func (m Model) content() string {
	if m.uiState.Width() == 0 {
		return "Loading..."
	}
	if m.uiState.Mode() == state.HelpMode {
		return m.viewHelp()
	}

	header := m.styles.header.Render("veyr") + "  " + m.styles.hint.Render(fmt.Sprintf("%d tasks", m.store.Current().Len()))
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.viewBoard(),
		m.viewStatus(),
	)
}

func (m Model) viewBoard() string {
	if !m.loaded {
		return lipgloss.NewStyle().Height(m.layout().boardHeight).Render(m.styles.hint.Render("Loading board..."))
	}
	if len(m.columns) == 0 {
		return lipgloss.NewStyle().Height(m.layout().boardHeight).Render(m.styles.hint.Render("No columns"))
	}

	l := m.layout()
	last := min(l.firstColumn+l.visibleColumns, len(m.columns))
	parts := make([]string, 0, 2*(last-l.firstColumn))
	for i := l.firstColumn; i < last; i++ {
		if i > l.firstColumn {
			parts = append(parts, strings.Repeat(" ", columnGap))
		}
		parts = append(parts, m.viewColumn(l, i))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) viewColumn(l layout, idx int) string {
	col := m.columns[idx]
	tasks := m.store.Current().Column(col.ID)
	selected := idx == m.uiState.SelectedColumn()
	offset := m.uiState.TaskScrollOffset(col.ID)

	dropColumn := false
	switch t := m.hover.(type) {
	case drag.ColumnTarget:
		dropColumn = t.ColumnID == col.ID
	case drag.TaskTarget:
		dropColumn = t.ColumnID == col.ID
	}

	inner := l.columnWidth - 2
	title := truncate(fmt.Sprintf("%s (%d)", col.Name, len(tasks)), inner)
	hint := ""
	if offset > 0 {
		hint = truncate(fmt.Sprintf("▲ %d more", offset), inner)
	}

	lines := []string{m.styles.columnTitle.Render(title), m.styles.hint.Render(hint)}
	end := min(offset+l.visibleTasks, len(tasks))
	for i := offset; i < end; i++ {
		lines = append(lines, m.viewCard(l, tasks[i], selected && i == m.uiState.SelectedTask()))
	}
	if len(tasks) == 0 {
		lines = append(lines, m.styles.ghostText.Render("No tasks"))
	}

	return m.styles.columnStyle(selected, dropColumn).
		Width(inner).
		Height(l.boardHeight - 2).
		MaxHeight(l.boardHeight).
		Render(strings.Join(lines, "\n"))
}

func (m Model) viewCard(l layout, task *models.Task, selected bool) string {
	width := l.cardInnerWidth()
	editing := m.edit != nil && m.edit.taskID == task.ID

	dropTask := false
	if t, ok := m.hover.(drag.TaskTarget); ok {
		dropTask = t.TaskID == task.ID
	}

	var text string
	switch {
	case editing:
		text = m.edit.input.View()
	case m.isDragged(task.ID):
		text = m.styles.ghostText.Render(truncate(task.Title, width))
	default:
		text = m.styles.cardText.Render(cardTitle(task, width))
	}

	return m.styles.cardStyle(selected, dropTask, editing).
		Width(width).
		MaxHeight(taskCardHeight).
		Render(text)
}

// cardTitle fits a task title and its label dots into width cells
func cardTitle(task *models.Task, width int) string {
	dots := ""
	if n := len(task.Labels); n > 0 && width > 2*n+4 {
		parts := make([]string, 0, n)
		for _, label := range task.Labels {
			parts = append(parts, labelDot(label.Color))
		}
		dots = " " + strings.Join(parts, "")
		width -= n + 1
	}
	return truncate(task.Title, width) + dots
}

// isDragged reports whether task is the one being carried
func (m Model) isDragged(taskID int) bool {
	active, ok := m.drag.Active()
	return ok && active.ID == taskID
}

func (m Model) viewStatus() string {
	width := m.uiState.Width()

	if active, ok := m.drag.Active(); ok {
		return m.styles.status.Render(truncate("⇄ Moving '"+active.Title+"'", width))
	}
	switch m.uiState.Mode() {
	case state.DeleteConfirmMode:
		title := ""
		if task, _, ok := m.store.Current().Find(m.pendingDelete); ok {
			title = task.Title
		}
		return m.styles.status.Render(truncate(fmt.Sprintf("Delete '%s'? (y/n)", title), width))
	case state.EditMode:
		return m.styles.hint.Render(truncate("enter save · esc cancel", width))
	}
	if latest := notifications.RenderLatest(m.styles.scheme, m.notificationState, width); latest != "" {
		return latest
	}

	keys := m.cfg.KeyMappings
	return m.styles.hint.Render(truncate(fmt.Sprintf(
		"%s add · %s edit · %s delete · %s/%s move · drag with mouse · %s help · %s quit",
		keys.AddTask, keys.EditTask, keys.DeleteTask, keys.MoveTaskLeft, keys.MoveTaskRight,
		keys.ShowHelp, keys.Quit,
	), width))
}

// truncate cuts s to at most width cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > width-1 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
