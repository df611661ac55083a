package tui

import "github.com/thenoetrevino/veyr/internal/drag"

// Screen geometry. View draws exactly this layout and hitTest inverts it,
// so the two must change together.
const (
	headerHeight     = 2 // title bar and a blank line
	footerHeight     = 1 // status bar
	columnGap        = 1
	minColumnWidth   = 24
	columnHeaderRows = 2 // name and scroll hint, inside the border
	taskCardHeight   = 3 // one bordered line
	minBoardHeight   = 2 + columnHeaderRows + taskCardHeight
)

// layout is the geometry of one frame
type layout struct {
	columnWidth    int
	visibleColumns int
	firstColumn    int
	boardHeight    int
	visibleTasks   int
}

func (m Model) layout() layout {
	width := max(m.uiState.Width(), minColumnWidth)
	count := max(len(m.columns), 1)

	visible := max(min(count, (width+columnGap)/(minColumnWidth+columnGap)), 1)
	boardHeight := max(m.uiState.Height()-headerHeight-footerHeight, minBoardHeight)

	return layout{
		columnWidth:    (width - columnGap*(visible-1)) / visible,
		visibleColumns: visible,
		firstColumn:    m.uiState.ViewportOffset(),
		boardHeight:    boardHeight,
		visibleTasks:   max((boardHeight-2-columnHeaderRows)/taskCardHeight, 1),
	}
}

// cardInnerWidth is the text width inside a task card
func (l layout) cardInnerWidth() int {
	return max(l.columnWidth-4, 1)
}

// hitTest returns the drop target under a screen cell: the task card there,
// or the column when the cell is inside a column but not on a card. It
// returns nil outside every column.
func (m Model) hitTest(x, y int) drag.DropTarget {
	l := m.layout()
	if y < headerHeight || y >= headerHeight+l.boardHeight || x < 0 {
		return nil
	}

	stride := l.columnWidth + columnGap
	if x%stride >= l.columnWidth {
		return nil
	}
	slot := x / stride
	if slot >= l.visibleColumns {
		return nil
	}
	idx := l.firstColumn + slot
	if idx >= len(m.columns) {
		return nil
	}
	col := m.columns[idx]

	row := y - headerHeight - 1 - columnHeaderRows
	if row >= 0 {
		card := row / taskCardHeight
		tasks := m.store.Current().Column(col.ID)
		taskIdx := m.uiState.TaskScrollOffset(col.ID) + card
		if card < l.visibleTasks && taskIdx < len(tasks) {
			return drag.TaskTarget{TaskID: tasks[taskIdx].ID, ColumnID: col.ID}
		}
	}
	return drag.ColumnTarget{ColumnID: col.ID}
}
