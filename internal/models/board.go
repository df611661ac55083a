package models

// Board is the full state the UI renders: columns in order and each
// column's tasks in order
type Board struct {
	Columns []*Column       `json:"columns"`
	Tasks   map[int][]*Task `json:"tasks"`
}

// TasksFor returns the tasks of a column; never nil
func (b *Board) TasksFor(columnID int) []*Task {
	if tasks := b.Tasks[columnID]; tasks != nil {
		return tasks
	}
	return []*Task{}
}
