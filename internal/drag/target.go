package drag

// DropTarget is what a drag gesture ends over. It is one of ColumnTarget,
// TaskTarget or RawTarget; no target at all is a nil DropTarget.
type DropTarget interface {
	dropTarget()
}

// ColumnTarget is a column's own area, outside any task card
type ColumnTarget struct {
	ColumnID int
}

// TaskTarget is another task's card
type TaskTarget struct {
	TaskID   int
	ColumnID int
}

// RawTarget is a container known only by its identifier, which is taken
// to be a column ID
type RawTarget struct {
	ID int
}

func (ColumnTarget) dropTarget() {}

func (TaskTarget) dropTarget() {}

func (RawTarget) dropTarget() {}
