package database

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// defaultColumns are inserted the first time the board is opened
var defaultColumns = []struct {
	name        string
	description string
}{
	{"To Do", "Tasks that need to be done"},
	{"In Progress", "Tasks currently being worked on"},
	{"Done", "Completed tasks"},
}

// FirstTaskTitle is the title of the task seeded into an empty board
const FirstTaskTitle = "Your first task"

// Seed inserts the default columns and a starter task if the board is empty
func Seed(ctx context.Context, db *sqlx.DB) error {
	return withTx(ctx, db, func(tx *sqlx.Tx) error {
		var columnCount int
		if err := tx.GetContext(ctx, &columnCount, "SELECT COUNT(*) FROM columns"); err != nil {
			return err
		}

		// If columns exist, don't seed
		if columnCount > 0 {
			return nil
		}

		var firstColumnID int64
		for i, col := range defaultColumns {
			res, err := tx.ExecContext(ctx,
				"INSERT INTO columns (name, description, position) VALUES (?, ?, ?)",
				col.name, col.description, i,
			)
			if err != nil {
				return err
			}
			if i == 0 {
				if firstColumnID, err = res.LastInsertId(); err != nil {
					return err
				}
			}
		}

		var taskCount int
		if err := tx.GetContext(ctx, &taskCount, "SELECT COUNT(*) FROM tasks"); err != nil {
			return err
		}
		if taskCount > 0 {
			return nil
		}

		_, err := tx.ExecContext(ctx,
			"INSERT INTO tasks (title, column_id, position) VALUES (?, ?, 0)",
			FirstTaskTitle, firstColumnID,
		)
		return err
	})
}
