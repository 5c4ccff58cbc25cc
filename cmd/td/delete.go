package main

import (
	"fmt"

	"github.com/ameskill/td/todo"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a todo",
	Long: `Delete a todo. Its id is never reassigned.

With no id, an interactive picker opens over all todos (including
completed ones) and asks for confirmation before deleting.`,
	Aliases: []string{
		"del",
		"rm",
	},
	Args: cobra.MaximumNArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	interactive := len(args) == 0

	id, err := resolveID(args, store, "Delete", true)
	if handled, err := handlePickerAbort(err); handled {
		return err
	}

	if interactive {
		items, err := store.List(todo.ListFilter{ShowCompleted: true})
		if err != nil {
			return err
		}
		task := ""
		for _, item := range items {
			if item.ID == id {
				task = item.Task
				break
			}
		}
		if !confirm(fmt.Sprintf("Delete todo %q?", task)) {
			fmt.Println("Deletion cancelled")
			return nil
		}
	}

	removed, err := store.Delete(id)
	if err != nil {
		return err
	}

	fmt.Printf("Deleted todo #%d: %s\n", removed.ID, removed.Task)
	return nil
}
