package main

import (
	"fmt"

	internalstrings "github.com/ameskill/td/internal/strings"
	"github.com/ameskill/td/todo"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit [id] [task]",
	Short: "Edit a todo's task text",
	Long: `Edit a todo's task text. Priority, tags, and due date are untouched.

With no id, an interactive picker opens over all todos; with an id but no
new text, a prompt asks for the replacement text.`,
	Aliases: []string{
		"e",
	},
	Args: cobra.MaximumNArgs(2),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	id, err := resolveID(args, store, "Edit", true)
	if handled, err := handlePickerAbort(err); handled {
		return err
	}

	newTask := ""
	if len(args) > 1 {
		newTask = args[1]
	} else {
		current := ""
		items, err := store.List(todo.ListFilter{ShowCompleted: true})
		if err != nil {
			return err
		}
		for _, item := range items {
			if item.ID == id {
				current = item.Task
				break
			}
		}
		newTask, err = promptLine(fmt.Sprintf("Current: %s\nNew task: ", current))
		if err != nil {
			return err
		}
		if internalstrings.IsBlank(newTask) {
			fmt.Println("Edit cancelled")
			return nil
		}
	}

	updated, err := store.Edit(id, newTask)
	if err != nil {
		return err
	}

	fmt.Printf("Updated todo #%d: %s\n", updated.ID, updated.Task)
	return nil
}
