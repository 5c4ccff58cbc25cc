package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done [id]",
	Short: "Mark a todo as done",
	Long: `Mark a todo as done.

With no id, an interactive picker opens over the open todos.`,
	Aliases: []string{
		"d",
	},
	Args: cobra.MaximumNArgs(1),
	RunE: runDone,
}

func init() {
	rootCmd.AddCommand(doneCmd)
}

func runDone(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	id, err := resolveID(args, store, "Mark as completed", false)
	if handled, err := handlePickerAbort(err); handled {
		return err
	}

	item, err := store.Done(id)
	if err != nil {
		return err
	}

	fmt.Printf("Marked todo #%d as completed: %s\n", item.ID, item.Task)
	return nil
}
