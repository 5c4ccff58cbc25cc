package main

import (
	"fmt"

	internalstrings "github.com/ameskill/td/internal/strings"
	"github.com/ameskill/td/todo"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <task>",
	Short: "Add a new todo",
	Aliases: []string{
		"a",
	},
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

var (
	addPriority string
	addTags     string
	addDue      string
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Task priority (high, medium, low)")
	addCmd.Flags().StringVarP(&addTags, "tags", "t", "", "Comma-separated tags")
	addCmd.Flags().StringVarP(&addDue, "due", "d", "", "Due date (YYYY-MM-DD)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}

	priority, err := defaultPriority(cfg)
	if err != nil {
		return err
	}
	if addPriority != "" {
		priority, err = todo.ParsePriority(addPriority)
		if err != nil {
			return err
		}
	}

	var due *todo.Date
	if addDue != "" {
		parsed, err := todo.ParseDate(addDue)
		if err != nil {
			return err
		}
		due = &parsed
	}

	created, err := store.Add(args[0], todo.AddOptions{
		Priority: priority,
		Tags:     internalstrings.SplitList(addTags),
		DueDate:  due,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added todo #%d: %s\n", created.ID, created.Task)
	return nil
}
