package main

import (
	"fmt"
	"time"

	"github.com/ameskill/td/internal/ui"
	"github.com/ameskill/td/todo"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List todos",
	Aliases: []string{
		"l",
		"ls",
	},
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listShowCompleted bool
	listFilterTag     string
	listSort          string
	listGroup         bool
	listJSON          bool
	listLong          bool
)

func init() {
	rootCmd.AddCommand(listCmd)
	addListFlagAliases(listCmd)

	listCmd.Flags().BoolVar(&listShowCompleted, "show-completed", false, "Show completed todos")
	listCmd.Flags().StringVar(&listFilterTag, "filter-tag", "", "Only show todos carrying this tag")
	listCmd.Flags().StringVarP(&listSort, "sort", "s", "", "Sort by: due, priority, created (newest first), age (oldest first)")
	listCmd.Flags().BoolVarP(&listGroup, "group", "g", false, "Group by priority")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().BoolVar(&listLong, "long", false, "Show an aligned table with all fields")
}

func runList(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	items, err := store.List(todo.ListFilter{
		ShowCompleted: listShowCompleted,
		Tag:           listFilterTag,
	})
	if err != nil {
		return err
	}

	if listJSON {
		if items == nil {
			items = []todo.Todo{}
		}
		return encodeJSONToStdout(items)
	}

	if listSort != "" {
		key, err := parseSortKey(listSort)
		if err != nil {
			return err
		}
		sortTodos(items, key)
	}

	now := time.Now()
	switch {
	case listGroup:
		printGroupedTodos(items, now)
	case listLong:
		printTodoTable(items, now)
	default:
		printTodoLines(items, now)
	}
	return nil
}

func printTodoLines(items []todo.Todo, now time.Time) {
	if len(items) == 0 {
		fmt.Println("No todos found.")
		return
	}
	for _, item := range items {
		fmt.Println(ui.FormatLine(item, now, true))
	}
}

func printGroupedTodos(items []todo.Todo, now time.Time) {
	if len(items) == 0 {
		fmt.Println("No todos found.")
		return
	}

	high, medium, low, completed := groupTodos(items)
	printTodoGroup("HIGH PRIORITY", high, now)
	printTodoGroup("MEDIUM PRIORITY", medium, now)
	printTodoGroup("LOW PRIORITY", low, now)
	printTodoGroup("COMPLETED", completed, now)
}

func printTodoGroup(heading string, items []todo.Todo, now time.Time) {
	if len(items) == 0 {
		return
	}
	fmt.Println()
	fmt.Println(ui.HeadingStyle.Render(heading))
	for _, item := range items {
		fmt.Println(ui.FormatLine(item, now, true))
	}
}

func printTodoTable(items []todo.Todo, now time.Time) {
	if len(items) == 0 {
		fmt.Println("No todos found.")
		return
	}
	fmt.Print(formatTodoTable(items, now))
}

func formatTodoTable(items []todo.Todo, now time.Time) string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		status := "open"
		if item.IsCompleted() {
			status = "done"
		}
		due := "-"
		if item.DueDate != nil {
			due = item.DueDate.String()
		}
		tags := "-"
		if len(item.Tags) > 0 {
			tags = joinTags(item.Tags)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", item.ID),
			string(item.Priority),
			status,
			ui.FormatTimeAgeShort(item.CreatedAt, now),
			due,
			tags,
			ui.TruncateCell(item.Task),
		})
	}
	return ui.FormatTable([]string{"ID", "PRI", "STATUS", "AGE", "DUE", "TAGS", "TASK"}, rows)
}
