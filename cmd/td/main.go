// Package main implements the td CLI tool.
package main

import (
	"os"

	"github.com/ameskill/td/internal/config"
	"github.com/ameskill/td/internal/paths"
	"github.com/ameskill/td/todo"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "td",
	Short: "td - a local command-line todo list",
	Long: `td is a single-user todo list stored in a local file.

Tasks carry a priority, tags, and an optional due date. The done, delete,
and edit commands open an interactive picker when no id is given.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if rootVerbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

var (
	rootDir     string
	rootVerbose bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, "dir", "", "Data directory (default $TD_DIR, then config, then ~/.todo)")
	rootCmd.PersistentFlags().BoolVar(&rootVerbose, "verbose", false, "Enable debug logging")
}

// openStore loads the config, resolves the data directory, and opens the
// todo store. The --dir flag wins over TD_DIR and the config file.
func openStore() (*todo.Store, *config.Config, error) {
	configPath, err := paths.DefaultConfigPath()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	dir := rootDir
	if dir == "" {
		fallback, err := paths.DefaultTodoDir()
		if err != nil {
			return nil, nil, err
		}
		dir = cfg.ResolveDir(fallback)
	}

	store, err := todo.Open(dir)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("opened todo store", "path", store.Path())
	return store, cfg, nil
}

// defaultPriority returns the priority used when td add has no -p flag.
func defaultPriority(cfg *config.Config) (todo.Priority, error) {
	if cfg.DefaultPriority == "" {
		return todo.PriorityMedium, nil
	}
	return todo.ParsePriority(cfg.DefaultPriority)
}
