// Root command and flag wiring for the satchel CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/internal/note"
	"github.com/mesh-intelligence/satchel/internal/paths"
	"github.com/mesh-intelligence/satchel/internal/task"
	"github.com/mesh-intelligence/satchel/pkg/satchel"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagTasksFile string
	flagNotesFile string
	flagJSON      bool
	flagPlain     bool
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

var rootCmd = &cobra.Command{
	Use:           "satchel",
	Short:         "Satchel is a local JSON-backed task and note manager",
	Version:       satchel.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}
		configDataDir = cfg.GetString(cfgKeyDataDir)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = cmd.Help()
		return errNoCommand
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.satchel)")
	rootCmd.PersistentFlags().StringVar(&flagTasksFile, "data", "", "path to tasks JSON file (default: <data-dir>/tasks.json)")
	rootCmd.PersistentFlags().StringVar(&flagNotesFile, "notes-data", "", "path to notes JSON file (default: <data-dir>/notes.json)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagPlain, "plain", false, "disable color output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(searchTagsCmd)
	rootCmd.AddCommand(importantCmd)
	rootCmd.AddCommand(markImportantCmd)
	rootCmd.AddCommand(unmarkImportantCmd)
	rootCmd.AddCommand(addSubtaskCmd)
	rootCmd.AddCommand(showSubtasksCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(noteCmd)
}

// resolveConfigDir follows the precedence chain:
// --config-dir flag > SATCHEL_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir follows the precedence chain:
// --data-dir flag > config.yaml data_dir > SATCHEL_DATA_DIR env > $(CWD)/.satchel.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// taskRepo builds the task repository for the resolved data location.
func taskRepo() (*task.Repo, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, err
	}
	return task.NewRepo(paths.TasksFile(flagTasksFile, dataDir)), nil
}

// noteRepo builds the note repository, wired to the task repository for
// task-existence checks.
func noteRepo() (*note.Repo, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, err
	}
	tasks := task.NewRepo(paths.TasksFile(flagTasksFile, dataDir))
	return note.NewRepo(paths.NotesFile(flagNotesFile, dataDir), tasks), nil
}
