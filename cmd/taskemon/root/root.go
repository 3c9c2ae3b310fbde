package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rakhmonovquvonchbek/taskemon/internal/config"
	"github.com/rakhmonovquvonchbek/taskemon/internal/ui"
)

const Version = "0.1.0"

const defaultConfigPath = "taskemon.yaml"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "taskemon",
		Short:         "Taskemon: level up by getting things done",
		Long:          "Taskemon turns real-life tasks into quests, XP, stats and achievements.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	cmd.PersistentFlags().String("config", defaultConfigPath, "path to the YAML config file")

	cmd.AddCommand(
		newServeCmd(),
		newCurveCmd(),
		newCatalogCmd(),
		newClassesCmd(),
		newTaskXPCmd(),
	)
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}

// loadConfig reads .env, the --config file and TASKEMON_* overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.LoadEnv(); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	path, _ := cmd.Flags().GetString("config")
	return config.FromEnv(path)
}
