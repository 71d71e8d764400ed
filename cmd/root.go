package cmd

import (
	"github.com/spf13/cobra"

	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/app"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "tutorboard",
	Short: "Tutoring transcript intelligence dashboard",
	Long:  "Tutorboard turns raw tutoring transcripts into per-topic mastery, confidence, and mental-block tracking, served as a local web dashboard.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TUTORBOARD_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().String("growth-config", "", "Path to JSON growth config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(trialCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig builds the app config from the --config file, environment,
// and explicit flag overrides, in increasing priority.
func loadConfig(cmd *cobra.Command) (app.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := app.LoadConfig(path)
	if err != nil {
		return cfg, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		if err := store.EnsureDir(p); err != nil {
			return cfg, err
		}
		cfg.DBPath = p
	}
	if p, _ := cmd.Flags().GetString("growth-config"); p != "" {
		cfg.GrowthConfigPath = p
	}
	return cfg, nil
}
