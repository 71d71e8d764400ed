package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/extract"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/growth"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/store"
	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/taxonomy"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <transcript-file>",
	Short: "Run session extraction on a transcript and print the result as JSON",
	Long: "Analyze runs the full per-session extraction pipeline on a transcript " +
		"file without persisting anything. With --student it seeds known topics " +
		"and recent-session history from the database, read-only.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(cmd, args[0])
	},
}

func init() {
	analyzeCmd.Flags().Int("student", 0, "Seed topic state and history from this student ID")
	analyzeCmd.Flags().String("date", "", "Session date (YYYY-MM-DD), defaults to today")
}

func runAnalyze(cmd *cobra.Command, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	extractor, err := newExtractor(cmd)
	if err != nil {
		return err
	}

	req := extract.SessionRequest{
		TranscriptText: string(raw),
		SessionDate:    sessionDate(cmd),
	}

	if studentID, _ := cmd.Flags().GetInt("student"); studentID > 0 {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		st, err := store.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		req.KnownTopics, err = st.TopicRepo().ListByStudent(ctx, studentID)
		if err != nil {
			return fmt.Errorf("list topics: %w", err)
		}
		recent, err := st.SessionRepo().ListRecent(ctx, studentID, 25)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		for _, s := range recent {
			req.RecentSessions = append(req.RecentSessions, extract.SessionRecord{
				DetectedMisconceptions: s.DetectedMisconceptions,
			})
		}
	}

	return printJSON(extractor.ExtractSession(req))
}

// newExtractor builds an extractor honoring the --growth-config flag.
func newExtractor(cmd *cobra.Command) (*extract.Extractor, error) {
	cfg := growth.DefaultConfig()
	if path, _ := cmd.Flags().GetString("growth-config"); path != "" {
		var err error
		cfg, err = growth.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("load growth config: %w", err)
		}
	}
	return extract.New(taxonomy.Default(), cfg)
}

func sessionDate(cmd *cobra.Command) string {
	if d, _ := cmd.Flags().GetString("date"); d != "" {
		return d
	}
	return todayDate()
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
