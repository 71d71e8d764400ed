package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/extract"
)

var trialCmd = &cobra.Command{
	Use:   "trial <transcript-file>",
	Short: "Run trial intake extraction on a transcript and print the result as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTrial(cmd, args[0])
	},
}

func init() {
	trialCmd.Flags().String("name", "", "Student name (required)")
	trialCmd.Flags().String("grade", "", "Grade level")
	trialCmd.Flags().String("curriculum", "", "Curriculum")
	trialCmd.Flags().String("exam", "", "Target exam, e.g. SAT")
	trialCmd.Flags().String("date", "", "Session date (YYYY-MM-DD), defaults to today")
	trialCmd.MarkFlagRequired("name")
}

func runTrial(cmd *cobra.Command, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	extractor, err := newExtractor(cmd)
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("name")
	grade, _ := cmd.Flags().GetString("grade")
	curriculum, _ := cmd.Flags().GetString("curriculum")
	exam, _ := cmd.Flags().GetString("exam")

	return printJSON(extractor.ExtractTrial(extract.TrialRequest{
		TranscriptText: string(raw),
		StudentName:    name,
		Grade:          grade,
		Curriculum:     curriculum,
		TargetExam:     exam,
		SessionDate:    sessionDate(cmd),
	}))
}

func todayDate() string {
	return time.Now().Format("2006-01-02")
}
