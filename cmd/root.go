package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/FHQ-Lab/Buatsoalujian-ai/internal/assessment"
	"github.com/FHQ-Lab/Buatsoalujian-ai/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "buatsoal",
	Short: "AI exam builder for Indonesian teachers",
	Long: "Buatsoal generates a complete Indonesian assessment package (soal, kunci\n" +
		"jawaban, kisi-kisi, rubrik) from source material with one LLM call, then\n" +
		"re-serializes it into a DOCX document and a Google Forms provisioning script.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides BUATSOAL_DB env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then BUATSOAL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadAssessment reads and validates an assessment JSON file.
func loadAssessment(path string) (*assessment.Assessment, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read assessment file: %w", err)
	}
	a, err := assessment.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return a, nil
}
