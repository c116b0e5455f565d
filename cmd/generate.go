package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FHQ-Lab/Buatsoalujian-ai/internal/assessgen"
	"github.com/FHQ-Lab/Buatsoalujian-ai/internal/llm"
	"github.com/FHQ-Lab/Buatsoalujian-ai/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an assessment from source material",
	Long: "Generate reads source material from --source (a .txt or .pdf file) or from\n" +
		"stdin, calls the configured LLM provider once with structured output, and\n" +
		"writes the validated assessment JSON to --out.",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(cmd)
		if err != nil {
			return err
		}

		cfg, err := generationConfig(cmd)
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		provider, pcfg, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "Generating with %s (%s)...\n", pcfg.Provider, provider.ModelID())

		gen := assessgen.New(provider, cfg)
		a, err := gen.Generate(ctx, src)
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		data, err := json.MarshalIndent(a, "", "  ")
		if err != nil {
			return fmt.Errorf("encode assessment: %w", err)
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}

		fmt.Printf("%s\n", a.Title)
		fmt.Printf("  %d soal, %d kunci jawaban, %d baris kisi-kisi, %d rubrik\n",
			len(a.Questions), len(a.AnswerKeys), len(a.Grid), len(a.Rubric))
		fmt.Printf("  Tersimpan: %s\n", out)
		fmt.Printf("\nLihat dengan: buatsoal view %s\n", out)
		return nil
	},
}

// readSource loads the material from --source or stdin. PDF files ride as
// raw bytes to the provider; everything else is treated as text.
func readSource(cmd *cobra.Command) (assessgen.Source, error) {
	path, _ := cmd.Flags().GetString("source")

	if path == "" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return assessgen.Source{}, fmt.Errorf("read stdin: %w", err)
		}
		if len(data) == 0 {
			return assessgen.Source{}, fmt.Errorf("no source material: pass --source or pipe text to stdin")
		}
		return assessgen.Source{Text: string(data)}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return assessgen.Source{}, fmt.Errorf("read source: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return assessgen.Source{PDF: data, PDFName: filepath.Base(path)}, nil
	}
	return assessgen.Source{Text: string(data)}, nil
}

// generationConfig builds the assessgen config from command flags.
func generationConfig(cmd *cobra.Command) (assessgen.Config, error) {
	cfg := assessgen.DefaultConfig()

	grade, _ := cmd.Flags().GetString("grade")
	cfg.GradeLevel = assessgen.GradeLevel(grade)
	cfg.Subject, _ = cmd.Flags().GetString("subject")
	cfg.Topic, _ = cmd.Flags().GetString("topic")
	cfg.QuestionCount, _ = cmd.Flags().GetInt("count")
	qtype, _ := cmd.Flags().GetString("type")
	cfg.QuestionType = assessgen.QuestionMix(qtype)
	diff, _ := cmd.Flags().GetString("difficulty")
	cfg.Difficulty = assessgen.Difficulty(diff)

	if err := cfg.Validate(); err != nil {
		return assessgen.Config{}, err
	}
	return cfg, nil
}

func init() {
	generateCmd.Flags().String("source", "", "Source material file (.txt or .pdf); omit to read text from stdin")
	generateCmd.Flags().StringP("out", "o", "assessment.json", "Output path for the assessment JSON")
	generateCmd.Flags().String("grade", "SMA", "Jenjang: SD, SMP, SMA, or Kuliah")
	generateCmd.Flags().String("subject", "", "Mata pelajaran (required)")
	generateCmd.Flags().String("topic", "", "Topik materi (required)")
	generateCmd.Flags().IntP("count", "n", 10, "Number of questions")
	generateCmd.Flags().String("type", "pilihan_ganda", "Question type: pilihan_ganda, esai, or campuran")
	generateCmd.Flags().String("difficulty", "sedang", "Difficulty: mudah, sedang, sulit, HOTS, campuran_c1_c3, campuran_c3_c6, campuran_c1_c6")

	generateCmd.MarkFlagRequired("subject")
	generateCmd.MarkFlagRequired("topic")
}
