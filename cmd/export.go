package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/FHQ-Lab/Buatsoalujian-ai/internal/docrender"
	"github.com/FHQ-Lab/Buatsoalujian-ai/internal/formscript"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export an assessment into a shareable artifact",
}

var exportDocxCmd = &cobra.Command{
	Use:   "docx <assessment.json>",
	Short: "Write the assessment as a DOCX document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadAssessment(args[0])
		if err != nil {
			return err
		}

		data, err := docrender.Render(cmd.Context(), a)
		if err != nil {
			return fmt.Errorf("render docx: %w", err)
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = docrender.Filename(a.Title)
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}

		fmt.Printf("Tersimpan: %s\n", out)
		return nil
	},
}

var exportScriptCmd = &cobra.Command{
	Use:   "script <assessment.json>",
	Short: "Write the Google Forms provisioning script",
	Long: "Script emits a Google Apps Script file that recreates the assessment as a\n" +
		"Google Forms quiz. Paste it into script.google.com and run createBuatSoalQuiz.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadAssessment(args[0])
		if err != nil {
			return err
		}

		script := formscript.Generate(a)

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = formscript.Filename
		}
		if err := os.WriteFile(out, []byte(script), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}

		fmt.Printf("Tersimpan: %s\n", out)
		return nil
	},
}

func init() {
	exportDocxCmd.Flags().StringP("out", "o", "", "Output path (default: derived from the assessment title)")
	exportScriptCmd.Flags().StringP("out", "o", "", "Output path (default: "+formscript.Filename+")")

	exportCmd.AddCommand(exportDocxCmd)
	exportCmd.AddCommand(exportScriptCmd)
}
