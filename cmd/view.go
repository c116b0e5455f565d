package cmd

import (
	"github.com/spf13/cobra"

	"github.com/FHQ-Lab/Buatsoalujian-ai/internal/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view <assessment.json>",
	Short: "Open an assessment in the interactive viewer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadAssessment(args[0])
		if err != nil {
			return err
		}
		return tui.Run(a)
	},
}
