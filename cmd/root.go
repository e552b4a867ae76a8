package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "colreg-quiz",
	Short: "Timed COLREG competency assessment in the terminal",
	Long: "colreg-quiz runs a 10-question, 10-minute COLREG competency assessment " +
		"with AI-generated scenarios and exports a PDF results report.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("reports", "", "Directory for exported reports (overrides COLREG_QUIZ_REPORT_DIR)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(llmCmd)
}
