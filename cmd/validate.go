package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scoreconf/internal/config"
	"scoreconf/internal/convert"
	"scoreconf/internal/model"
	"scoreconf/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that the editor document resolves cleanly",
	Long: `Run the full conversion pipeline against the editor document and report
the first violation found, without writing any output file.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "editor document path")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load settings", err.Error(), ""))
		return err
	}
	if inputFile != "" {
		cfg.Input = inputFile
	}

	editor, err := model.LoadEditor(cfg.Input)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load editor document", err.Error(), "run 'scoreconf init' to create one"))
		return err
	}

	fmt.Println(ui.Bold(fmt.Sprintf("Validating %s...", cfg.Input)))

	final, err := convert.Convert(editor)
	if err != nil {
		ui.ValidationErr("conversion", err.Error(), "fix the editor document and re-run")
		return err
	}

	serviceCount := 0
	blueCount := 0
	for _, team := range final.Teams {
		if team.Color == model.ColorBlue {
			blueCount++
			serviceCount += len(team.Services)
		}
	}

	ui.ValidationOK("teams", fmt.Sprintf("%d total, %d blue", len(final.Teams), blueCount))
	ui.ValidationOK("machines", fmt.Sprintf("%d defined", len(final.EditorInfo.Machines)))
	ui.ValidationOK("services", fmt.Sprintf("%d resolved", serviceCount))

	fmt.Println()
	ui.Success("Document resolves cleanly")
	return nil
}
