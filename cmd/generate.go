package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scoreconf/internal/config"
	"scoreconf/internal/convert"
	"scoreconf/internal/model"
	"scoreconf/internal/render"
	"scoreconf/internal/ui"
)

var (
	inputFile  string
	outputFile string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Resolve the editor document into the engine configuration",
	Long: `Run the conversion pipeline and write the fully resolved scoring-engine
configuration file: expanded addresses, qualified service names, and
validated check environments.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "editor document path")
	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output configuration path")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load settings", err.Error(), ""))
		return err
	}
	if inputFile != "" {
		cfg.Input = inputFile
	}
	if outputFile != "" {
		cfg.Output = outputFile
	}

	editor, err := model.LoadEditor(cfg.Input)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load editor document", err.Error(), "run 'scoreconf init' to create one"))
		return err
	}

	final, err := convert.Convert(editor)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Conversion failed", err.Error(), "run 'scoreconf validate' for details"))
		return err
	}

	content, err := render.Render(final)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to encode configuration", err.Error(), ""))
		return err
	}

	if err := os.WriteFile(cfg.Output, []byte(content), 0644); err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to write output", err.Error(), ""))
		return err
	}

	serviceCount := 0
	for _, team := range final.Teams {
		serviceCount += len(team.Services)
	}

	ui.Success(fmt.Sprintf("Generated %s (%d teams, %d services)", cfg.Output, len(final.Teams), serviceCount))
	return nil
}
