package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scoreconf/internal/ui"
	"scoreconf/internal/wizard"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a scoreconf.yml editor document interactively",
	Long: `Scaffold an editor document through an interactive wizard: pick the IP
generation scheme, name the teams, and select the services each machine
runs. The result is a starter file meant to be hand-edited afterwards.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	documentPath := "scoreconf.yml"

	detection := wizard.Detect(nil)

	if detection.ExistingEditor != "" {
		fmt.Printf("%s already exists.\n", detection.ExistingEditor)
		fmt.Print("Overwrite? [y/N] ")
		var answer string
		_, _ = fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
		documentPath = detection.ExistingEditor
	}

	answers, err := wizard.Run(detection)
	if err != nil {
		return fmt.Errorf("wizard: %w", err)
	}

	content, err := wizard.StarterDocument(*answers)
	if err != nil {
		return fmt.Errorf("generating starter document: %w", err)
	}

	if err := os.WriteFile(documentPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}

	ui.Success(fmt.Sprintf("Created %s", documentPath))
	fmt.Println()
	fmt.Printf("Next step: %s\n", ui.Bold("scoreconf validate"))
	fmt.Printf("           %s\n", ui.Hint("fill in team users and check fields first"))

	return nil
}
