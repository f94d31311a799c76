package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"scoreconf/internal/model"
)

// MachineAnswer is one machine entered through the wizard.
type MachineAnswer struct {
	Name     string
	Template string
	Offset   *uint8
	Kinds    []model.ServiceKind
}

// Answers holds all user responses from the wizard.
type Answers struct {
	Scheme     model.SchemeKind
	Multiplier uint8
	BlueTeams  []string
	WhiteTeam  string
	RedTeam    string
	Machines   []MachineAnswer
}

// Run executes the interactive wizard and returns the user's answers.
func Run(detection DetectionResult) (*Answers, error) {
	answers := &Answers{Scheme: model.SchemeReplaceID}

	schemeDesc := "How machine address templates turn into per-team host addresses."
	if detection.ExistingEditor != "" {
		schemeDesc += fmt.Sprintf("\n\nExisting document found: %s", detection.ExistingEditor)
	}

	var multiplierInput string

	schemeForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[model.SchemeKind]().
				Title("IP generation scheme").
				Description(schemeDesc).
				Options(
					huh.NewOption("Manual: literal addresses, single blue team only", model.SchemeOneTeam),
					huh.NewOption("Simple ID substitution: replace x/X with the team ID", model.SchemeReplaceID),
					huh.NewOption("ID offset multiplier: replace x/X with multiplier*ID + offset", model.SchemeMultiplierOffset),
				).
				Value(&answers.Scheme),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Multiplier").
				Description("Keeps per-team address ranges apart; must be at least the machine count.").
				Validate(validateByte).
				Value(&multiplierInput),
		).WithHideFunc(func() bool { return answers.Scheme != model.SchemeMultiplierOffset }),
	)

	if err := schemeForm.Run(); err != nil {
		return nil, err
	}

	if answers.Scheme == model.SchemeMultiplierOffset {
		mult, err := strconv.ParseUint(multiplierInput, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("parsing multiplier: %w", err)
		}
		answers.Multiplier = uint8(mult)
	}

	var blueNames string
	var addWhite, addRed bool

	teamForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Blue team names (comma separated)").
				Description("Scored teams; IDs are assigned in order starting at 1.").
				Validate(func(s string) error {
					if len(splitNames(s)) == 0 {
						return fmt.Errorf("at least one blue team is required")
					}
					return nil
				}).
				Value(&blueNames),
			huh.NewConfirm().
				Title("Add a white team?").
				Value(&addWhite),
			huh.NewConfirm().
				Title("Add a red team?").
				Value(&addRed),
		),
	)

	if err := teamForm.Run(); err != nil {
		return nil, err
	}

	answers.BlueTeams = splitNames(blueNames)
	if addWhite {
		answers.WhiteTeam = "White Team"
	}
	if addRed {
		answers.RedTeam = "Red Team"
	}

	for {
		machine, more, err := runMachineForm(answers.Scheme, len(answers.Machines)+1)
		if err != nil {
			return nil, err
		}
		answers.Machines = append(answers.Machines, *machine)
		if !more {
			break
		}
	}

	return answers, nil
}

func runMachineForm(scheme model.SchemeKind, index int) (*MachineAnswer, bool, error) {
	machine := &MachineAnswer{}
	var offsetInput string
	var more bool

	templateTitle := "IP template"
	templateDesc := "Template with the placeholder letter x/X, e.g. 10.0.0.X"
	if scheme == model.SchemeOneTeam {
		templateTitle = "IP address"
		templateDesc = "Literal address for this machine, e.g. 10.0.0.5"
	}

	options := make([]huh.Option[model.ServiceKind], 0, len(Catalog()))
	for _, entry := range Catalog() {
		label := entry.Label
		if entry.Port != 0 {
			label = fmt.Sprintf("%s (port %d)", entry.Label, entry.Port)
		}
		options = append(options, huh.NewOption(label, entry.Kind))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Machine %d name", index)).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("machine name cannot be empty")
					}
					return nil
				}).
				Value(&machine.Name),
			huh.NewInput().
				Title(templateTitle).
				Description(templateDesc).
				Value(&machine.Template),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("IP offset").
				Description("Added to multiplier*teamID; must be unique per machine.").
				Validate(validateByte).
				Value(&offsetInput),
		).WithHideFunc(func() bool { return scheme != model.SchemeMultiplierOffset }),
		huh.NewGroup(
			huh.NewMultiSelect[model.ServiceKind]().
				Title("Monitored services").
				Options(options...).
				Value(&machine.Kinds),
			huh.NewConfirm().
				Title("Add another machine?").
				Value(&more),
		),
	)

	if err := form.Run(); err != nil {
		return nil, false, err
	}

	if scheme == model.SchemeMultiplierOffset {
		off, err := strconv.ParseUint(offsetInput, 10, 8)
		if err != nil {
			return nil, false, fmt.Errorf("parsing offset: %w", err)
		}
		o := uint8(off)
		machine.Offset = &o
	}

	return machine, more, nil
}

func validateByte(s string) error {
	if _, err := strconv.ParseUint(s, 10, 8); err != nil {
		return fmt.Errorf("enter a number between 0 and 255")
	}
	return nil
}

func splitNames(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
