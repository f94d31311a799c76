package convert

import (
	"fmt"

	"scoreconf/internal/model"
)

// Structural validators. Each runs once per conversion; duplicate detection
// reports in first-seen order so repeated runs on the same document yield
// the identical error.

func validateUser(where string, user model.User) error {
	if user.Username == "" || user.Password == "" {
		return &EmptyUsernameOrPasswordError{Where: where, Username: user.Username}
	}
	return nil
}

func validateTeamUsers(name string, users []model.User) error {
	if len(users) == 0 {
		return &TeamNeedsUserError{Team: name}
	}
	for _, user := range users {
		if err := validateUser(fmt.Sprintf("team %s", name), user); err != nil {
			return err
		}
	}
	return nil
}

func validateRedWhiteTeams(teams []model.RedWhiteTeam) ([]model.Team, error) {
	out := make([]model.Team, 0, len(teams))
	for _, team := range teams {
		if team.Name == "" {
			return nil, ErrTeamHasEmptyName
		}
		if err := validateTeamUsers(team.Name, team.Users); err != nil {
			return nil, err
		}
		color := model.ColorRed
		if team.WhiteTeam {
			color = model.ColorWhite
		}
		out = append(out, model.Team{Color: color, Name: team.Name, Users: team.Users})
	}
	return out, nil
}

// validateMultiplierScheme checks multiplier sufficiency, then offset
// completeness, then offset uniqueness, in that order.
func validateMultiplierScheme(editor *model.Editor) error {
	machineCount := uint8(len(editor.Machines))
	if editor.IPGenerator.Multiplier < machineCount {
		return &MultNotBigEnoughError{
			MachineCount: machineCount,
			Multiplier:   editor.IPGenerator.Multiplier,
		}
	}

	for _, machine := range editor.Machines {
		if machine.IPOffset == nil {
			return &MissingOffsetError{Machine: machine.Name}
		}
	}

	byOffset := make(map[uint8][]string)
	var seen []uint8
	for _, machine := range editor.Machines {
		off := *machine.IPOffset
		if _, ok := byOffset[off]; !ok {
			seen = append(seen, off)
		}
		byOffset[off] = append(byOffset[off], machine.Name)
	}
	for _, off := range seen {
		if machines := byOffset[off]; len(machines) > 1 {
			return &DuplicateOffsetsError{Machines: machines}
		}
	}
	return nil
}

func validateMachineNames(machines []model.Machine) error {
	seen := make(map[string]bool, len(machines))
	for _, machine := range machines {
		if machine.Name == "" {
			return ErrMachineHasEmptyName
		}
		if seen[machine.Name] {
			return &DuplicateMachineNamesError{Machine: machine.Name}
		}
		seen[machine.Name] = true
	}
	return nil
}

func validateServiceNames(machine model.Machine) error {
	seen := make(map[string]bool, len(machine.Services))
	for _, service := range machine.Services {
		if service.Name == "" {
			return &MachineHasEmptyServiceError{Machine: machine.Name}
		}
		if seen[service.Name] {
			return &DuplicateServiceNameError{Machine: machine.Name, Service: service.Name}
		}
		seen[service.Name] = true
	}
	return nil
}

func validateBlueTeamIDs(teams []model.BlueTeam) error {
	byID := make(map[uint8][]string)
	var seen []uint8
	for _, team := range teams {
		if team.ID == 0 {
			return &ZeroBlueTeamIDError{Name: team.Name}
		}
		if _, ok := byID[team.ID]; !ok {
			seen = append(seen, team.ID)
		}
		byID[team.ID] = append(byID[team.ID], team.Name)
	}
	for _, id := range seen {
		if names := byID[id]; len(names) > 1 {
			return &DuplicateBlueTeamIDsError{ID: id, Names: names}
		}
	}
	return nil
}

// validateUsernameUniqueness rejects any username owned by more than one
// team. Repeats inside a single team's user list are allowed. Runs last,
// over the fully assembled team list.
func validateUsernameUniqueness(teams []model.Team) error {
	owners := make(map[string][]string)
	var seen []string
	for _, team := range teams {
		for _, user := range team.Users {
			current := owners[user.Username]
			if len(current) > 0 && current[len(current)-1] == team.Name {
				continue
			}
			if current == nil {
				seen = append(seen, user.Username)
			}
			owners[user.Username] = append(current, team.Name)
		}
	}
	for _, username := range seen {
		if teams := owners[username]; len(teams) > 1 {
			return &DuplicateUserNameForTeamsError{Username: username, Teams: teams}
		}
	}
	return nil
}
