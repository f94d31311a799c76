package convert

import (
	"fmt"

	"scoreconf/internal/model"
)

// Convert resolves an editor document into the final scoring-engine
// configuration. The conversion is all-or-nothing: the first violation
// aborts it and no partial document is ever returned. The input is cloned
// at entry and returned untouched inside the result's EditorInfo.
func Convert(editor *model.Editor) (*model.Config, error) {
	doc := editor.Clone()

	redWhite, err := validateRedWhiteTeams(doc.RedWhiteTeams)
	if err != nil {
		return nil, err
	}

	if doc.IPGenerator.Scheme == model.SchemeOneTeam && len(doc.BlueTeams) > 1 {
		return nil, ErrOneTeamWithMultipleTeams
	}

	if doc.IPGenerator.Scheme == model.SchemeMultiplierOffset {
		if err := validateMultiplierScheme(doc); err != nil {
			return nil, err
		}
	}

	if err := validateMachineNames(doc.Machines); err != nil {
		return nil, err
	}

	if err := validateBlueTeamIDs(doc.BlueTeams); err != nil {
		return nil, err
	}

	for _, machine := range doc.Machines {
		if err := validateServiceNames(machine); err != nil {
			return nil, err
		}
	}

	// One registry across all teams and machines: collisions only show up
	// at the resolved-address level.
	used := make(hostRegistry)

	blue := make([]model.Team, 0, len(doc.BlueTeams))
	for _, team := range doc.BlueTeams {
		if team.Name == "" {
			return nil, ErrTeamHasEmptyName
		}
		if err := validateTeamUsers(team.Name, team.Users); err != nil {
			return nil, err
		}
		services, err := generateServices(used, doc, team)
		if err != nil {
			return nil, err
		}
		blue = append(blue, model.Team{
			Color:    model.ColorBlue,
			Name:     team.Name,
			Users:    team.Users,
			Services: services,
		})
	}

	teams := append(redWhite, blue...)

	if err := validateUsernameUniqueness(teams); err != nil {
		return nil, err
	}

	return &model.Config{EditorInfo: *doc, Teams: teams}, nil
}

// generateServices resolves every service of every machine for one blue
// team.
func generateServices(used hostRegistry, doc *model.Editor, team model.BlueTeam) ([]model.ServiceConfig, error) {
	var services []model.ServiceConfig
	for _, machine := range doc.Machines {
		for _, service := range machine.Services {
			host, err := resolveHost(used, machine.Name, machine.IPTemplate, machine.IPOffset, doc.IPGenerator, team.ID)
			if err != nil {
				return nil, err
			}

			for _, account := range service.Accounts {
				where := fmt.Sprintf("service %s-%s", machine.Name, service.Name)
				if err := validateUser(where, account); err != nil {
					return nil, err
				}
			}

			environments, err := deriveEnvironments(service.Definition, machine.Name, service.Name)
			if err != nil {
				return nil, err
			}

			checkName := CheckName(service.Definition.Kind)
			services = append(services, model.ServiceConfig{
				Name:         fmt.Sprintf("%s-%s-%s", machine.Name, checkName, service.Name),
				CheckName:    checkName,
				Host:         host,
				Port:         service.Port,
				Points:       service.Points,
				Accounts:     service.Accounts,
				Environments: environments,
			})
		}
	}
	return services, nil
}
