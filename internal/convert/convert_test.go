package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scoreconf/internal/model"
)

// validEditor is the baseline document: two red/white teams, one blue team,
// one machine with one HTTP service, simple ID substitution.
func validEditor() *model.Editor {
	return &model.Editor{
		RedWhiteTeams: []model.RedWhiteTeam{
			{Name: "White Team", WhiteTeam: true, Users: []model.User{{Username: "white_admin", Password: "w"}}},
			{Name: "Red Team", Users: []model.User{{Username: "red_admin", Password: "r"}}},
		},
		BlueTeams: []model.BlueTeam{
			{ID: 1, Name: "Blue1", Users: []model.User{{Username: "u", Password: "p"}}},
		},
		Machines: []model.Machine{{
			Name:       "web1",
			IPTemplate: "10.0.0.X",
			Services: []model.ServiceDraft{{
				Name:   "site",
				Port:   80,
				Points: 100,
				Definition: model.ServiceDefinition{
					Kind: model.KindHTTP,
					Checks: []model.CheckRecord{
						{MatchingContent: "OK", UserAgent: "ua", Vhost: "v", URI: "/"},
					},
				},
			}},
		}},
		IPGenerator: model.IPGenerator{Scheme: model.SchemeReplaceID},
	}
}

func TestConvertEndToEnd(t *testing.T) {
	final, err := Convert(validEditor())
	require.NoError(t, err)

	require.Len(t, final.Teams, 3)
	assert.Equal(t, model.ColorWhite, final.Teams[0].Color)
	assert.Equal(t, model.ColorRed, final.Teams[1].Color)

	blue := final.Teams[2]
	assert.Equal(t, model.ColorBlue, blue.Color)
	assert.Equal(t, "Blue1", blue.Name)
	require.Len(t, blue.Services, 1)

	svc := blue.Services[0]
	assert.Equal(t, "web1-HTTPCheck-site", svc.Name)
	assert.Equal(t, "HTTPCheck", svc.CheckName)
	assert.Equal(t, "10.0.0.1", svc.Host)
	assert.Equal(t, uint16(80), svc.Port)
	assert.Equal(t, uint16(100), svc.Points)
	require.Len(t, svc.Environments, 1)
	assert.Equal(t, "OK", svc.Environments[0].MatchingContent)
	assert.Len(t, svc.Environments[0].Properties, 3)
}

func TestConvertDeterminism(t *testing.T) {
	editor := validEditor()

	first, err1 := Convert(editor)
	second, err2 := Convert(editor)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}

func TestConvertErrorDeterminism(t *testing.T) {
	editor := validEditor()
	editor.BlueTeams = []model.BlueTeam{
		{ID: 1, Name: "Blue1", Users: []model.User{{Username: "a", Password: "p"}}},
		{ID: 2, Name: "Blue2", Users: []model.User{{Username: "b", Password: "p"}}},
		{ID: 1, Name: "Blue3", Users: []model.User{{Username: "c", Password: "p"}}},
	}

	_, err1 := Convert(editor)
	_, err2 := Convert(editor)
	require.Error(t, err1)
	assert.Equal(t, err1.Error(), err2.Error())
}

func TestConvertDoesNotMutateInput(t *testing.T) {
	editor := validEditor()
	snapshot := editor.Clone()

	final, err := Convert(editor)
	require.NoError(t, err)

	assert.Equal(t, snapshot, editor)
	assert.Equal(t, *editor, final.EditorInfo)
}

func TestConvertTeamValidation(t *testing.T) {
	t.Run("empty red white name", func(t *testing.T) {
		editor := validEditor()
		editor.RedWhiteTeams[0].Name = ""
		_, err := Convert(editor)
		assert.ErrorIs(t, err, ErrTeamHasEmptyName)
	})

	t.Run("empty blue name", func(t *testing.T) {
		editor := validEditor()
		editor.BlueTeams[0].Name = ""
		_, err := Convert(editor)
		assert.ErrorIs(t, err, ErrTeamHasEmptyName)
	})

	t.Run("blue team without users", func(t *testing.T) {
		editor := validEditor()
		editor.BlueTeams[0].Users = nil
		_, err := Convert(editor)
		var needsErr *TeamNeedsUserError
		require.ErrorAs(t, err, &needsErr)
		assert.Equal(t, "Blue1", needsErr.Team)
	})

	t.Run("team member with blank password", func(t *testing.T) {
		editor := validEditor()
		editor.BlueTeams[0].Users = []model.User{{Username: "u"}}
		_, err := Convert(editor)
		var credErr *EmptyUsernameOrPasswordError
		require.ErrorAs(t, err, &credErr)
		assert.Equal(t, "team Blue1", credErr.Where)
		assert.Equal(t, "u", credErr.Username)
	})
}

func TestConvertBlueTeamIDs(t *testing.T) {
	t.Run("zero id", func(t *testing.T) {
		editor := validEditor()
		editor.BlueTeams[0].ID = 0
		_, err := Convert(editor)
		var zeroErr *ZeroBlueTeamIDError
		require.ErrorAs(t, err, &zeroErr)
		assert.Equal(t, "Blue1", zeroErr.Name)
	})

	t.Run("duplicate ids", func(t *testing.T) {
		editor := validEditor()
		editor.BlueTeams = append(editor.BlueTeams, model.BlueTeam{
			ID: 1, Name: "Blue2", Users: []model.User{{Username: "u2", Password: "p"}},
		})
		_, err := Convert(editor)
		var dupErr *DuplicateBlueTeamIDsError
		require.ErrorAs(t, err, &dupErr)
		assert.Equal(t, uint8(1), dupErr.ID)
		assert.Equal(t, []string{"Blue1", "Blue2"}, dupErr.Names)
	})
}

func TestConvertOneTeamGuard(t *testing.T) {
	editor := validEditor()
	editor.IPGenerator = model.IPGenerator{Scheme: model.SchemeOneTeam}
	editor.Machines[0].IPTemplate = "10.0.0.5"
	editor.BlueTeams = append(editor.BlueTeams, model.BlueTeam{
		ID: 2, Name: "Blue2", Users: []model.User{{Username: "u2", Password: "p"}},
	})

	_, err := Convert(editor)
	assert.ErrorIs(t, err, ErrOneTeamWithMultipleTeams)
}

func TestConvertMultiplierScheme(t *testing.T) {
	base := func() *model.Editor {
		editor := validEditor()
		editor.IPGenerator = model.IPGenerator{Scheme: model.SchemeMultiplierOffset, Multiplier: 10}
		editor.Machines[0].IPOffset = uint8p(5)
		return editor
	}

	t.Run("offset arithmetic end to end", func(t *testing.T) {
		editor := base()
		editor.BlueTeams[0].ID = 2
		final, err := Convert(editor)
		require.NoError(t, err)
		assert.Equal(t, "10.0.0.25", final.Teams[2].Services[0].Host)
	})

	t.Run("multiplier smaller than machine count", func(t *testing.T) {
		editor := base()
		editor.IPGenerator.Multiplier = 0
		_, err := Convert(editor)
		var multErr *MultNotBigEnoughError
		require.ErrorAs(t, err, &multErr)
		assert.Equal(t, uint8(1), multErr.MachineCount)
		assert.Equal(t, uint8(0), multErr.Multiplier)
	})

	t.Run("missing offset", func(t *testing.T) {
		editor := base()
		editor.Machines[0].IPOffset = nil
		_, err := Convert(editor)
		var missErr *MissingOffsetError
		require.ErrorAs(t, err, &missErr)
		assert.Equal(t, "web1", missErr.Machine)
	})

	t.Run("duplicate offsets", func(t *testing.T) {
		editor := base()
		editor.Machines = append(editor.Machines, model.Machine{
			Name:       "db1",
			IPTemplate: "10.0.0.X",
			IPOffset:   uint8p(5),
		})
		_, err := Convert(editor)
		var dupErr *DuplicateOffsetsError
		require.ErrorAs(t, err, &dupErr)
		assert.Equal(t, []string{"web1", "db1"}, dupErr.Machines)
	})

	t.Run("multiplier check precedes machine name checks", func(t *testing.T) {
		editor := base()
		editor.IPGenerator.Multiplier = 0
		editor.Machines[0].Name = ""
		_, err := Convert(editor)
		var multErr *MultNotBigEnoughError
		assert.ErrorAs(t, err, &multErr)
	})
}

func TestConvertMachineNames(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		editor := validEditor()
		editor.Machines[0].Name = ""
		_, err := Convert(editor)
		assert.ErrorIs(t, err, ErrMachineHasEmptyName)
	})

	t.Run("duplicate names", func(t *testing.T) {
		editor := validEditor()
		editor.Machines = append(editor.Machines, model.Machine{Name: "web1", IPTemplate: "10.0.1.X"})
		_, err := Convert(editor)
		var dupErr *DuplicateMachineNamesError
		require.ErrorAs(t, err, &dupErr)
		assert.Equal(t, "web1", dupErr.Machine)
	})
}

func TestConvertServiceNames(t *testing.T) {
	t.Run("empty service name", func(t *testing.T) {
		editor := validEditor()
		editor.Machines[0].Services[0].Name = ""
		_, err := Convert(editor)
		var emptyErr *MachineHasEmptyServiceError
		require.ErrorAs(t, err, &emptyErr)
		assert.Equal(t, "web1", emptyErr.Machine)
	})

	t.Run("duplicate service name on one machine", func(t *testing.T) {
		editor := validEditor()
		svc := editor.Machines[0].Services[0]
		svc.Definition = model.ServiceDefinition{Kind: model.KindICMP}
		editor.Machines[0].Services = append(editor.Machines[0].Services, svc)
		_, err := Convert(editor)
		var dupErr *DuplicateServiceNameError
		require.ErrorAs(t, err, &dupErr)
		assert.Equal(t, "web1", dupErr.Machine)
		assert.Equal(t, "site", dupErr.Service)
	})

	t.Run("same service name on different machines is fine", func(t *testing.T) {
		editor := validEditor()
		machine := editor.Machines[0]
		machine.Name = "web2"
		machine.IPTemplate = "10.0.1.X"
		editor.Machines = append(editor.Machines, machine)
		_, err := Convert(editor)
		assert.NoError(t, err)
	})
}

func TestConvertDuplicateIPs(t *testing.T) {
	editor := validEditor()
	second := editor.Machines[0]
	second.Name = "db1"
	second.Services = []model.ServiceDraft{{
		Name:       "ping",
		Points:     25,
		Definition: model.ServiceDefinition{Kind: model.KindICMP},
	}}
	// Same template as web1: both resolve to 10.0.0.1 for team 1.
	editor.Machines = append(editor.Machines, second)

	_, err := Convert(editor)
	var dupErr *DuplicateIPsError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "10.0.0.1", dupErr.Addr)
}

func TestConvertMultiTeamResolution(t *testing.T) {
	// One machine resolved for two teams is not a collision.
	editor := validEditor()
	editor.BlueTeams = append(editor.BlueTeams, model.BlueTeam{
		ID: 2, Name: "Blue2", Users: []model.User{{Username: "u2", Password: "p"}},
	})

	final, err := Convert(editor)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", final.Teams[2].Services[0].Host)
	assert.Equal(t, "10.0.0.2", final.Teams[3].Services[0].Host)
}

func TestConvertServiceAccounts(t *testing.T) {
	t.Run("valid accounts carried through", func(t *testing.T) {
		editor := validEditor()
		editor.Machines[0].Services[0].Accounts = []model.User{{Username: "web", Password: "pw"}}
		final, err := Convert(editor)
		require.NoError(t, err)
		assert.Equal(t, []model.User{{Username: "web", Password: "pw"}}, final.Teams[2].Services[0].Accounts)
	})

	t.Run("blank account rejected with service context", func(t *testing.T) {
		editor := validEditor()
		editor.Machines[0].Services[0].Accounts = []model.User{{Username: "web"}}
		_, err := Convert(editor)
		var credErr *EmptyUsernameOrPasswordError
		require.ErrorAs(t, err, &credErr)
		assert.Equal(t, "service web1-site", credErr.Where)
	})
}

func TestConvertServiceValidationFailsWholeConversion(t *testing.T) {
	editor := validEditor()
	editor.Machines[0].Services[0].Definition.Checks[0].URI = ""

	final, err := Convert(editor)
	assert.Nil(t, final)
	var cfgErr *ServiceNotFullyConfiguredError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Reasons, "URI cannot be empty")
}

func TestConvertUsernameUniqueness(t *testing.T) {
	t.Run("cross-team duplicate rejected", func(t *testing.T) {
		editor := validEditor()
		editor.RedWhiteTeams[1].Users = []model.User{{Username: "alice", Password: "r"}}
		editor.BlueTeams[0].Users = []model.User{{Username: "alice", Password: "p"}}
		_, err := Convert(editor)
		var dupErr *DuplicateUserNameForTeamsError
		require.ErrorAs(t, err, &dupErr)
		assert.Equal(t, "alice", dupErr.Username)
		assert.ElementsMatch(t, []string{"Red Team", "Blue1"}, dupErr.Teams)
	})

	t.Run("repeat within one team allowed", func(t *testing.T) {
		editor := validEditor()
		editor.BlueTeams[0].Users = []model.User{
			{Username: "u", Password: "p"},
			{Username: "u", Password: "p2"},
		}
		_, err := Convert(editor)
		assert.NoError(t, err)
	})
}
