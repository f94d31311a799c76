package wizard

import (
	"bytes"
	"fmt"
	"text/template"

	"scoreconf/internal/model"
)

const starterHeader = `# scoreconf editor document
# Fill in team users and check fields, then run: scoreconf generate
#
# IP generation schemes:
#   one_team          - machine templates are literal addresses (one blue team)
#   replace_id        - the letter x/X in ip_template becomes the team id
#   multiplier_offset - x/X becomes multiplier*id + the machine's ip_offset
{{- if .BlueTeams }}
#
# Blue team IDs were assigned in order: {{ range $i, $name := .BlueTeams }}{{ if $i }}, {{ end }}{{ $name }}={{ inc $i }}{{ end }}
{{- end }}

`

// BuildEditor turns wizard answers into a starter editor document. Teams get
// one placeholder admin user each; machines get one catalog draft per
// selected service kind.
func BuildEditor(answers Answers) *model.Editor {
	editor := &model.Editor{
		IPGenerator: model.IPGenerator{Scheme: answers.Scheme, Multiplier: answers.Multiplier},
	}

	if answers.WhiteTeam != "" {
		editor.RedWhiteTeams = append(editor.RedWhiteTeams, model.RedWhiteTeam{
			Name:      answers.WhiteTeam,
			WhiteTeam: true,
			Users:     []model.User{{Username: "white_admin", Password: "changeme"}},
		})
	}
	if answers.RedTeam != "" {
		editor.RedWhiteTeams = append(editor.RedWhiteTeams, model.RedWhiteTeam{
			Name:  answers.RedTeam,
			Users: []model.User{{Username: "red_admin", Password: "changeme"}},
		})
	}

	for i, name := range answers.BlueTeams {
		editor.BlueTeams = append(editor.BlueTeams, model.BlueTeam{
			ID:    uint8(i + 1),
			Name:  name,
			Users: []model.User{{Username: fmt.Sprintf("blue%d_admin", i+1), Password: "changeme"}},
		})
	}

	for _, m := range answers.Machines {
		machine := model.Machine{
			Name:       m.Name,
			IPTemplate: m.Template,
			IPOffset:   m.Offset,
		}
		for _, kind := range m.Kinds {
			if entry, ok := Entry(kind); ok {
				machine.Services = append(machine.Services, Draft(entry))
			}
		}
		editor.Machines = append(editor.Machines, machine)
	}

	return editor
}

// StarterDocument renders the commented YAML starter file from wizard
// answers.
func StarterDocument(answers Answers) (string, error) {
	tmpl, err := template.New("header").
		Funcs(template.FuncMap{"inc": func(i int) int { return i + 1 }}).
		Parse(starterHeader)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, answers); err != nil {
		return "", err
	}

	if err := model.EncodeEditor(&buf, BuildEditor(answers)); err != nil {
		return "", err
	}

	return buf.String(), nil
}
