package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sampleDocument = `
red_white_teams:
  - name: Red Team
    white_team: false
    users:
      - username: red_admin
        password: hunter2
blue_teams:
  - id: 1
    name: Blue1
    users:
      - username: blue1_admin
        password: changeme
machines:
  - name: web1
    ip_template: 10.0.0.X
    services:
      - name: site
        port: 80
        points: 100
        definition:
          kind: http
          checks:
            - matching_content: Welcome
              user_agent: Mozilla/5.0
              vhost: www.example.com
              uri: /
ip_generator:
  scheme: replace_id
`

func TestDecodeEditor(t *testing.T) {
	editor, err := DecodeEditor(strings.NewReader(sampleDocument))
	require.NoError(t, err)

	require.Len(t, editor.BlueTeams, 1)
	assert.Equal(t, uint8(1), editor.BlueTeams[0].ID)
	assert.Equal(t, SchemeReplaceID, editor.IPGenerator.Scheme)

	require.Len(t, editor.Machines, 1)
	svc := editor.Machines[0].Services[0]
	assert.Equal(t, KindHTTP, svc.Definition.Kind)
	require.Len(t, svc.Definition.Checks, 1)
	assert.Equal(t, "/", svc.Definition.Checks[0].URI)
}

func TestDecodeEditorRejectsUnknownFields(t *testing.T) {
	doc := strings.Replace(sampleDocument, "ip_template:", "ip_tmplate:", 1)
	_, err := DecodeEditor(strings.NewReader(doc))
	assert.Error(t, err)
}

func TestServiceKindRejectsUnknown(t *testing.T) {
	var kind ServiceKind
	err := yaml.Unmarshal([]byte("gopher"), &kind)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown service kind")
}

func TestSchemeKindRejectsUnknown(t *testing.T) {
	var kind SchemeKind
	err := yaml.Unmarshal([]byte("round_robin"), &kind)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown ip generator scheme")
}

func TestEditorClone(t *testing.T) {
	editor, err := DecodeEditor(strings.NewReader(sampleDocument))
	require.NoError(t, err)
	off := uint8(5)
	editor.Machines[0].IPOffset = &off

	clone := editor.Clone()
	require.Equal(t, editor, clone)

	// Mutating the clone must not reach the original.
	clone.BlueTeams[0].Users[0].Username = "intruder"
	clone.Machines[0].Services[0].Definition.Checks[0].URI = "/changed"
	*clone.Machines[0].IPOffset = 99

	assert.Equal(t, "blue1_admin", editor.BlueTeams[0].Users[0].Username)
	assert.Equal(t, "/", editor.Machines[0].Services[0].Definition.Checks[0].URI)
	assert.Equal(t, uint8(5), *editor.Machines[0].IPOffset)
}

func TestEncodeEditorRoundTrip(t *testing.T) {
	editor, err := DecodeEditor(strings.NewReader(sampleDocument))
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, EncodeEditor(&buf, editor))

	decoded, err := DecodeEditor(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, editor, decoded)
}
