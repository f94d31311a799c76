package model

import "fmt"

// SchemeKind selects how a team ID and a machine's address template combine
// into a concrete host address.
type SchemeKind string

const (
	// SchemeOneTeam uses machine templates as literal addresses. Only valid
	// with a single blue team.
	SchemeOneTeam SchemeKind = "one_team"
	// SchemeReplaceID replaces the placeholder letter x/X in the template
	// with the team ID.
	SchemeReplaceID SchemeKind = "replace_id"
	// SchemeMultiplierOffset replaces the placeholder with
	// multiplier*teamID + the machine's offset.
	SchemeMultiplierOffset SchemeKind = "multiplier_offset"
)

// IPGenerator is the address generation scheme for the whole document.
// Multiplier is only meaningful for SchemeMultiplierOffset.
type IPGenerator struct {
	Scheme     SchemeKind `yaml:"scheme"`
	Multiplier uint8      `yaml:"multiplier,omitempty"`
}

// UnmarshalYAML rejects unknown scheme kinds at decode time.
func (k *SchemeKind) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	switch SchemeKind(s) {
	case SchemeOneTeam, SchemeReplaceID, SchemeMultiplierOffset:
		*k = SchemeKind(s)
		return nil
	}
	return fmt.Errorf("unknown ip generator scheme %q", s)
}
