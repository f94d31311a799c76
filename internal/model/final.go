package model

// TeamColor classifies a team in the final document.
type TeamColor string

const (
	ColorRed   TeamColor = "Red"
	ColorWhite TeamColor = "White"
	ColorBlue  TeamColor = "Blue"
)

// Team is a fully validated team in the final document. Services is only
// populated for blue teams.
type Team struct {
	Color    TeamColor       `yaml:"color"`
	Name     string          `yaml:"name"`
	Users    []User          `yaml:"users"`
	Services []ServiceConfig `yaml:"services,omitempty"`
}

// Property is one named value of an environment, copied verbatim from the
// originating check record.
type Property struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Environment is a derived, validated check record ready for the scoring
// engine's prober.
type Environment struct {
	MatchingContent string     `yaml:"matching_content"`
	Properties      []Property `yaml:"properties"`
}

// ServiceConfig is a fully resolved service in the final document. Name is
// synthesized as "{machine}-{checkName}-{serviceName}".
type ServiceConfig struct {
	Name         string        `yaml:"name"`
	CheckName    string        `yaml:"check_name"`
	Host         string        `yaml:"host"`
	Port         uint16        `yaml:"port"`
	Points       uint16        `yaml:"points"`
	Accounts     []User        `yaml:"accounts,omitempty"`
	Environments []Environment `yaml:"environments"`
}

// Config is the fully resolved configuration consumed by the scoring engine.
// It embeds the validated editor document for round-trip display.
type Config struct {
	EditorInfo Editor `yaml:"editor_info"`
	Teams      []Team `yaml:"teams"`
}
