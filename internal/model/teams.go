package model

// RedWhiteTeam is a red or white team as authored in the editor document.
// Name and users may be empty while the document is being edited.
type RedWhiteTeam struct {
	Name      string `yaml:"name"`
	Users     []User `yaml:"users"`
	WhiteTeam bool   `yaml:"white_team"`
}

// BlueTeam is a scored team as authored in the editor document. The ID feeds
// the IP generator; it may be zero or duplicated until conversion time.
type BlueTeam struct {
	ID    uint8  `yaml:"id"`
	Name  string `yaml:"name"`
	Users []User `yaml:"users"`
}
