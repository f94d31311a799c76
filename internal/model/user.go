package model

// User is a credential pair, either a team member or a per-service account.
type User struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}
