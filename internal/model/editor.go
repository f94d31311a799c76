package model

// Editor is the mutable, hand-authored configuration document. It is
// under-constrained by design: names, IDs, and check fields may be blank or
// duplicated until conversion validates them.
type Editor struct {
	RedWhiteTeams []RedWhiteTeam `yaml:"red_white_teams"`
	BlueTeams     []BlueTeam     `yaml:"blue_teams"`
	Machines      []Machine      `yaml:"machines"`
	IPGenerator   IPGenerator    `yaml:"ip_generator"`
}

// Clone returns a deep copy of the editor document. Conversion works on a
// clone so it never aliases caller-owned state.
func (e *Editor) Clone() *Editor {
	out := &Editor{IPGenerator: e.IPGenerator}

	out.RedWhiteTeams = make([]RedWhiteTeam, len(e.RedWhiteTeams))
	for i, t := range e.RedWhiteTeams {
		t.Users = cloneUsers(t.Users)
		out.RedWhiteTeams[i] = t
	}

	out.BlueTeams = make([]BlueTeam, len(e.BlueTeams))
	for i, t := range e.BlueTeams {
		t.Users = cloneUsers(t.Users)
		out.BlueTeams[i] = t
	}

	out.Machines = make([]Machine, len(e.Machines))
	for i, m := range e.Machines {
		if m.IPOffset != nil {
			off := *m.IPOffset
			m.IPOffset = &off
		}
		services := make([]ServiceDraft, len(m.Services))
		for j, s := range m.Services {
			s.Accounts = cloneUsers(s.Accounts)
			s.Definition.Checks = append([]CheckRecord(nil), s.Definition.Checks...)
			services[j] = s
		}
		m.Services = services
		out.Machines[i] = m
	}

	return out
}

func cloneUsers(users []User) []User {
	if users == nil {
		return nil
	}
	return append([]User(nil), users...)
}
