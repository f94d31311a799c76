package model

// Machine is a scored host as authored in the editor document. IPOffset is
// only meaningful under the multiplier/offset scheme; nil means unset.
type Machine struct {
	Name       string         `yaml:"name"`
	Services   []ServiceDraft `yaml:"services"`
	IPTemplate string         `yaml:"ip_template"`
	IPOffset   *uint8         `yaml:"ip_offset,omitempty"`
}
