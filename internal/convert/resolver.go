package convert

import (
	"strconv"
	"strings"

	"scoreconf/internal/model"
)

// hostRegistry remembers which machine claimed each resolved address. One
// registry is threaded across every team/machine pair of a conversion so
// collisions are detected at the address level, not the template level.
type hostRegistry map[string]string

// claim registers an address for a machine. Re-claiming the same address for
// the same machine is idempotent: the same machine resolves once per team
// under a shared scheme.
func (r hostRegistry) claim(addr, machine string) error {
	if owner, ok := r[addr]; ok {
		if owner == machine {
			return nil
		}
		return &DuplicateIPsError{Addr: addr, Machine: machine, OtherMachine: owner}
	}
	r[addr] = machine
	return nil
}

func hasPlaceholder(template string) bool {
	return strings.ContainsAny(template, "xX")
}

func substitute(template string, value int) string {
	s := strconv.Itoa(value)
	return strings.NewReplacer("x", s, "X", s).Replace(template)
}

// resolveHost computes the concrete address for one machine and one team
// under the document's generation scheme.
func resolveHost(used hostRegistry, machine string, template string, offset *uint8, gen model.IPGenerator, teamID uint8) (string, error) {
	switch gen.Scheme {
	case model.SchemeOneTeam:
		if hasPlaceholder(template) {
			return "", &XInManualIPError{Machine: machine}
		}
		if err := used.claim(template, machine); err != nil {
			return "", err
		}
		return template, nil

	case model.SchemeReplaceID:
		if !hasPlaceholder(template) {
			return "", &NoXInTemplateIPError{Machine: machine}
		}
		addr := substitute(template, int(teamID))
		if err := used.claim(addr, machine); err != nil {
			return "", err
		}
		return addr, nil

	case model.SchemeMultiplierOffset:
		if offset == nil {
			return "", &OffsetNotSpecifiedError{Machine: machine}
		}
		if !hasPlaceholder(template) {
			return "", &NoXInTemplateIPError{Machine: machine}
		}
		// Collisions under this scheme are prevented structurally by the
		// multiplier/offset pre-validation, so no registry claim here.
		value := int(gen.Multiplier)*int(teamID) + int(*offset)
		if value > 255 {
			return "", &OffsetOverflowError{Machine: machine, Value: value}
		}
		return substitute(template, value), nil
	}

	return "", &NoXInTemplateIPError{Machine: machine}
}
