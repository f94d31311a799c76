// Package convert turns a hand-edited, loosely-constrained editor document
// into a fully resolved scoring-engine configuration, or a precise error.
package convert

import (
	"errors"
	"fmt"
	"strings"
)

// Conversion failures form a flat taxonomy: one error value per distinct
// violation, each carrying the context needed to render a diagnostic without
// re-inspecting the input. Validation is fail-fast; the first violation
// aborts the whole conversion.

var (
	// ErrOneTeamWithMultipleTeams is returned when the one-team scheme is
	// used with more than one blue team.
	ErrOneTeamWithMultipleTeams = errors.New("multiple teams specified with a one team ip address configuration")

	// ErrTeamHasEmptyName is returned for any team with a blank name.
	ErrTeamHasEmptyName = errors.New("one of the teams has no name")

	// ErrMachineHasEmptyName is returned for any machine with a blank name.
	ErrMachineHasEmptyName = errors.New("one of the machines has no name")
)

// XInManualIPError: a template placeholder appeared where a literal address
// was expected.
type XInManualIPError struct {
	Machine string
}

func (e *XInManualIPError) Error() string {
	return fmt.Sprintf("an ip address template was provided when a full ip address was expected (machine: %s)", e.Machine)
}

// NoXInTemplateIPError: a literal address appeared where a template with the
// placeholder letter x/X was expected.
type NoXInTemplateIPError struct {
	Machine string
}

func (e *NoXInTemplateIPError) Error() string {
	return fmt.Sprintf("a full ip address was provided when an ip address template was expected (machine: %s)", e.Machine)
}

// MultNotBigEnoughError: the multiplier cannot separate per-team address
// ranges for the current machine count.
type MultNotBigEnoughError struct {
	MachineCount uint8
	Multiplier   uint8
}

func (e *MultNotBigEnoughError) Error() string {
	return fmt.Sprintf("the multiplier specified was not big enough to account for all the machines on the network (multiplier %d, machine count %d)", e.Multiplier, e.MachineCount)
}

// OffsetNotSpecifiedError: the multiplier scheme reached resolution for a
// machine without an offset.
type OffsetNotSpecifiedError struct {
	Machine string
}

func (e *OffsetNotSpecifiedError) Error() string {
	return fmt.Sprintf("a machine does not have an ip address offset specified (machine %s)", e.Machine)
}

// MissingOffsetError: the offset completeness pre-check found a machine
// without an offset.
type MissingOffsetError struct {
	Machine string
}

func (e *MissingOffsetError) Error() string {
	return fmt.Sprintf("machine %s is missing an offset", e.Machine)
}

// DuplicateOffsetsError: two or more machines declared the same offset.
type DuplicateOffsetsError struct {
	Machines []string
}

func (e *DuplicateOffsetsError) Error() string {
	return fmt.Sprintf("multiple machines share the same offsets (%s)", strings.Join(e.Machines, ", "))
}

// OffsetOverflowError: multiplier*teamID+offset does not fit in a byte.
// Rejected explicitly instead of wrapping around.
type OffsetOverflowError struct {
	Machine string
	Value   int
}

func (e *OffsetOverflowError) Error() string {
	return fmt.Sprintf("the computed address value for machine %s does not fit in a byte (%d)", e.Machine, e.Value)
}

// DuplicateIPsError: two machine/team combinations resolved to the same
// address.
type DuplicateIPsError struct {
	Addr         string
	Machine      string
	OtherMachine string
}

func (e *DuplicateIPsError) Error() string {
	return fmt.Sprintf("duplicate ip address %s specified for machines %s and %s", e.Addr, e.Machine, e.OtherMachine)
}

// EmptyUsernameOrPasswordError: a team member or service account has a blank
// credential. Where identifies the enclosing team or service.
type EmptyUsernameOrPasswordError struct {
	Where    string
	Username string
}

func (e *EmptyUsernameOrPasswordError) Error() string {
	return fmt.Sprintf("empty username or password at %s (username: %s)", e.Where, e.Username)
}

// DuplicateBlueTeamIDsError: an ID is claimed by more than one blue team.
type DuplicateBlueTeamIDsError struct {
	ID    uint8
	Names []string
}

func (e *DuplicateBlueTeamIDsError) Error() string {
	return fmt.Sprintf("duplicate blue team member IDs for teams %s (%d)", strings.Join(e.Names, ", "), e.ID)
}

// ZeroBlueTeamIDError: blue team IDs must be non-zero.
type ZeroBlueTeamIDError struct {
	Name string
}

func (e *ZeroBlueTeamIDError) Error() string {
	return fmt.Sprintf("blue team %s has an ID of 0", e.Name)
}

// TeamNeedsUserError: every team needs at least one user.
type TeamNeedsUserError struct {
	Team string
}

func (e *TeamNeedsUserError) Error() string {
	return fmt.Sprintf("team %s is missing at least one user account", e.Team)
}

// DuplicateMachineNamesError: a machine name is used more than once.
type DuplicateMachineNamesError struct {
	Machine string
}

func (e *DuplicateMachineNamesError) Error() string {
	return fmt.Sprintf("multiple machines share the name %s", e.Machine)
}

// MachineHasEmptyServiceError: a machine carries a service with no name.
type MachineHasEmptyServiceError struct {
	Machine string
}

func (e *MachineHasEmptyServiceError) Error() string {
	return fmt.Sprintf("machine %s has a service with no name", e.Machine)
}

// DuplicateServiceNameError: a service name is used more than once on the
// same machine.
type DuplicateServiceNameError struct {
	Machine string
	Service string
}

func (e *DuplicateServiceNameError) Error() string {
	return fmt.Sprintf("machine %s has multiple services named %s", e.Machine, e.Service)
}

// ServiceNotFullyConfiguredError: one of a service's check records failed
// field validation. Reasons joins every violated rule on that record.
type ServiceNotFullyConfiguredError struct {
	Machine string
	Service string
	Reasons string
}

func (e *ServiceNotFullyConfiguredError) Error() string {
	return fmt.Sprintf("service %s on machine %s is not fully configured: %s", e.Service, e.Machine, e.Reasons)
}

// DuplicateUserNameForTeamsError: a username appears under more than one
// team.
type DuplicateUserNameForTeamsError struct {
	Username string
	Teams    []string
}

func (e *DuplicateUserNameForTeamsError) Error() string {
	return fmt.Sprintf("the username %s is repeated across teams %s", e.Username, strings.Join(e.Teams, ", "))
}
