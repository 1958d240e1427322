package topic

import (
	"fmt"
)

// Topic segments shared by the ground station and remote consoles. Changing
// these breaks every console already subscribed.
const (
	// SuffixTelemetry carries accepted records (ground -> consoles).
	// Structure: {root}/telemetry/{teamID}
	SuffixTelemetry = "telemetry"

	// SuffixFault carries rejected-line notices (ground -> consoles).
	// Structure: {root}/telemetry/fault/{teamID}
	SuffixFault = "telemetry/fault"

	// SuffixStatus carries link-status events such as liveness warnings.
	// Structure: {root}/status/{teamID}
	SuffixStatus = "status"

	// SuffixCommand carries operator token lines from remote consoles to
	// the ground station for uplink encoding (consoles -> ground).
	// Structure: {root}/command/{teamID}
	SuffixCommand = "command"
)

// Builder constructs the bridge's MQTT topic strings from the configured
// root namespace.
type Builder struct {
	root string
}

// NewBuilder creates a Builder with the specified root namespace
// (e.g. "gs/v1").
func NewBuilder(root string) *Builder {
	return &Builder{root: root}
}

// Telemetry returns the accepted-record topic for a team.
func (b *Builder) Telemetry(teamID string) string {
	return b.build(SuffixTelemetry, teamID)
}

// Fault returns the rejected-line topic for a team.
func (b *Builder) Fault(teamID string) string {
	return b.build(SuffixFault, teamID)
}

// Status returns the link-status topic for a team.
func (b *Builder) Status(teamID string) string {
	return b.build(SuffixStatus, teamID)
}

// Command returns the remote-command topic for a team.
func (b *Builder) Command(teamID string) string {
	return b.build(SuffixCommand, teamID)
}

func (b *Builder) build(suffix, id string) string {
	return fmt.Sprintf("%s/%s/%s", b.root, suffix, id)
}
