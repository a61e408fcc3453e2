package decay

import "fmt"

// Severity classifies how seriously a Finding should be taken. Findings are
// advisory: none of them fail the parse.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// FindingCode identifies the class of a validation finding.
type FindingCode string

const (
	// FindingOverUnity: a block's branching fractions sum to more than
	// 1 + tolerance.
	FindingOverUnity FindingCode = "over-unity"

	// FindingUnresolvedParticle: a daughter has no registered block and is
	// not in the known-stable set. Such particles are legitimate leaves.
	FindingUnresolvedParticle FindingCode = "unresolved-particle"

	// FindingShadowedCDecay: a particle is the target of both a Decay and a
	// CDecay statement; the CDecay is ignored.
	FindingShadowedCDecay FindingCode = "shadowed-cdecay"

	// FindingRedefinedConstant: a Define re-assigns an existing constant;
	// the last value wins.
	FindingRedefinedConstant FindingCode = "redefined-constant"

	// FindingPhotosReset: the global yesPhotos/noPhotos flag is set more
	// than once; the last setting wins.
	FindingPhotosReset FindingCode = "photos-reset"
)

// Finding is a single non-fatal validation result.
type Finding struct {
	Code     FindingCode `json:"code" yaml:"code"`
	Severity Severity    `json:"severity" yaml:"severity"`
	Particle string      `json:"particle,omitempty" yaml:"particle,omitempty"`
	Message  string      `json:"message" yaml:"message"`
}

func (f Finding) String() string {
	if f.Particle == "" {
		return fmt.Sprintf("[%s] %s: %s", f.Severity, f.Code, f.Message)
	}
	return fmt.Sprintf("[%s] %s (%s): %s", f.Severity, f.Code, f.Particle, f.Message)
}
