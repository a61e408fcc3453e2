// Package validator runs the non-fatal semantic checks over an assembled
// set of decay blocks. All results are collected and returned; nothing here
// aborts a parse.
package validator

import (
	"fmt"

	"github.com/hepkit/decfile/pkg/decay"
)

// DefaultTolerance is the epsilon over 1.0 allowed for a block's branching
// fraction sum before an over-unity finding is raised.
const DefaultTolerance = 1e-6

// Validate checks every block and returns the findings in a deterministic
// order: block checks in declaration order, then one unresolved-particle
// finding per unique leaf name in first-appearance order. stable names are
// expected leaves and never reported as unresolved.
func Validate(blocks []decay.Block, stable []string, tolerance float64) []decay.Finding {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	known := make(map[string]struct{}, len(blocks))
	for _, b := range blocks {
		known[b.Particle] = struct{}{}
	}
	stableSet := make(map[string]struct{}, len(stable))
	for _, s := range stable {
		stableSet[s] = struct{}{}
	}

	var findings []decay.Finding
	reported := make(map[string]struct{})

	for _, b := range blocks {
		sum := 0.0
		for _, ch := range b.Channels {
			sum += ch.BranchingFraction
		}
		if sum > 1+tolerance {
			findings = append(findings, decay.Finding{
				Code:     decay.FindingOverUnity,
				Severity: decay.SeverityWarning,
				Particle: b.Particle,
				Message:  fmt.Sprintf("branching fractions sum to %g", sum),
			})
		}
	}

	for _, b := range blocks {
		for _, ch := range b.Channels {
			for _, d := range ch.Daughters {
				if _, ok := known[d]; ok {
					continue
				}
				if _, ok := stableSet[d]; ok {
					continue
				}
				if _, ok := reported[d]; ok {
					continue
				}
				reported[d] = struct{}{}
				findings = append(findings, decay.Finding{
					Code:     decay.FindingUnresolvedParticle,
					Severity: decay.SeverityInfo,
					Particle: d,
					Message:  "daughter has no decay block and is not in the stable set",
				})
			}
		}
	}

	return findings
}
