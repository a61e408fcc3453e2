package validator

import (
	"testing"

	"github.com/hepkit/decfile/pkg/decay"
)

func block(particle string, fractions ...float64) decay.Block {
	b := decay.Block{Particle: particle}
	for _, f := range fractions {
		b.Channels = append(b.Channels, decay.Channel{
			BranchingFraction: f,
			Daughters:         []string{"pi+", "pi-"},
			Model:             "PHSP",
		})
	}
	return b
}

func TestValidate_OverUnity(t *testing.T) {
	blocks := []decay.Block{
		block("D0", 0.905, 0.095), // exactly 1.0
		block("D+", 0.7, 0.4),     // 1.1
	}
	findings := Validate(blocks, []string{"pi+", "pi-"}, DefaultTolerance)
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1: %v", len(findings), findings)
	}
	f := findings[0]
	if f.Code != decay.FindingOverUnity || f.Particle != "D+" || f.Severity != decay.SeverityWarning {
		t.Errorf("finding = %+v", f)
	}
}

func TestValidate_SumWithinTolerance(t *testing.T) {
	blocks := []decay.Block{block("D0", 0.5, 0.5000005)}
	findings := Validate(blocks, []string{"pi+", "pi-"}, DefaultTolerance)
	if len(findings) != 0 {
		t.Errorf("sum 1.0000005 within 1e-6 should pass, got %v", findings)
	}
}

func TestValidate_UnresolvedOncePerName(t *testing.T) {
	blocks := []decay.Block{
		{Particle: "B0", Channels: []decay.Channel{
			{BranchingFraction: 0.5, Daughters: []string{"MyD-", "pi+"}, Model: "PHSP"},
			{BranchingFraction: 0.5, Daughters: []string{"MyD-", "rho+"}, Model: "PHSP"},
		}},
	}
	findings := Validate(blocks, []string{"pi+"}, DefaultTolerance)
	var unresolved []string
	for _, f := range findings {
		if f.Code == decay.FindingUnresolvedParticle {
			unresolved = append(unresolved, f.Particle)
		}
	}
	// MyD- appears twice but is reported once; rho+ is neither known nor
	// stable; pi+ is stable; B0 decays.
	if len(unresolved) != 2 || unresolved[0] != "MyD-" || unresolved[1] != "rho+" {
		t.Errorf("unresolved = %v, want [MyD- rho+]", unresolved)
	}
}

func TestValidate_KnownDaughtersSuppressed(t *testing.T) {
	blocks := []decay.Block{
		{Particle: "B0", Channels: []decay.Channel{
			{BranchingFraction: 1, Daughters: []string{"D-", "pi+"}, Model: "PHSP"},
		}},
		block("D-", 1),
	}
	findings := Validate(blocks, []string{"pi+", "pi-"}, DefaultTolerance)
	if len(findings) != 0 {
		t.Errorf("daughters with blocks or in the stable set should pass, got %v", findings)
	}
}

func TestValidate_ZeroToleranceFallsBack(t *testing.T) {
	blocks := []decay.Block{block("D0", 1.0000005)}
	if findings := Validate(blocks, []string{"pi+", "pi-"}, 0); len(findings) != 0 {
		t.Errorf("tolerance 0 should fall back to the default, got %v", findings)
	}
}
