package graph

import (
	"strings"
	"testing"

	"github.com/hepkit/decfile/pkg/decay"
)

func dstChain() *decay.Node {
	d0 := &decay.Node{
		Particle: "D0",
		Channels: []decay.NodeChannel{{
			BranchingFraction: 1,
			Model:             "PHSP",
			Daughters: []decay.Daughter{
				{Name: "K-"},
				{Name: "pi+"},
			},
		}},
	}
	return &decay.Node{
		Particle: "D*+",
		Channels: []decay.NodeChannel{{
			BranchingFraction: 0.677,
			Model:             "VSS",
			Daughters: []decay.Daughter{
				{Name: "D0", Node: d0},
				{Name: "pi+"},
			},
		}},
	}
}

func TestGenerateMermaid(t *testing.T) {
	out := GenerateMermaid(dstChain())

	if !strings.HasPrefix(out, "graph TD\n") {
		t.Fatalf("missing graph header:\n%s", out)
	}
	for _, want := range []string{
		`n_Dstp(("D*+"))`,          // root is a circle
		`n_D0["D0"]`,               // decaying daughter is a rectangle
		`n_pip(["pi+"])`,           // leaf is a stadium
		`n_Dstp -- "0.677 VSS" --> n_D0`,
		`n_D0 -- "1 PHSP" --> n_Km`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateMermaid_RepeatedNamesGetUniqueIDs(t *testing.T) {
	root := &decay.Node{
		Particle: "D0",
		Channels: []decay.NodeChannel{{
			BranchingFraction: 1,
			Model:             "PHSP",
			Daughters: []decay.Daughter{
				{Name: "pi+"},
				{Name: "pi+"},
			},
		}},
	}
	out := GenerateMermaid(root)
	if !strings.Contains(out, "n_pip([") || !strings.Contains(out, "n_pip_1([") {
		t.Errorf("repeated daughters should get distinct node IDs:\n%s", out)
	}
}

func TestSanitizeMermaidID(t *testing.T) {
	tests := map[string]string{
		"D*+":     "n_Dstp",
		"anti-D0": "n_antimD0",
		"J/psi":   "n_J_psi",
		"eta'":    "n_etapr",
	}
	for in, want := range tests {
		if got := sanitizeMermaidID(in); got != want {
			t.Errorf("sanitizeMermaidID(%q) = %q, want %q", in, got, want)
		}
	}
}
