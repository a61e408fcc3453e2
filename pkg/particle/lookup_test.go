package particle

import "testing"

func TestStandardLookup_IsSelfConjugate(t *testing.T) {
	lookup := NewStandardLookup()
	for _, name := range []string{"gamma", "pi0", "J/psi", "K_S0"} {
		if !lookup.IsSelfConjugate(name) {
			t.Errorf("IsSelfConjugate(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"D0", "e-", "K0", "made-up"} {
		if lookup.IsSelfConjugate(name) {
			t.Errorf("IsSelfConjugate(%q) = true, want false", name)
		}
	}
}

func TestStandardLookup_Antiparticle(t *testing.T) {
	lookup := NewStandardLookup()
	tests := []struct {
		name string
		want string
	}{
		// Table entries and their mirrored inverses.
		{"e-", "e+"},
		{"e+", "e-"},
		{"D0", "anti-D0"},
		{"anti-D0", "D0"},
		{"Sigma+", "anti-Sigma-"},
		{"anti-Sigma-", "Sigma+"},
		// Self-conjugates answer with themselves.
		{"pi0", "pi0"},
		// Convention: trailing sign run flips.
		{"Delta++", "Delta--"},
		{"X_c+", "X_c-"},
		// Convention: anti- prefix toggles.
		{"anti-Xi_cc0", "Xi_cc0"},
	}
	for _, tt := range tests {
		got, ok := lookup.Antiparticle(tt.name)
		if !ok {
			t.Errorf("Antiparticle(%q) unknown, want %q", tt.name, tt.want)
			continue
		}
		if got != tt.want {
			t.Errorf("Antiparticle(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestStandardLookup_UnknownNeutral(t *testing.T) {
	lookup := NewStandardLookup()
	if got, ok := lookup.Antiparticle("X_unseen0"); ok {
		t.Errorf("Antiparticle(X_unseen0) = %q, want unknown", got)
	}
}

func TestStableDefaults(t *testing.T) {
	stable := make(map[string]bool)
	for _, name := range StableDefaults() {
		stable[name] = true
	}
	for _, name := range []string{"gamma", "e+", "pi-", "K_L0"} {
		if !stable[name] {
			t.Errorf("StableDefaults() missing %q", name)
		}
	}
	if stable["D0"] || stable["pi0"] {
		t.Errorf("StableDefaults() should not contain decaying species")
	}
}
