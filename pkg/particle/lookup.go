// Package particle provides the particle-property port consumed by the
// decay-file parser: canonical antiparticle names and self-conjugate flags.
// The built-in StandardLookup covers the common EvtGen naming conventions;
// consumers with a full particle database can supply their own Lookup.
package particle

import "strings"

// Lookup answers the two particle-property questions the parser needs.
type Lookup interface {
	// IsSelfConjugate reports whether the particle equals its own charge
	// conjugate (e.g. pi0, gamma).
	IsSelfConjugate(name string) bool

	// Antiparticle returns the canonical antiparticle name, if known.
	Antiparticle(name string) (string, bool)
}

// selfConjugate holds particles identical to their own antiparticle.
var selfConjugate = map[string]struct{}{
	"gamma":    {},
	"g":        {},
	"pi0":      {},
	"eta":      {},
	"eta'":     {},
	"rho0":     {},
	"omega":    {},
	"phi":      {},
	"f_0":      {},
	"f'_0":     {},
	"f_1":      {},
	"f_2":      {},
	"h_1":      {},
	"a_00":     {},
	"a_10":     {},
	"a_20":     {},
	"K_S0":     {},
	"K_L0":     {},
	"J/psi":    {},
	"psi(2S)":  {},
	"eta_c":    {},
	"chi_c0":   {},
	"chi_c1":   {},
	"chi_c2":   {},
	"Upsilon":  {},
	"h0":       {},
	"Z0":       {},
	"vpho":     {},
	"Higgs0":   {},
	"deuteron": {},
}

// antiparticles maps particles whose antiparticle name does not follow the
// mechanical sign-flip / anti- prefix conventions, plus the common leptons
// and mesons so table hits stay cheap. The map is stored one-way and
// mirrored at init.
var antiparticles = map[string]string{
	"e-":        "e+",
	"mu-":       "mu+",
	"tau-":      "tau+",
	"nu_e":      "anti-nu_e",
	"nu_mu":     "anti-nu_mu",
	"nu_tau":    "anti-nu_tau",
	"pi+":       "pi-",
	"K+":        "K-",
	"K0":        "anti-K0",
	"K*0":       "anti-K*0",
	"K*+":       "K*-",
	"D0":        "anti-D0",
	"D+":        "D-",
	"D*0":       "anti-D*0",
	"D*+":       "D*-",
	"D_s+":      "D_s-",
	"D_s*+":     "D_s*-",
	"B0":        "anti-B0",
	"B+":        "B-",
	"B_s0":      "anti-B_s0",
	"B_c+":      "B_c-",
	"p+":        "anti-p-",
	"n0":        "anti-n0",
	"Lambda0":   "anti-Lambda0",
	"Sigma+":    "anti-Sigma-",
	"Sigma0":    "anti-Sigma0",
	"Sigma-":    "anti-Sigma+",
	"Xi0":       "anti-Xi0",
	"Xi-":       "anti-Xi+",
	"Omega-":    "anti-Omega+",
	"Lambda_c+": "anti-Lambda_c-",
	"Lambda_b0": "anti-Lambda_b0",
	"rho+":      "rho-",
	"a_1+":      "a_1-",
	"a_2+":      "a_2-",
	"D_1+":      "D_1-",
	"D_10":      "anti-D_10",
	"D_2*+":     "D_2*-",
	"D_2*0":     "anti-D_2*0",
	"D'_1+":     "D'_1-",
	"D'_10":     "anti-D'_10",
}

func init() {
	for p, ap := range antiparticles {
		if _, ok := antiparticles[ap]; !ok {
			antiparticles[ap] = p
		}
	}
}

// StandardLookup is the built-in Lookup. It combines the tables above with
// the EvtGen naming conventions: a trailing charge sign flips, an "anti-"
// prefix toggles. Neutral names not covered by either rule are unknown.
type StandardLookup struct{}

// NewStandardLookup returns the built-in particle-property lookup.
func NewStandardLookup() *StandardLookup { return &StandardLookup{} }

func (*StandardLookup) IsSelfConjugate(name string) bool {
	_, ok := selfConjugate[name]
	return ok
}

func (*StandardLookup) Antiparticle(name string) (string, bool) {
	if _, ok := selfConjugate[name]; ok {
		return name, true
	}
	if ap, ok := antiparticles[name]; ok {
		return ap, true
	}
	if ap, ok := conventionInvert(name); ok {
		return ap, true
	}
	return "", false
}

// conventionInvert applies the naming conventions for particles outside the
// tables: toggle an explicit "anti-" prefix, or flip a trailing run of
// charge signs. Aliases are deliberately not handled here; they are resolved
// by the symbol table, not by name shape.
func conventionInvert(name string) (string, bool) {
	if rest, ok := strings.CutPrefix(name, "anti-"); ok {
		return rest, true
	}
	i := len(name)
	for i > 0 && (name[i-1] == '+' || name[i-1] == '-') {
		i--
	}
	if i == len(name) {
		return "", false
	}
	flipped := []byte(name)
	for j := i; j < len(name); j++ {
		if flipped[j] == '+' {
			flipped[j] = '-'
		} else {
			flipped[j] = '+'
		}
	}
	return string(flipped), true
}

// StableDefaults returns the particles treated as stable when no explicit
// stable set is configured: detector-stable or long-lived species that
// routinely appear as undecayed leaves in decay files.
func StableDefaults() []string {
	return []string{
		"gamma",
		"e+", "e-",
		"mu+", "mu-",
		"nu_e", "anti-nu_e",
		"nu_mu", "anti-nu_mu",
		"nu_tau", "anti-nu_tau",
		"pi+", "pi-",
		"K+", "K-",
		"K_L0",
		"p+", "anti-p-",
		"n0", "anti-n0",
	}
}
