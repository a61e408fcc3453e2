package decay

// knownModels lists the kinematic model names recognized out of the box.
// The set covers the EvtGen models seen in production decay files; parsers
// can extend it per instance. Model names end the daughter list of a channel,
// so membership here is what disambiguates "daughter" from "model".
var knownModels = []string{
	"BTO3PI_CP",
	"BTOSLLALI",
	"BTOSLLBALL",
	"BTOXSGAMMA",
	"CB3PI-MPP",
	"CB3PI-P00",
	"D_DALITZ",
	"ETA_DALITZ",
	"FLATQ2",
	"GOITY_ROBERTS",
	"HELAMP",
	"HQET",
	"HQET2",
	"ISGW",
	"ISGW2",
	"JETSET",
	"OMEGA_DALITZ",
	"PARTWAVE",
	"PHOTOS",
	"PHSP",
	"PI0_DALITZ",
	"PYTHIA",
	"SLN",
	"SSD_CP",
	"SSS_CP",
	"STS",
	"SVP_HELAMP",
	"SVS",
	"SVV_CP",
	"SVV_HELAMP",
	"TAUHADNU",
	"TAULNUNU",
	"TAUSCALARNU",
	"TAUVECTORNU",
	"TSS",
	"TVP",
	"TVS_PWAVE",
	"VLL",
	"VSP_PWAVE",
	"VSS",
	"VSS_BMIX",
	"VUB",
	"VVPIPI",
	"VVS_PWAVE",
}

// ModelSet is a lookup set of recognized decay-model names.
type ModelSet map[string]struct{}

// DefaultModels returns a fresh set of the built-in model names.
func DefaultModels() ModelSet {
	s := make(ModelSet, len(knownModels))
	for _, m := range knownModels {
		s[m] = struct{}{}
	}
	return s
}

// Add registers extra model names.
func (s ModelSet) Add(names ...string) {
	for _, n := range names {
		s[n] = struct{}{}
	}
}

// Contains reports whether name is a recognized model.
func (s ModelSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}
