package parser

import (
	"fmt"
	"log/slog"

	"github.com/hepkit/decfile/internal/symtab"
	"github.com/hepkit/decfile/internal/validator"
	"github.com/hepkit/decfile/pkg/decay"
	"github.com/hepkit/decfile/pkg/particle"
	"github.com/hepkit/decfile/pkg/registry"
)

// Options configures a single assembly run.
type Options struct {
	Lookup         particle.Lookup
	Tolerance      float64
	MaxDepth       int
	Stable         []string
	SkipConjugates bool
	Logger         *slog.Logger
}

// Assemble runs the two passes over the declaration sequence and returns the
// frozen registry. The build is atomic: any fatal error returns a nil
// registry.
func Assemble(decls []Decl, opts Options) (*registry.Registry, error) {
	table := symtab.New(opts.Lookup)
	builder := registry.NewBuilder()
	var conjugates []CDecayDecl

	// Pass 1: register every declaration in file order.
	for _, d := range decls {
		switch decl := d.(type) {
		case AliasDecl:
			if err := table.AddAlias(decl.Name, decl.Target); err != nil {
				return nil, posErr(decl.Pos, err)
			}

		case ChargeConjDecl:
			if err := table.AddConjugate(decl.A, decl.B); err != nil {
				return nil, posErr(decl.Pos, err)
			}

		case DecayDecl:
			block := decay.Block{Particle: decl.Particle, Channels: decl.Channels}
			if err := builder.AddBlock(block); err != nil {
				return nil, posErr(decl.Pos, err)
			}

		case CDecayDecl:
			conjugates = append(conjugates, decl)

		case DefineDecl:
			if builder.SetDefinition(decl.Name, decl.Value) {
				builder.AddFinding(decay.Finding{
					Code:     decay.FindingRedefinedConstant,
					Severity: decay.SeverityWarning,
					Message:  fmt.Sprintf("Define %s re-assigned; last value wins", decl.Name),
				})
			}

		case PythiaDecl:
			builder.AddPythiaParam(decl.Param)

		case LineshapeDecl:
			builder.AddLineshape(decl.Shape)

		case PhotosDecl:
			if builder.SetPhotos(decl.Enabled) {
				builder.AddFinding(decay.Finding{
					Code:     decay.FindingPhotosReset,
					Severity: decay.SeverityWarning,
					Message:  "global photos flag set more than once; last setting wins",
				})
			}
		}
	}

	// Pass 2: materialize conjugate blocks, then validate. Every Alias,
	// ChargeConj and Decay in the file is visible by now, so CDecay order
	// relative to its sources no longer matters.
	if !opts.SkipConjugates {
		for _, decl := range conjugates {
			if err := generateConjugate(decl, table, builder); err != nil {
				return nil, err
			}
		}
	} else if len(conjugates) > 0 && opts.Logger != nil {
		opts.Logger.Debug("skipping charge-conjugate generation", "requests", len(conjugates))
	}

	for _, f := range validator.Validate(builder.Blocks(), opts.Stable, opts.Tolerance) {
		builder.AddFinding(f)
	}

	reg := builder.Freeze(opts.Stable, opts.MaxDepth)
	if opts.Logger != nil {
		opts.Logger.Debug("registry frozen",
			"decays", reg.NumDecays(),
			"findings", len(reg.Findings()))
	}
	return reg, nil
}

// generateConjugate materializes one CDecay request: it mirrors the block
// of the conjugate partner, substituting each daughter by its conjugate and
// leaving daughters without one unchanged.
func generateConjugate(decl CDecayDecl, table *symtab.Table, builder *registry.Builder) error {
	if builder.HasBlock(decl.Particle) {
		// Defined with both Decay and CDecay; the explicit Decay wins.
		builder.AddFinding(decay.Finding{
			Code:     decay.FindingShadowedCDecay,
			Severity: decay.SeverityWarning,
			Particle: decl.Particle,
			Message:  "particle has both Decay and CDecay definitions; CDecay ignored",
		})
		return nil
	}

	partner, err := table.Conjugate(decl.Particle)
	if err != nil {
		return posErr(decl.Pos, err)
	}
	source, ok := builder.Block(partner)
	if !ok {
		return posErr(decl.Pos, fmt.Errorf("%w: CDecay %s needs a Decay block for %s",
			decay.ErrMissingSourceDecay, decl.Particle, partner))
	}

	mirrored := decay.Block{
		Particle:  decl.Particle,
		Channels:  make([]decay.Channel, 0, len(source.Channels)),
		Generated: true,
	}
	for _, ch := range source.Channels {
		mc := decay.Channel{
			BranchingFraction: ch.BranchingFraction,
			Model:             ch.Model,
			ModelParams:       ch.ModelParams,
			Photos:            ch.Photos,
			Daughters:         make([]string, 0, len(ch.Daughters)),
		}
		for _, d := range ch.Daughters {
			mc.Daughters = append(mc.Daughters, table.ConjugateOrSelf(d))
		}
		mirrored.Channels = append(mirrored.Channels, mc)
	}
	if err := builder.AddBlock(mirrored); err != nil {
		return posErr(decl.Pos, err)
	}
	return nil
}
