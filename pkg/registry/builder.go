package registry

import (
	"fmt"

	"github.com/hepkit/decfile/pkg/decay"
)

// Builder accumulates the parse output and is consumed by Freeze. It is not
// safe for concurrent use; parsing is strictly sequential anyway.
type Builder struct {
	blocks      map[string]decay.Block
	order       []string
	findings    []decay.Finding
	definitions map[string]float64
	pythia      []decay.PythiaParam
	lineshapes  []decay.Lineshape
	photos      bool
	photosSet   bool
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		blocks:      make(map[string]decay.Block),
		definitions: make(map[string]float64),
	}
}

// AddBlock registers a decay block. A second block for the same particle is
// a hard error (decay.ErrDuplicateDecay).
func (b *Builder) AddBlock(block decay.Block) error {
	if _, exists := b.blocks[block.Particle]; exists {
		return fmt.Errorf("%w: %s", decay.ErrDuplicateDecay, block.Particle)
	}
	b.blocks[block.Particle] = block
	b.order = append(b.order, block.Particle)
	return nil
}

// HasBlock reports whether a block is already registered for name.
func (b *Builder) HasBlock(name string) bool {
	_, ok := b.blocks[name]
	return ok
}

// Block returns a registered block.
func (b *Builder) Block(name string) (decay.Block, bool) {
	blk, ok := b.blocks[name]
	return blk, ok
}

// Blocks returns the registered blocks in declaration order.
func (b *Builder) Blocks() []decay.Block {
	out := make([]decay.Block, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.blocks[name])
	}
	return out
}

// SetDefinition records a Define constant, reporting whether it replaced an
// earlier value.
func (b *Builder) SetDefinition(name string, value float64) bool {
	_, replaced := b.definitions[name]
	b.definitions[name] = value
	return replaced
}

// AddPythiaParam records a PythiaBothParam setting.
func (b *Builder) AddPythiaParam(p decay.PythiaParam) {
	b.pythia = append(b.pythia, p)
}

// AddLineshape records a SetLineshapePW override.
func (b *Builder) AddLineshape(l decay.Lineshape) {
	b.lineshapes = append(b.lineshapes, l)
}

// SetPhotos records the global photos flag, reporting whether it was
// already set.
func (b *Builder) SetPhotos(enabled bool) bool {
	wasSet := b.photosSet
	b.photos = enabled
	b.photosSet = true
	return wasSet
}

// AddFinding appends a validation finding.
func (b *Builder) AddFinding(f decay.Finding) {
	b.findings = append(b.findings, f)
}

// Freeze seals the builder into an immutable Registry. stable names the
// particles treated as leaves by default traversals; maxDepth <= 0 selects
// DefaultMaxDepth. The builder must not be used afterwards.
func (b *Builder) Freeze(stable []string, maxDepth int) *Registry {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	stableSet := make(map[string]struct{}, len(stable))
	for _, s := range stable {
		stableSet[s] = struct{}{}
	}
	return &Registry{
		blocks:      b.blocks,
		order:       b.order,
		findings:    b.findings,
		definitions: b.definitions,
		pythia:      b.pythia,
		lineshapes:  b.lineshapes,
		photos:      b.photos,
		stable:      stableSet,
		maxDepth:    maxDepth,
	}
}
