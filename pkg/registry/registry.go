// Package registry holds the finalized result of parsing a decay file: the
// particle -> decay-block mapping, the validation findings, and the query
// surface over them.
//
// A Registry is frozen at construction. Nothing mutates it afterwards, so
// any number of goroutines may query it concurrently without locking.
package registry

import (
	"fmt"
	"iter"

	"github.com/hepkit/decfile/pkg/decay"
)

// DefaultMaxDepth bounds chain traversals. Legitimate decay chains are
// shallow; the bound only exists to stop pathological self-reference.
const DefaultMaxDepth = 1000

// Registry is the immutable output of a successful parse.
type Registry struct {
	blocks      map[string]decay.Block
	order       []string
	findings    []decay.Finding
	definitions map[string]float64
	pythia      []decay.PythiaParam
	lineshapes  []decay.Lineshape
	photos      bool
	stable      map[string]struct{}
	maxDepth    int
}

// Particles returns the decaying particle names in declaration order.
// Generated conjugate blocks follow the declared ones.
func (r *Registry) Particles() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Block returns the decay block registered for name.
func (r *Registry) Block(name string) (decay.Block, bool) {
	b, ok := r.blocks[name]
	return b, ok
}

// NumDecays returns the number of registered decay blocks, generated
// conjugates included.
func (r *Registry) NumDecays() int { return len(r.order) }

// Findings returns the non-fatal validation findings collected during the
// build.
func (r *Registry) Findings() []decay.Finding {
	out := make([]decay.Finding, len(r.findings))
	copy(out, r.findings)
	return out
}

// Definitions returns the "Define <name> <value>" constants.
func (r *Registry) Definitions() map[string]float64 {
	out := make(map[string]float64, len(r.definitions))
	for k, v := range r.definitions {
		out[k] = v
	}
	return out
}

// PythiaParams returns the "PythiaBothParam" generator settings in
// declaration order.
func (r *Registry) PythiaParams() []decay.PythiaParam {
	out := make([]decay.PythiaParam, len(r.pythia))
	copy(out, r.pythia)
	return out
}

// Lineshapes returns the "SetLineshapePW" overrides in declaration order.
func (r *Registry) Lineshapes() []decay.Lineshape {
	out := make([]decay.Lineshape, len(r.lineshapes))
	copy(out, r.lineshapes)
	return out
}

// GlobalPhotos reports whether the file enabled final-state radiation
// globally via yesPhotos.
func (r *Registry) GlobalPhotos() bool { return r.photos }

// chainConfig collects the per-call traversal knobs.
type chainConfig struct {
	maxDepth int
	stopAt   map[string]struct{}
}

// ChainOption tunes a single ResolveChain or FinalStates call.
type ChainOption func(*chainConfig)

// MaxDepth overrides the registry's depth bound for one call.
func MaxDepth(n int) ChainOption {
	return func(c *chainConfig) { c.maxDepth = n }
}

// StopAt treats the named particles as stable for one call, cutting the
// traversal at them even when they have registered blocks.
func StopAt(names ...string) ChainOption {
	return func(c *chainConfig) {
		for _, n := range names {
			c.stopAt[n] = struct{}{}
		}
	}
}

func (r *Registry) newChainConfig(opts []ChainOption) chainConfig {
	cfg := chainConfig{
		maxDepth: r.maxDepth,
		stopAt:   make(map[string]struct{}, len(r.stable)),
	}
	for s := range r.stable {
		cfg.stopAt[s] = struct{}{}
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ResolveChain expands the decay tree rooted at root, recursing into every
// daughter that has a registered block. It fails with decay.ErrDecayNotFound
// for an unknown root and decay.ErrDepthExceeded past the depth bound.
func (r *Registry) ResolveChain(root string, opts ...ChainOption) (*decay.Node, error) {
	if _, ok := r.blocks[root]; !ok {
		return nil, fmt.Errorf("%w: %s", decay.ErrDecayNotFound, root)
	}
	cfg := r.newChainConfig(opts)
	return r.resolveNode(root, 1, cfg)
}

func (r *Registry) resolveNode(name string, depth int, cfg chainConfig) (*decay.Node, error) {
	if depth > cfg.maxDepth {
		return nil, fmt.Errorf("%w: %s at depth %d", decay.ErrDepthExceeded, name, depth)
	}
	block := r.blocks[name]
	node := &decay.Node{Particle: name, Channels: make([]decay.NodeChannel, 0, len(block.Channels))}
	for _, ch := range block.Channels {
		nc := decay.NodeChannel{
			BranchingFraction: ch.BranchingFraction,
			Model:             ch.Model,
			ModelParams:       ch.ModelParams,
			Daughters:         make([]decay.Daughter, 0, len(ch.Daughters)),
		}
		for _, d := range ch.Daughters {
			dau := decay.Daughter{Name: d}
			if _, stop := cfg.stopAt[d]; !stop {
				if _, has := r.blocks[d]; has {
					child, err := r.resolveNode(d, depth+1, cfg)
					if err != nil {
						return nil, err
					}
					dau.Node = child
				}
			}
			nc.Daughters = append(nc.Daughters, dau)
		}
		node.Channels = append(node.Channels, nc)
	}
	return node, nil
}

// FinalStates enumerates the leaf-terminated paths of the decay tree rooted
// at root, depth-first in declared channel order, multiplying branching
// fractions along each path. The returned sequence is restartable: every
// range over it restarts the traversal. A traversal error (depth bound) is
// yielded as the second value and terminates the sequence.
func (r *Registry) FinalStates(root string, opts ...ChainOption) (iter.Seq2[decay.FinalState, error], error) {
	if _, ok := r.blocks[root]; !ok {
		return nil, fmt.Errorf("%w: %s", decay.ErrDecayNotFound, root)
	}
	cfg := r.newChainConfig(opts)
	seq := func(yield func(decay.FinalState, error) bool) {
		emit := func(frac float64, particles []string) bool {
			fs := decay.FinalState{Fraction: frac, Particles: make([]string, len(particles))}
			copy(fs.Particles, particles)
			return yield(fs, nil)
		}
		if _, err := r.expandParticle(root, 1, cfg, emit); err != nil {
			yield(decay.FinalState{}, err)
		}
	}
	return seq, nil
}

// expandParticle emits every (fraction, particle list) outcome of name.
// Stable or undecaying particles emit themselves with fraction 1. The
// returned bool is false when the consumer stopped the iteration.
func (r *Registry) expandParticle(name string, depth int, cfg chainConfig, emit func(float64, []string) bool) (bool, error) {
	if _, stop := cfg.stopAt[name]; stop {
		return emit(1, []string{name}), nil
	}
	block, ok := r.blocks[name]
	if !ok {
		return emit(1, []string{name}), nil
	}
	if depth > cfg.maxDepth {
		return false, fmt.Errorf("%w: %s at depth %d", decay.ErrDepthExceeded, name, depth)
	}
	for _, ch := range block.Channels {
		frac := ch.BranchingFraction
		cont, err := r.expandList(ch.Daughters, depth, cfg, func(f float64, ps []string) bool {
			return emit(frac*f, ps)
		})
		if err != nil {
			return false, err
		}
		if !cont {
			return false, nil
		}
	}
	return true, nil
}

// expandList emits the cartesian expansion of an ordered daughter list,
// preserving daughter order within each outcome.
func (r *Registry) expandList(names []string, depth int, cfg chainConfig, emit func(float64, []string) bool) (bool, error) {
	if len(names) == 0 {
		return emit(1, nil), nil
	}
	var tailErr error
	cont, err := r.expandParticle(names[0], depth+1, cfg, func(headFrac float64, head []string) bool {
		tailCont, err := r.expandList(names[1:], depth, cfg, func(tailFrac float64, tail []string) bool {
			combined := make([]string, 0, len(head)+len(tail))
			combined = append(combined, head...)
			combined = append(combined, tail...)
			return emit(headFrac*tailFrac, combined)
		})
		if err != nil {
			tailErr = err
			return false
		}
		return tailCont
	})
	if tailErr != nil {
		return false, tailErr
	}
	return cont, err
}
