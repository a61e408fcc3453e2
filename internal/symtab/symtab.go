// Package symtab holds the name resolution state of a single parse: the
// alias map and the explicit charge-conjugate pairs, backed by the particle
// lookup collaborator for everything the file does not declare itself.
package symtab

import (
	"fmt"

	"github.com/hepkit/decfile/pkg/decay"
	"github.com/hepkit/decfile/pkg/particle"
)

// Table is populated during pass 1 and read-only afterwards. Registrations
// are write-once per name: re-registering the identical value is a no-op,
// a conflicting value is an error.
type Table struct {
	aliases map[string]string
	conj    map[string]string
	lookup  particle.Lookup
}

// New returns an empty table backed by the given particle lookup.
func New(lookup particle.Lookup) *Table {
	return &Table{
		aliases: make(map[string]string),
		conj:    make(map[string]string),
		lookup:  lookup,
	}
}

// AddAlias registers "Alias name target". Aliasing is one level deep: the
// target is stored verbatim even if it happens to be an alias itself.
func (t *Table) AddAlias(name, target string) error {
	if existing, ok := t.aliases[name]; ok {
		if existing == target {
			return nil
		}
		return fmt.Errorf("%w: %s already aliased to %s", decay.ErrDuplicateAlias, name, existing)
	}
	t.aliases[name] = target
	return nil
}

// Resolve maps an alias to its canonical particle name, or returns the name
// unchanged if it is not an alias.
func (t *Table) Resolve(name string) string {
	if target, ok := t.aliases[name]; ok {
		return target
	}
	return name
}

// IsAlias reports whether name was introduced by an Alias statement.
func (t *Table) IsAlias(name string) bool {
	_, ok := t.aliases[name]
	return ok
}

// AddConjugate registers "ChargeConj a b" symmetrically.
func (t *Table) AddConjugate(a, b string) error {
	pair := [2]string{a, b}
	for i := 0; i < 2; i++ {
		name, partner := pair[i], pair[1-i]
		if existing, ok := t.conj[name]; ok && existing != partner {
			return fmt.Errorf("%w: %s already paired with %s", decay.ErrConflictingConjugate, name, existing)
		}
	}
	t.conj[a] = b
	t.conj[b] = a
	return nil
}

// Conjugate resolves the charge conjugate of name. Explicit pairs win —
// consulted under the raw name first, then under its alias-resolved
// canonical — then the self-conjugate set, then the particle lookup. It
// fails with decay.ErrNoConjugate when all sources come up empty.
func (t *Table) Conjugate(name string) (string, error) {
	if partner, ok := t.conj[name]; ok {
		return partner, nil
	}
	canonical := t.Resolve(name)
	if partner, ok := t.conj[canonical]; ok {
		return partner, nil
	}
	if t.lookup.IsSelfConjugate(canonical) {
		return name, nil
	}
	if ap, ok := t.lookup.Antiparticle(canonical); ok {
		return ap, nil
	}
	return "", fmt.Errorf("%w: %s", decay.ErrNoConjugate, name)
}

// ConjugateOrSelf is the daughter-substitution policy of conjugate block
// generation: a daughter without a resolvable conjugate keeps its name.
func (t *Table) ConjugateOrSelf(name string) string {
	if partner, err := t.Conjugate(name); err == nil {
		return partner
	}
	return name
}
