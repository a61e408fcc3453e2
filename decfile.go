package decfile

import (
	"io"
	"log/slog"
	"os"

	"github.com/hepkit/decfile/internal/lexer"
	"github.com/hepkit/decfile/internal/parser"
	"github.com/hepkit/decfile/internal/validator"
	"github.com/hepkit/decfile/pkg/decay"
	"github.com/hepkit/decfile/pkg/particle"
	"github.com/hepkit/decfile/pkg/registry"
)

// Parser compiles decay-file text into a frozen, queryable Registry.
// A Parser is cheap to construct and reusable; each Parse call is
// independent and produces its own registry.
type Parser struct {
	lookup         particle.Lookup
	models         decay.ModelSet
	tolerance      float64
	maxDepth       int
	stable         []string
	skipConjugates bool
	logger         *slog.Logger
}

// Option defines a functional option for configuring the Parser.
type Option func(*Parser)

// WithLookup injects a custom particle-property lookup, replacing the
// built-in table.
func WithLookup(l particle.Lookup) Option {
	return func(p *Parser) { p.lookup = l }
}

// WithModels registers extra decay-model names on top of the built-in set.
func WithModels(names ...string) Option {
	return func(p *Parser) { p.models.Add(names...) }
}

// WithTolerance sets the epsilon over 1.0 allowed for branching-fraction
// sums before an over-unity finding is raised.
func WithTolerance(eps float64) Option {
	return func(p *Parser) { p.tolerance = eps }
}

// WithMaxDepth sets the traversal depth bound for queries on the resulting
// registry (default registry.DefaultMaxDepth).
func WithMaxDepth(n int) Option {
	return func(p *Parser) { p.maxDepth = n }
}

// WithStableParticles replaces the default stable set: these particles are
// treated as leaves by chain traversals and never reported as unresolved.
func WithStableParticles(names ...string) Option {
	return func(p *Parser) { p.stable = names }
}

// WithoutConjugates skips CDecay materialization. The registry then only
// contains the blocks written out in the file.
func WithoutConjugates() Option {
	return func(p *Parser) { p.skipConjugates = true }
}

// WithLogger sets a custom structured logger for the parser.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) { p.logger = logger }
}

// New returns a Parser with the built-in particle lookup, model table,
// stable set and a discard logger.
func New(opts ...Option) *Parser {
	p := &Parser{
		lookup:    particle.NewStandardLookup(),
		models:    decay.DefaultModels(),
		tolerance: validator.DefaultTolerance,
		maxDepth:  registry.DefaultMaxDepth,
		stable:    particle.StableDefaults(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return p
}

// Parse compiles input into a registry. The build is atomic: either a fully
// resolved, validated registry (plus findings) is returned, or an error and
// no registry. Errors carry the source position via *decay.ParseError.
func (p *Parser) Parse(input string) (*registry.Registry, error) {
	statements, err := lexer.Scan(input)
	if err != nil {
		return nil, err
	}
	decls, err := parser.ParseStatements(statements, p.models)
	if err != nil {
		return nil, err
	}
	return parser.Assemble(decls, parser.Options{
		Lookup:         p.lookup,
		Tolerance:      p.tolerance,
		MaxDepth:       p.maxDepth,
		Stable:         p.stable,
		SkipConjugates: p.skipConjugates,
		Logger:         p.logger,
	})
}

// ParseFile reads path and compiles its contents.
func (p *Parser) ParseFile(path string) (*registry.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return p.Parse(string(data))
}

// Parse compiles input with a default Parser.
func Parse(input string) (*registry.Registry, error) {
	return New().Parse(input)
}

// ParseFile reads and compiles a decay file with a default Parser.
func ParseFile(path string) (*registry.Registry, error) {
	return New().ParseFile(path)
}
