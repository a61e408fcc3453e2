package decay

// Channel is a single decay mode of a particle: a branching fraction, an
// ordered list of daughter particle names, and an opaque kinematic model
// tag with its numeric parameters.
//
// Daughter order is semantically meaningful (it matches the physical
// final-state ordering in the source file) and is preserved everywhere.
type Channel struct {
	BranchingFraction float64   `json:"bf" yaml:"bf"`
	Daughters         []string  `json:"daughters" yaml:"daughters"`
	Model             string    `json:"model,omitempty" yaml:"model,omitempty"`
	ModelParams       []float64 `json:"model_params,omitempty" yaml:"model_params,omitempty"`

	// Photos reports whether the channel carries the PHOTOS marker
	// (final-state radiation), declared between the daughters and the model.
	Photos bool `json:"photos,omitempty" yaml:"photos,omitempty"`
}

// Block is the full set of channels declared for one particle, in
// declaration order. At most one Block exists per particle name.
type Block struct {
	Particle string    `json:"particle" yaml:"particle"`
	Channels []Channel `json:"channels" yaml:"channels"`

	// Generated is true for blocks materialized from a CDecay statement
	// rather than written out in the source file.
	Generated bool `json:"generated,omitempty" yaml:"generated,omitempty"`
}

// Node is the query-time view of a particle: its block joined recursively
// to the nodes of every daughter that has a registered block of its own.
type Node struct {
	Particle string        `json:"particle" yaml:"particle"`
	Channels []NodeChannel `json:"channels" yaml:"channels"`
}

// NodeChannel mirrors Channel with each daughter resolved to a Daughter,
// which carries a nested Node when the daughter decays further.
type NodeChannel struct {
	BranchingFraction float64    `json:"bf" yaml:"bf"`
	Model             string     `json:"model,omitempty" yaml:"model,omitempty"`
	ModelParams       []float64  `json:"model_params,omitempty" yaml:"model_params,omitempty"`
	Daughters         []Daughter `json:"daughters" yaml:"daughters"`
}

// Daughter is one final-state slot of a resolved channel. Node is nil for
// leaves (particles with no registered block, or cut off by a stable set
// or the depth bound).
type Daughter struct {
	Name string `json:"name" yaml:"name"`
	Node *Node  `json:"node,omitempty" yaml:"node,omitempty"`
}

// FinalState is one leaf-terminated path through a decay tree: the product
// of the branching fractions along the path and the ordered list of stable
// particles it ends in.
type FinalState struct {
	Fraction  float64  `json:"fraction" yaml:"fraction"`
	Particles []string `json:"particles" yaml:"particles"`
}

// PythiaParam is a "PythiaBothParam <stream>:<param>=<value>" generator
// setting. Value keeps the raw token: it may be a label or a number.
type PythiaParam struct {
	Stream string `json:"stream" yaml:"stream"`
	Param  string `json:"param" yaml:"param"`
	Value  string `json:"value" yaml:"value"`
}

// Lineshape is a "SetLineshapePW <mother> <d1> <d2> <L>" partial-wave
// override for a two-body channel.
type Lineshape struct {
	Mother    string   `json:"mother" yaml:"mother"`
	Daughters []string `json:"daughters" yaml:"daughters"`
	Wave      int      `json:"wave" yaml:"wave"`
}
