package parser

import (
	"github.com/hepkit/decfile/internal/lexer"
	"github.com/hepkit/decfile/pkg/decay"
)

// Decl is a typed declaration produced from one or more lexical statements.
type Decl interface {
	pos() lexer.Pos
}

// AliasDecl is "Alias <name> <target>".
type AliasDecl struct {
	Name   string
	Target string
	Pos    lexer.Pos
}

// ChargeConjDecl is "ChargeConj <a> <b>".
type ChargeConjDecl struct {
	A   string
	B   string
	Pos lexer.Pos
}

// DecayDecl is a whole "Decay <particle> ... Enddecay" block with its
// channels in declaration order.
type DecayDecl struct {
	Particle string
	Channels []decay.Channel
	Pos      lexer.Pos
}

// CDecayDecl is "CDecay <particle>", a deferred conjugate-generation request.
type CDecayDecl struct {
	Particle string
	Pos      lexer.Pos
}

// DefineDecl is "Define <name> <value>".
type DefineDecl struct {
	Name  string
	Value float64
	Pos   lexer.Pos
}

// PythiaDecl is "PythiaBothParam <stream>:<param>=<value>".
type PythiaDecl struct {
	Param decay.PythiaParam
	Pos   lexer.Pos
}

// LineshapeDecl is "SetLineshapePW <mother> <d1> <d2> <L>".
type LineshapeDecl struct {
	Shape decay.Lineshape
	Pos   lexer.Pos
}

// PhotosDecl is the global "yesPhotos" / "noPhotos" flag.
type PhotosDecl struct {
	Enabled bool
	Pos     lexer.Pos
}

func (d AliasDecl) pos() lexer.Pos      { return d.Pos }
func (d ChargeConjDecl) pos() lexer.Pos { return d.Pos }
func (d DecayDecl) pos() lexer.Pos      { return d.Pos }
func (d CDecayDecl) pos() lexer.Pos     { return d.Pos }
func (d DefineDecl) pos() lexer.Pos     { return d.Pos }
func (d PythiaDecl) pos() lexer.Pos     { return d.Pos }
func (d LineshapeDecl) pos() lexer.Pos  { return d.Pos }
func (d PhotosDecl) pos() lexer.Pos     { return d.Pos }
