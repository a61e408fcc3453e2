// Package lexer turns raw decay-file text into statement-scoped token
// sequences.
//
// Two termination rules coexist in the grammar: declaration statements
// (Alias, ChargeConj, Decay, ...) end at the newline, while channel
// statements inside a Decay block end at ';' and may span several lines.
// The lexer buffers tokens until the applicable terminator is seen, so the
// parser only ever sees whole statements.
package lexer

import (
	"fmt"
	"strings"

	"github.com/hepkit/decfile/pkg/decay"
)

// Pos is a 1-based source position.
type Pos struct {
	Line int
	Col  int
}

// Token is a single whitespace-delimited word with its position.
type Token struct {
	Text string
	Pos  Pos
}

// Statement is one logical statement: a declaration line or a ';'-terminated
// channel.
type Statement struct {
	Tokens []Token
}

// Keyword returns the first token's text, or "".
func (s Statement) Keyword() string {
	if len(s.Tokens) == 0 {
		return ""
	}
	return s.Tokens[0].Text
}

// Pos returns the statement's starting position.
func (s Statement) Pos() Pos {
	if len(s.Tokens) == 0 {
		return Pos{}
	}
	return s.Tokens[0].Pos
}

// declarationKeywords are the statement openers terminated by end-of-line.
// Any statement opening with another token is a channel and must be closed
// by ';'.
var declarationKeywords = map[string]struct{}{
	"Alias":           {},
	"ChargeConj":      {},
	"Decay":           {},
	"Enddecay":        {},
	"CDecay":          {},
	"End":             {},
	"Define":          {},
	"PythiaBothParam": {},
	"SetLineshapePW":  {},
	"yesPhotos":       {},
	"noPhotos":        {},
}

// IsDeclarationKeyword reports whether word opens an end-of-line-terminated
// statement.
func IsDeclarationKeyword(word string) bool {
	_, ok := declarationKeywords[word]
	return ok
}

// item kinds emitted by the low-level scanner.
const (
	itemToken = iota
	itemEOL
	itemSemi
	itemEOF
)

type item struct {
	kind int
	tok  Token
	pos  Pos
}

type scanner struct {
	input string
	pos   int
	line  int
	col   int
}

func newScanner(input string) *scanner {
	return &scanner{input: input, line: 1, col: 1}
}

func (s *scanner) next() item {
	for s.pos < len(s.input) {
		c := s.input[s.pos]
		switch {
		case c == '\n':
			p := Pos{s.line, s.col}
			s.advance()
			return item{kind: itemEOL, pos: p}
		case c == ' ' || c == '\t' || c == '\r':
			s.advance()
		case c == '#':
			// Comment runs to end of line; the newline itself is kept.
			for s.pos < len(s.input) && s.input[s.pos] != '\n' {
				s.advance()
			}
		case c == ';':
			p := Pos{s.line, s.col}
			s.advance()
			return item{kind: itemSemi, pos: p}
		default:
			start := s.pos
			p := Pos{s.line, s.col}
			for s.pos < len(s.input) && !isDelimiter(s.input[s.pos]) {
				s.advance()
			}
			return item{kind: itemToken, tok: Token{Text: s.input[start:s.pos], Pos: p}, pos: p}
		}
	}
	return item{kind: itemEOF, pos: Pos{s.line, s.col}}
}

func (s *scanner) advance() {
	if s.input[s.pos] == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.pos++
}

func isDelimiter(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == ';' || c == '#'
}

// Scan tokenizes input into logical statements. Scanning stops at an "End"
// statement: anything after it is trailing commentary and never reaches the
// parser. It fails with a decay.ParseError wrapping
// decay.ErrUnterminatedChannel when a channel statement is not closed by ';'
// before the enclosing block or the input ends.
func Scan(input string) ([]Statement, error) {
	sc := newScanner(input)
	var (
		statements []Statement
		current    []Token
		inChannel  bool
	)

	// flush closes the buffered statement and returns its keyword.
	flush := func() string {
		if len(current) == 0 {
			return ""
		}
		statements = append(statements, Statement{Tokens: current})
		keyword := current[0].Text
		current = nil
		return keyword
	}

	for {
		it := sc.next()
		switch it.kind {
		case itemToken:
			if inChannel && IsDeclarationKeyword(it.tok.Text) {
				return nil, unterminated(current, it.pos)
			}
			if len(current) == 0 {
				inChannel = !IsDeclarationKeyword(it.tok.Text)
			}
			current = append(current, it.tok)

		case itemEOL:
			// A channel statement continues across line breaks until ';'.
			if !inChannel && flush() == "End" {
				return statements, nil
			}

		case itemSemi:
			if !inChannel {
				// A stray ';' after a declaration closes nothing; tolerate
				// it the way production files expect (e.g. "Enddecay;").
				if flush() == "End" {
					return statements, nil
				}
				continue
			}
			flush()
			inChannel = false

		case itemEOF:
			if inChannel {
				return nil, unterminated(current, it.pos)
			}
			flush()
			return statements, nil
		}
	}
}

func unterminated(current []Token, at Pos) error {
	context := ""
	if len(current) > 0 {
		words := make([]string, 0, len(current))
		for _, t := range current {
			words = append(words, t.Text)
		}
		context = fmt.Sprintf(" (statement %q)", strings.Join(words, " "))
	}
	return &decay.ParseError{
		Line: at.Line,
		Col:  at.Col,
		Err:  fmt.Errorf("%w%s", decay.ErrUnterminatedChannel, context),
	}
}
