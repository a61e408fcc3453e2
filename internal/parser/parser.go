// Package parser converts lexical statements into typed declarations and
// assembles them into a frozen decay registry in two passes: pass 1 collects
// every declaration in file order, pass 2 materializes CDecay requests and
// runs validation. Names may therefore be charge-conjugated or aliased
// anywhere in the file before the block that uses them appears.
package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hepkit/decfile/internal/lexer"
	"github.com/hepkit/decfile/pkg/decay"
)

// ParseStatements converts statements into declarations. It owns the
// block-structure errors (nested or unterminated Decay) and the channel
// grammar; models is the reserved model-name table used to split daughters
// from the model tag.
func ParseStatements(statements []lexer.Statement, models decay.ModelSet) ([]Decl, error) {
	var (
		decls []Decl
		open  *DecayDecl
	)

	for _, stmt := range statements {
		switch stmt.Keyword() {
		case "Alias":
			if err := requireTokens(stmt, 3); err != nil {
				return nil, err
			}
			decls = append(decls, AliasDecl{
				Name:   stmt.Tokens[1].Text,
				Target: stmt.Tokens[2].Text,
				Pos:    stmt.Pos(),
			})

		case "ChargeConj":
			if err := requireTokens(stmt, 3); err != nil {
				return nil, err
			}
			decls = append(decls, ChargeConjDecl{
				A:   stmt.Tokens[1].Text,
				B:   stmt.Tokens[2].Text,
				Pos: stmt.Pos(),
			})

		case "Decay":
			if open != nil {
				return nil, posErr(stmt.Pos(), fmt.Errorf("%w: Decay %s while Decay %s is still open",
					decay.ErrNestedDecay, tokenText(stmt, 1), open.Particle))
			}
			if err := requireTokens(stmt, 2); err != nil {
				return nil, err
			}
			open = &DecayDecl{Particle: stmt.Tokens[1].Text, Pos: stmt.Pos()}

		case "Enddecay":
			if open == nil {
				return nil, posErr(stmt.Pos(), fmt.Errorf("%w: Enddecay without open Decay block",
					decay.ErrMalformedStatement))
			}
			decls = append(decls, *open)
			open = nil

		case "CDecay":
			if err := requireTokens(stmt, 2); err != nil {
				return nil, err
			}
			decls = append(decls, CDecayDecl{Particle: stmt.Tokens[1].Text, Pos: stmt.Pos()})

		case "End":
			// Logical end of file; trailing statements are commentary.
			if open != nil {
				return nil, posErr(stmt.Pos(), fmt.Errorf("%w: Decay %s",
					decay.ErrUnterminatedDecay, open.Particle))
			}
			return decls, nil

		case "Define":
			if err := requireTokens(stmt, 3); err != nil {
				return nil, err
			}
			value, err := strconv.ParseFloat(stmt.Tokens[2].Text, 64)
			if err != nil {
				return nil, posErr(stmt.Tokens[2].Pos, fmt.Errorf("%w: Define %s value %q",
					decay.ErrMalformedStatement, stmt.Tokens[1].Text, stmt.Tokens[2].Text))
			}
			decls = append(decls, DefineDecl{Name: stmt.Tokens[1].Text, Value: value, Pos: stmt.Pos()})

		case "PythiaBothParam":
			if err := requireTokens(stmt, 2); err != nil {
				return nil, err
			}
			param, err := parsePythiaParam(stmt.Tokens[1])
			if err != nil {
				return nil, err
			}
			decls = append(decls, PythiaDecl{Param: param, Pos: stmt.Pos()})

		case "SetLineshapePW":
			if err := requireTokens(stmt, 5); err != nil {
				return nil, err
			}
			wave, err := strconv.Atoi(stmt.Tokens[4].Text)
			if err != nil {
				return nil, posErr(stmt.Tokens[4].Pos, fmt.Errorf("%w: SetLineshapePW wave %q",
					decay.ErrMalformedStatement, stmt.Tokens[4].Text))
			}
			decls = append(decls, LineshapeDecl{
				Shape: decay.Lineshape{
					Mother:    stmt.Tokens[1].Text,
					Daughters: []string{stmt.Tokens[2].Text, stmt.Tokens[3].Text},
					Wave:      wave,
				},
				Pos: stmt.Pos(),
			})

		case "yesPhotos", "noPhotos":
			decls = append(decls, PhotosDecl{Enabled: stmt.Keyword() == "yesPhotos", Pos: stmt.Pos()})

		default:
			// Anything else is a channel statement and only makes sense
			// inside an open Decay block.
			if open == nil {
				return nil, posErr(stmt.Pos(), fmt.Errorf("%w: channel outside Decay block",
					decay.ErrMalformedStatement))
			}
			channel, err := parseChannel(stmt, models)
			if err != nil {
				return nil, err
			}
			open.Channels = append(open.Channels, channel)
		}
	}

	if open != nil {
		return nil, posErr(open.Pos, fmt.Errorf("%w: Decay %s", decay.ErrUnterminatedDecay, open.Particle))
	}
	return decls, nil
}

// parseChannel splits "fraction daughter... [PHOTOS] model [params...]".
// The model is located through the reserved-name table; when no token
// matches, the positional fallback applies: the trailing run of numeric
// tokens are the parameters and the token right before them is the model.
func parseChannel(stmt lexer.Statement, models decay.ModelSet) (decay.Channel, error) {
	tokens := stmt.Tokens
	// ParseFloat also accepts "NaN" and "Inf" literals; neither is a valid
	// branching fraction, and NaN would slip past the over-unity check.
	fraction, err := strconv.ParseFloat(tokens[0].Text, 64)
	if err != nil || math.IsNaN(fraction) || math.IsInf(fraction, 0) || fraction < 0 {
		return decay.Channel{}, posErr(tokens[0].Pos, fmt.Errorf("%w: %q",
			decay.ErrInvalidFraction, tokens[0].Text))
	}

	rest := tokens[1:]
	modelIdx := -1
	photos := false
	for i, tok := range rest {
		if !models.Contains(tok.Text) {
			continue
		}
		// A PHOTOS marker decorates the channel when a real model follows;
		// bare PHOTOS is itself a valid model.
		if tok.Text == "PHOTOS" && followedByModel(rest[i+1:], models) {
			photos = true
			continue
		}
		modelIdx = i
		break
	}
	if modelIdx == -1 {
		modelIdx = fallbackModelIndex(rest)
		if modelIdx < 1 {
			return decay.Channel{}, posErr(stmt.Pos(), fmt.Errorf("%w: cannot locate model name in %q",
				decay.ErrInvalidChannel, statementText(stmt)))
		}
	}
	if modelIdx == 0 || (modelIdx == 1 && photos) {
		return decay.Channel{}, posErr(stmt.Pos(), fmt.Errorf("%w: no daughters in %q",
			decay.ErrInvalidChannel, statementText(stmt)))
	}

	channel := decay.Channel{
		BranchingFraction: fraction,
		Model:             rest[modelIdx].Text,
		Photos:            photos,
	}
	for _, tok := range rest[:modelIdx] {
		if photos && tok.Text == "PHOTOS" {
			continue
		}
		channel.Daughters = append(channel.Daughters, tok.Text)
	}
	for _, tok := range rest[modelIdx+1:] {
		param, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return decay.Channel{}, posErr(tok.Pos, fmt.Errorf("%w: %q",
				decay.ErrInvalidModelParam, tok.Text))
		}
		channel.ModelParams = append(channel.ModelParams, param)
	}
	return channel, nil
}

func followedByModel(tokens []lexer.Token, models decay.ModelSet) bool {
	for _, tok := range tokens {
		if models.Contains(tok.Text) {
			return true
		}
	}
	return false
}

// fallbackModelIndex implements the positional rule for unknown models:
// skip the trailing numeric parameters, take the token before them. Returns
// -1 when the statement has no such token.
func fallbackModelIndex(tokens []lexer.Token) int {
	i := len(tokens)
	for i > 0 {
		if _, err := strconv.ParseFloat(tokens[i-1].Text, 64); err != nil {
			break
		}
		i--
	}
	return i - 1
}

func parsePythiaParam(tok lexer.Token) (decay.PythiaParam, error) {
	stream, rest, ok := strings.Cut(tok.Text, ":")
	if !ok {
		return decay.PythiaParam{}, posErr(tok.Pos, fmt.Errorf("%w: PythiaBothParam %q",
			decay.ErrMalformedStatement, tok.Text))
	}
	name, value, ok := strings.Cut(rest, "=")
	if !ok {
		return decay.PythiaParam{}, posErr(tok.Pos, fmt.Errorf("%w: PythiaBothParam %q",
			decay.ErrMalformedStatement, tok.Text))
	}
	return decay.PythiaParam{Stream: stream, Param: name, Value: value}, nil
}

func requireTokens(stmt lexer.Statement, n int) error {
	if len(stmt.Tokens) != n {
		return posErr(stmt.Pos(), fmt.Errorf("%w: %s expects %d tokens, got %d",
			decay.ErrMalformedStatement, stmt.Keyword(), n, len(stmt.Tokens)))
	}
	return nil
}

func tokenText(stmt lexer.Statement, i int) string {
	if i >= len(stmt.Tokens) {
		return "?"
	}
	return stmt.Tokens[i].Text
}

func statementText(stmt lexer.Statement) string {
	words := make([]string, 0, len(stmt.Tokens))
	for _, t := range stmt.Tokens {
		words = append(words, t.Text)
	}
	return strings.Join(words, " ")
}

func posErr(p lexer.Pos, err error) error {
	return &decay.ParseError{Line: p.Line, Col: p.Col, Err: err}
}
