package parser

import (
	"errors"
	"reflect"
	"testing"

	"github.com/hepkit/decfile/internal/lexer"
	"github.com/hepkit/decfile/pkg/decay"
)

func scan(t *testing.T, input string) []lexer.Statement {
	t.Helper()
	statements, err := lexer.Scan(input)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	return statements
}

func parse(t *testing.T, input string) []Decl {
	t.Helper()
	decls, err := ParseStatements(scan(t, input), decay.DefaultModels())
	if err != nil {
		t.Fatalf("ParseStatements() error = %v", err)
	}
	return decls
}

func TestParseStatements_DeclarationOrder(t *testing.T) {
	decls := parse(t, `
Alias MyD0 D0
Alias Myanti-D0 anti-D0
ChargeConj MyD0 Myanti-D0
Decay MyD0
1.000 K- pi+ PHSP;
Enddecay
CDecay Myanti-D0
End
`)
	if len(decls) != 5 {
		t.Fatalf("got %d declarations, want 5", len(decls))
	}
	if _, ok := decls[0].(AliasDecl); !ok {
		t.Errorf("decls[0] = %T, want AliasDecl", decls[0])
	}
	if _, ok := decls[2].(ChargeConjDecl); !ok {
		t.Errorf("decls[2] = %T, want ChargeConjDecl", decls[2])
	}
	block, ok := decls[3].(DecayDecl)
	if !ok {
		t.Fatalf("decls[3] = %T, want DecayDecl", decls[3])
	}
	if block.Particle != "MyD0" || len(block.Channels) != 1 {
		t.Errorf("block = %+v", block)
	}
	if cd, ok := decls[4].(CDecayDecl); !ok || cd.Particle != "Myanti-D0" {
		t.Errorf("decls[4] = %+v, want CDecay Myanti-D0", decls[4])
	}
}

func TestParseStatements_EndIgnoresTrailers(t *testing.T) {
	decls := parse(t, "Alias MyD0 D0\nEnd\nthis is not even a statement\n")
	if len(decls) != 1 {
		t.Errorf("got %d declarations, want 1 (trailers after End discarded)", len(decls))
	}
}

func TestParseStatements_NestedDecay(t *testing.T) {
	_, err := ParseStatements(scan(t, "Decay D0\nDecay D+\n"), decay.DefaultModels())
	if !errors.Is(err, decay.ErrNestedDecay) {
		t.Fatalf("error = %v, want ErrNestedDecay", err)
	}
}

func TestParseStatements_UnterminatedDecay(t *testing.T) {
	for _, input := range []string{
		"Decay D0\n1.000 K- pi+ PHSP;\n",
		"Decay D0\n1.000 K- pi+ PHSP;\nEnd\n",
	} {
		_, err := ParseStatements(scan(t, input), decay.DefaultModels())
		if !errors.Is(err, decay.ErrUnterminatedDecay) {
			t.Errorf("input %q: error = %v, want ErrUnterminatedDecay", input, err)
		}
	}
}

func TestParseStatements_ChannelOutsideBlock(t *testing.T) {
	_, err := ParseStatements(scan(t, "1.000 K- pi+ PHSP;\n"), decay.DefaultModels())
	if !errors.Is(err, decay.ErrMalformedStatement) {
		t.Fatalf("error = %v, want ErrMalformedStatement", err)
	}
}

func TestParseStatements_EnddecayWithoutDecay(t *testing.T) {
	_, err := ParseStatements(scan(t, "Enddecay\n"), decay.DefaultModels())
	if !errors.Is(err, decay.ErrMalformedStatement) {
		t.Fatalf("error = %v, want ErrMalformedStatement", err)
	}
}

func TestParseChannel(t *testing.T) {
	tests := []struct {
		name string
		line string
		want decay.Channel
	}{
		{
			name: "known model, no params",
			line: "0.677 D0 pi+ VSS;",
			want: decay.Channel{BranchingFraction: 0.677, Daughters: []string{"D0", "pi+"}, Model: "VSS"},
		},
		{
			name: "known model with params",
			line: "0.0043 D*- e+ nu_e PHOTOS HQET 0.77 1.33 0.92;",
			want: decay.Channel{
				BranchingFraction: 0.0043,
				Daughters:         []string{"D*-", "e+", "nu_e"},
				Model:             "HQET",
				ModelParams:       []float64{0.77, 1.33, 0.92},
				Photos:            true,
			},
		},
		{
			name: "bare PHOTOS is itself the model",
			line: "1.000 e+ e- PHOTOS;",
			want: decay.Channel{BranchingFraction: 1, Daughters: []string{"e+", "e-"}, Model: "PHOTOS"},
		},
		{
			name: "unknown model via positional fallback",
			line: "0.5 K- pi+ MY_SPECIAL_MODEL 1.5 -2.0;",
			want: decay.Channel{
				BranchingFraction: 0.5,
				Daughters:         []string{"K-", "pi+"},
				Model:             "MY_SPECIAL_MODEL",
				ModelParams:       []float64{1.5, -2},
			},
		},
		{
			name: "zero fraction is allowed",
			line: "0.000 K- pi+ PHSP;",
			want: decay.Channel{BranchingFraction: 0, Daughters: []string{"K-", "pi+"}, Model: "PHSP"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decls := parse(t, "Decay X\n"+tt.line+"\nEnddecay\n")
			block := decls[0].(DecayDecl)
			if len(block.Channels) != 1 {
				t.Fatalf("got %d channels, want 1", len(block.Channels))
			}
			if got := block.Channels[0]; !reflect.DeepEqual(got, tt.want) {
				t.Errorf("channel = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseChannel_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"negative fraction", "-0.1 K- pi+ PHSP;", decay.ErrInvalidFraction},
		{"non-numeric fraction", "lots K- pi+ PHSP;", decay.ErrInvalidFraction},
		{"NaN fraction", "NaN K- pi+ PHSP;", decay.ErrInvalidFraction},
		{"infinite fraction", "Inf K- pi+ PHSP;", decay.ErrInvalidFraction},
		{"no daughters", "1.000 PHSP;", decay.ErrInvalidChannel},
		{"photos only daughter", "1.000 PHOTOS VLL;", decay.ErrInvalidChannel},
		{"non-numeric param", "1.000 K- pi+ PHSP extra;", decay.ErrInvalidModelParam},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStatements(scan(t, "Decay X\n"+tt.line+"\nEnddecay\n"), decay.DefaultModels())
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseStatements_Define(t *testing.T) {
	decls := parse(t, "Define dm 0.507e12\n")
	def := decls[0].(DefineDecl)
	if def.Name != "dm" || def.Value != 0.507e12 {
		t.Errorf("define = %+v", def)
	}

	_, err := ParseStatements(scan(t, "Define dm huge\n"), decay.DefaultModels())
	if !errors.Is(err, decay.ErrMalformedStatement) {
		t.Errorf("error = %v, want ErrMalformedStatement", err)
	}
}

func TestParseStatements_PythiaBothParam(t *testing.T) {
	decls := parse(t, "PythiaBothParam Init:showChangedSettings=off\n")
	p := decls[0].(PythiaDecl)
	want := decay.PythiaParam{Stream: "Init", Param: "showChangedSettings", Value: "off"}
	if p.Param != want {
		t.Errorf("param = %+v, want %+v", p.Param, want)
	}

	_, err := ParseStatements(scan(t, "PythiaBothParam nonsense\n"), decay.DefaultModels())
	if !errors.Is(err, decay.ErrMalformedStatement) {
		t.Errorf("error = %v, want ErrMalformedStatement", err)
	}
}

func TestParseStatements_SetLineshapePW(t *testing.T) {
	decls := parse(t, "SetLineshapePW MyD_1+ MyD*+ pi0 2\n")
	l := decls[0].(LineshapeDecl)
	if l.Shape.Mother != "MyD_1+" || l.Shape.Wave != 2 {
		t.Errorf("lineshape = %+v", l.Shape)
	}
	if !reflect.DeepEqual(l.Shape.Daughters, []string{"MyD*+", "pi0"}) {
		t.Errorf("daughters = %v", l.Shape.Daughters)
	}
}

func TestParseStatements_Photos(t *testing.T) {
	decls := parse(t, "yesPhotos\nnoPhotos\n")
	if on := decls[0].(PhotosDecl); !on.Enabled {
		t.Errorf("yesPhotos parsed as disabled")
	}
	if off := decls[1].(PhotosDecl); off.Enabled {
		t.Errorf("noPhotos parsed as enabled")
	}
}

func TestParseStatements_ExtendedModelTable(t *testing.T) {
	models := decay.DefaultModels()
	models.Add("MY_SPECIAL_MODEL")
	decls, err := ParseStatements(scan(t, "Decay X\n0.5 K- pi+ MY_SPECIAL_MODEL;\nEnddecay\n"), models)
	if err != nil {
		t.Fatalf("ParseStatements() error = %v", err)
	}
	channel := decls[0].(DecayDecl).Channels[0]
	if channel.Model != "MY_SPECIAL_MODEL" || len(channel.Daughters) != 2 {
		t.Errorf("channel = %+v", channel)
	}
}
