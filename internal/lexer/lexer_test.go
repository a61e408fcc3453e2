package lexer

import (
	"errors"
	"testing"

	"github.com/hepkit/decfile/pkg/decay"
)

func texts(s Statement) []string {
	out := make([]string, 0, len(s.Tokens))
	for _, t := range s.Tokens {
		out = append(out, t.Text)
	}
	return out
}

func TestScan_DeclarationsAndComments(t *testing.T) {
	input := "# header comment\n" +
		"Alias MyD0 D0   # trailing comment\n" +
		"\n" +
		"ChargeConj MyD0 Myanti-D0\n"

	statements, err := Scan(input)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(statements) != 2 {
		t.Fatalf("Scan() = %d statements, want 2", len(statements))
	}
	if got := texts(statements[0]); got[0] != "Alias" || got[1] != "MyD0" || got[2] != "D0" {
		t.Errorf("statement 0 = %v", got)
	}
	if statements[0].Pos().Line != 2 {
		t.Errorf("statement 0 line = %d, want 2", statements[0].Pos().Line)
	}
}

func TestScan_ChannelSpansLines(t *testing.T) {
	input := "Decay B_s0\n" +
		"  1.000 K+ K-\n" +
		"        SSD_CP 20.e12 0.1 1.0 0.04\n" +
		"        9.6 -0.8 8.4 -0.6;\n" +
		"Enddecay\n"

	statements, err := Scan(input)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	// Decay, channel, Enddecay
	if len(statements) != 3 {
		t.Fatalf("Scan() = %d statements, want 3", len(statements))
	}
	channel := texts(statements[1])
	if len(channel) != 12 {
		t.Fatalf("channel token count = %d, want 12 (%v)", len(channel), channel)
	}
	if channel[0] != "1.000" || channel[3] != "SSD_CP" || channel[11] != "-0.6" {
		t.Errorf("channel tokens = %v", channel)
	}
}

func TestScan_SemicolonAttachedToToken(t *testing.T) {
	statements, err := Scan("Decay D0\n1.000 K- pi+ PHSP;\nEnddecay\n")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	channel := texts(statements[1])
	if channel[len(channel)-1] != "PHSP" {
		t.Errorf("last channel token = %q, want PHSP", channel[len(channel)-1])
	}
}

func TestScan_UnterminatedChannelBeforeEnddecay(t *testing.T) {
	_, err := Scan("Decay D0\n1.000 K- pi+ PHSP\nEnddecay\n")
	if !errors.Is(err, decay.ErrUnterminatedChannel) {
		t.Fatalf("Scan() error = %v, want ErrUnterminatedChannel", err)
	}
	var perr *decay.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error should carry a position, got %T", err)
	}
	if perr.Line != 3 {
		t.Errorf("error line = %d, want 3 (at Enddecay)", perr.Line)
	}
}

func TestScan_UnterminatedChannelAtEOF(t *testing.T) {
	_, err := Scan("Decay D0\n1.000 K- pi+ PHSP")
	if !errors.Is(err, decay.ErrUnterminatedChannel) {
		t.Fatalf("Scan() error = %v, want ErrUnterminatedChannel", err)
	}
}

func TestScan_StraySemicolonAfterDeclaration(t *testing.T) {
	statements, err := Scan("Enddecay;\nEnd\n")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(statements) != 2 {
		t.Fatalf("Scan() = %d statements, want 2", len(statements))
	}
}

func TestScan_EndStopsScanning(t *testing.T) {
	statements, err := Scan("Alias MyD0 D0\nEnd\nthis is not even a statement\n")
	if err != nil {
		t.Fatalf("Scan() error = %v, trailers after End must be tolerated", err)
	}
	if len(statements) != 2 {
		t.Fatalf("Scan() = %d statements, want 2 (Alias and End)", len(statements))
	}
	if statements[1].Keyword() != "End" {
		t.Errorf("last statement = %q, want End", statements[1].Keyword())
	}
}

func TestScan_EndWithStraySemicolon(t *testing.T) {
	statements, err := Scan("End;\nleftover text without terminator")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(statements) != 1 || statements[0].Keyword() != "End" {
		t.Fatalf("statements = %v, want a single End", statements)
	}
}

func TestScan_Empty(t *testing.T) {
	statements, err := Scan("# only comments\n\n   \n")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(statements) != 0 {
		t.Errorf("Scan() = %d statements, want 0", len(statements))
	}
}
