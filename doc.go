/*
Package decfile compiles textual particle decay descriptions (.dec files)
into a canonical, queryable decay-tree representation for physics analysis
tooling.

The grammar is context-sensitive: a name's meaning depends on the Alias and
ChargeConj statements seen before it, and a CDecay statement mirrors a block
declared elsewhere in the file. The compiler therefore works in two passes —
collect every declaration first, then materialize charge-conjugate blocks
and validate — so declaration order between a CDecay and its sources never
matters.

# Grammar

A decay file is a sequence of statements. Comments run from '#' to end of
line. Declarations end at the newline; channel statements end at ';' and may
span lines:

	Alias       MyD0        D0
	Alias       MyAnti-D0   anti-D0
	ChargeConj  MyD0        MyAnti-D0

	Decay MyD0
	  1.000  K-  pi+  PHSP;
	Enddecay
	CDecay MyAnti-D0

	End

# Usage

Parse a file and query the frozen registry:

	reg, err := decfile.ParseFile("Bd2DstDst.dec")
	if err != nil {
		log.Fatal(err)
	}

	for _, f := range reg.Findings() {
		log.Println(f)
	}

	node, err := reg.ResolveChain("MyD0")
	if err != nil {
		log.Fatal(err)
	}

	states, _ := reg.FinalStates("MyD0")
	for fs, err := range states {
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%.4f  %v\n", fs.Fraction, fs.Particles)
	}

A Registry is immutable once built, so it may be queried concurrently from
any number of goroutines without locking.
*/
package decfile
