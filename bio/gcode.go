package bio

// geneticCode is indexed by 16*first + 4*second + third, where
// nucleotides are numbered A=0, C=1, U=2, G=3. This table is not the
// standard genetic code; promoter headers depend on its exact values.
var geneticCode = [64]AminoAcid{
	// AA*
	A, A, Unknown, A,
	// AC*
	R, R, R, N,
	// AU*
	N, N, Unknown, D,
	// AG*
	D, D, C, C,
	// CA*
	C, Q, Q, Q,
	// CC*
	E, E, E, G,
	// CU*
	G, G, H, H,
	// CG*
	H, I, I, I,
	// UA*
	L, L, L, K,
	// UC*
	K, K, M, M,
	// UU*
	Unknown, M, Unknown, F,
	// UG*
	F, F, P, P,
	// GA*
	P, S, S, S,
	// GC*
	T, T, T, W,
	// GU*
	W, W, Y, Y,
	// GG*
	Y, V, V, V,
}

// Translate translates an RNA triple into an amino acid. Triples
// containing letters outside of the RNA alphabet translate to Unknown.
func Translate(triple [3]RNA) AminoAcid {
	i0, i1, i2 := triple[0].index(), triple[1].index(), triple[2].index()
	if i0 < 0 || i1 < 0 || i2 < 0 {
		return Unknown
	}
	return geneticCode[16*i0+4*i1+i2]
}

// TranslateDNA transcribes and translates a DNA triple.
func TranslateDNA(triple [3]DNA) AminoAcid {
	return Translate([3]RNA{
		Transcribe(triple[0]),
		Transcribe(triple[1]),
		Transcribe(triple[2]),
	})
}

// IsStopCodon tests if the RNA triple translates to Unknown.
func IsStopCodon(triple [3]RNA) bool {
	return Translate(triple) == Unknown
}
