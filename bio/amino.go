package bio

import (
	"fmt"
	"strings"
)

// AminoAcid is a protein symbol, a result of a codon translation.
type AminoAcid byte

// Amino acids in the order of their numeric codes (0-19). Unknown is
// produced by the stop triples and is used as the stop marker.
const (
	A AminoAcid = iota
	R
	N
	D
	C
	Q
	E
	G
	H
	I
	L
	K
	M
	F
	P
	S
	T
	W
	Y
	V
	Unknown
)

// NAminoAcid is the number of amino acids, Unknown included.
const NAminoAcid = int(Unknown) + 1

// aaLetters maps amino acids to their one-letter names; Unknown is '*'.
const aaLetters = "ARNDCQEGHILKMFPSTWYV*"

// Code returns the numeric code of the amino acid (0-19). Unknown
// codes as 0.
func (a AminoAcid) Code() uint32 {
	if a >= Unknown {
		return 0
	}
	return uint32(a)
}

// Letter returns one-letter name of the amino acid.
func (a AminoAcid) Letter() byte {
	if int(a) >= len(aaLetters) {
		return '*'
	}
	return aaLetters[a]
}

func (a AminoAcid) String() string {
	if a == Unknown {
		return "UNKNOWN"
	}
	return string(rune(a.Letter()))
}

// AminoAcidFromLetter converts a one-letter name into an amino acid.
// Both '*' and '_' denote Unknown.
func AminoAcidFromLetter(l byte) (AminoAcid, error) {
	if l == '_' {
		return Unknown, nil
	}
	if l >= 'a' && l <= 'z' {
		l -= 'a' - 'A'
	}
	i := strings.IndexByte(aaLetters, l)
	if i < 0 {
		return Unknown, fmt.Errorf("%w: %q", ErrBadLetter, l)
	}
	return AminoAcid(i), nil
}

// ParseProtein converts a string of one-letter names (spaces ignored)
// into amino acids.
func ParseProtein(s string) ([]AminoAcid, error) {
	s = strings.Replace(s, " ", "", -1)
	aas := make([]AminoAcid, 0, len(s))
	for i := 0; i < len(s); i++ {
		aa, err := AminoAcidFromLetter(s[i])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		aas = append(aas, aa)
	}
	return aas, nil
}

// MustParseProtein is like ParseProtein but panics on error.
func MustParseProtein(s string) []AminoAcid {
	aas, err := ParseProtein(s)
	if err != nil {
		panic(err)
	}
	return aas
}

// ProteinString formats amino acids using one-letter names.
func ProteinString(aas []AminoAcid) string {
	var b strings.Builder
	b.Grow(len(aas))
	for _, aa := range aas {
		b.WriteByte(aa.Letter())
	}
	return b.String()
}

// StopRun returns a run of n Unknown symbols.
func StopRun(n int) []AminoAcid {
	run := make([]AminoAcid, n)
	for i := range run {
		run[i] = Unknown
	}
	return run
}
