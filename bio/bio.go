// Package bio provides the alphabets used by the gene expression
// pipeline: DNA and RNA nucleotides, amino acids and the codon table
// translating RNA triples into amino acids.
package bio

import (
	"errors"
	"fmt"
	"strings"
)

// DNA is a DNA nucleotide, stored as its capital letter (A, C, T or G).
type DNA byte

// RNA is an RNA nucleotide, stored as its capital letter (A, C, U or G).
type RNA byte

var (
	// dnaAlphabet is ordered by the two-bit value each nucleotide
	// encodes (A=0, C=1, T=2, G=3).
	dnaAlphabet = [...]DNA{'A', 'C', 'T', 'G'}
	// rnaAlphabet follows the same order with U in place of T.
	rnaAlphabet = [...]RNA{'A', 'C', 'U', 'G'}
)

// ErrBadLetter is returned when a sequence contains a letter outside
// of the alphabet.
var ErrBadLetter = errors.New("letter outside of the alphabet")

// DNAFromBits returns a nucleotide for the two lowest bits of b.
func DNAFromBits(b byte) DNA {
	return dnaAlphabet[b&0x3]
}

// Valid tests if the nucleotide belongs to the DNA alphabet.
func (n DNA) Valid() bool {
	return n == 'A' || n == 'C' || n == 'T' || n == 'G'
}

func (n DNA) String() string {
	return string(rune(n))
}

// Valid tests if the nucleotide belongs to the RNA alphabet.
func (n RNA) Valid() bool {
	return n == 'A' || n == 'C' || n == 'U' || n == 'G'
}

func (n RNA) String() string {
	return string(rune(n))
}

// index returns position of the nucleotide in the RNA alphabet,
// or -1.
func (n RNA) index() int {
	for i, l := range rnaAlphabet {
		if l == n {
			return i
		}
	}
	return -1
}

// Transcribe converts a DNA nucleotide into RNA (T->U, others are
// unchanged).
func Transcribe(n DNA) RNA {
	if n == 'T' {
		return 'U'
	}
	return RNA(n)
}

// TranscribeAll transcribes a DNA strand.
func TranscribeAll(dna []DNA) []RNA {
	rna := make([]RNA, len(dna))
	for i, n := range dna {
		rna[i] = Transcribe(n)
	}
	return rna
}

// ParseDNA converts a string (case insensitive, spaces ignored) into
// DNA nucleotides.
func ParseDNA(s string) ([]DNA, error) {
	s = strings.ToUpper(strings.Replace(s, " ", "", -1))
	dna := make([]DNA, 0, len(s))
	for i := 0; i < len(s); i++ {
		n := DNA(s[i])
		if !n.Valid() {
			return nil, fmt.Errorf("%w: %q at %d", ErrBadLetter, s[i], i)
		}
		dna = append(dna, n)
	}
	return dna, nil
}

// ParseRNA converts a string (case insensitive, spaces ignored) into
// RNA nucleotides.
func ParseRNA(s string) ([]RNA, error) {
	s = strings.ToUpper(strings.Replace(s, " ", "", -1))
	rna := make([]RNA, 0, len(s))
	for i := 0; i < len(s); i++ {
		n := RNA(s[i])
		if !n.Valid() {
			return nil, fmt.Errorf("%w: %q at %d", ErrBadLetter, s[i], i)
		}
		rna = append(rna, n)
	}
	return rna, nil
}

// RNAString formats an RNA strand.
func RNAString(rna []RNA) string {
	var b strings.Builder
	b.Grow(len(rna))
	for _, n := range rna {
		b.WriteByte(byte(n))
	}
	return b.String()
}
