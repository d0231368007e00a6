// Package codon works with RNA strands at the codon level: it
// enumerates codons, splits strands into reading frames and translates
// them into amino acid strands.
package codon

import (
	"fmt"

	"bitbucket.org/Davydov/ribo/bio"
)

// NCodon is the number of distinct RNA triples.
const NCodon = 64

var alphabet = [...]bio.RNA{'A', 'C', 'U', 'G'}

// Codon is an RNA triple.
type Codon [3]bio.RNA

func (c Codon) String() string {
	return bio.RNAString(c[:])
}

// Translate translates the codon using the codon table.
func (c Codon) Translate() bio.AminoAcid {
	return bio.Translate(c)
}

// Num returns the codon number (0-63), or -1 for codons with letters
// outside of the RNA alphabet.
func (c Codon) Num() int {
	num := 0
	for _, n := range c {
		i := -1
		for j, l := range alphabet {
			if l == n {
				i = j
				break
			}
		}
		if i < 0 {
			return -1
		}
		num = num*4 + i
	}
	return num
}

// FromNum returns a codon by its number.
func FromNum(num int) (Codon, error) {
	if num < 0 || num >= NCodon {
		return Codon{}, fmt.Errorf("codon number out of range: %d", num)
	}
	return Codon{alphabet[num/16], alphabet[num/4%4], alphabet[num%4]}, nil
}

// All returns every codon (64), ordered by codon number.
func All() []Codon {
	codons := make([]Codon, 0, NCodon)
	for _, n0 := range alphabet {
		for _, n1 := range alphabet {
			for _, n2 := range alphabet {
				codons = append(codons, Codon{n0, n1, n2})
			}
		}
	}
	return codons
}

// Stops returns all the codons translating to bio.Unknown.
func Stops() (stops []Codon) {
	for _, c := range All() {
		if bio.IsStopCodon(c) {
			stops = append(stops, c)
		}
	}
	return
}
