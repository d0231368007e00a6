package codon

import (
	"fmt"

	"bitbucket.org/Davydov/ribo/bio"
)

// Frame splits an RNA strand into codons starting at offset. The
// trailing partial codon is dropped.
func Frame(rna []bio.RNA, offset int) []Codon {
	if offset < 0 || offset >= len(rna) {
		return nil
	}
	rna = rna[offset:]
	codons := make([]Codon, 0, len(rna)/3)
	for i := 0; i+3 <= len(rna); i += 3 {
		codons = append(codons, Codon{rna[i], rna[i+1], rna[i+2]})
	}
	return codons
}

// Translate translates an RNA strand in the first reading frame.
func Translate(rna []bio.RNA) []bio.AminoAcid {
	codons := Frame(rna, 0)
	aas := make([]bio.AminoAcid, len(codons))
	for i, c := range codons {
		aas[i] = c.Translate()
	}
	return aas
}

// TranslateDNA transcribes and translates a DNA strand in the first
// reading frame.
func TranslateDNA(dna []bio.DNA) []bio.AminoAcid {
	return Translate(bio.TranscribeAll(dna))
}

// Usage stores codon counts of a strand.
type Usage [NCodon]int

// Count computes codon usage of the RNA strand in the first reading
// frame.
func Count(rna []bio.RNA) (u Usage) {
	for _, c := range Frame(rna, 0) {
		if num := c.Num(); num >= 0 {
			u[num]++
		}
	}
	return
}

// Total returns the number of counted codons.
func (u Usage) Total() (t int) {
	for _, n := range u {
		t += n
	}
	return
}

// Frequency returns codon frequencies; all zeros for an empty usage.
func (u Usage) Frequency() []float64 {
	f := make([]float64, NCodon)
	t := u.Total()
	if t == 0 {
		return f
	}
	for i, n := range u {
		f[i] = float64(n) / float64(t)
	}
	return f
}

func (u Usage) String() (s string) {
	s = "<Usage:"
	for i, n := range u {
		if n == 0 {
			continue
		}
		c, _ := FromNum(i)
		s += fmt.Sprintf(" %v: %v,", c, n)
	}
	s = s[:len(s)-1] + ">"
	return
}
