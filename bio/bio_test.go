package bio

import (
	"bytes"
	"errors"
	"testing"
)

func TestTranslateTotal(tst *testing.T) {
	stops := map[string]bool{"AAU": true, "AUU": true, "UUA": true, "UUU": true}
	n := 0
	for _, n0 := range rnaAlphabet {
		for _, n1 := range rnaAlphabet {
			for _, n2 := range rnaAlphabet {
				triple := [3]RNA{n0, n1, n2}
				aa := Translate(triple)
				if aa > Unknown {
					tst.Error("Undefined amino acid for", RNAString(triple[:]))
				}
				name := RNAString(triple[:])
				if (aa == Unknown) != stops[name] {
					tst.Errorf("Wrong stop status for %s: %v", name, aa)
				}
				n++
			}
		}
	}
	if n != 64 {
		tst.Error("Wrong number of triples:", n)
	}
}

func TestTranslateKnown(tst *testing.T) {
	cases := map[string]AminoAcid{
		"AAA": A, "ACG": N, "AGU": C, "CAC": Q, "CGA": H,
		"UAG": K, "UUC": M, "UUG": F, "UGU": P, "GAA": P,
		"GCG": W, "GUU": Y, "GGA": Y, "GGG": V,
	}
	for s, exp := range cases {
		rna, err := ParseRNA(s)
		if err != nil {
			tst.Fatal(err)
		}
		if aa := Translate([3]RNA{rna[0], rna[1], rna[2]}); aa != exp {
			tst.Errorf("Wrong translation for %s: %v, expected %v", s, aa, exp)
		}
	}
}

func TestTranslateMalformed(tst *testing.T) {
	if Translate([3]RNA{'A', 'T', 'A'}) != Unknown {
		tst.Error("Triple with T should translate to UNKNOWN")
	}
	if Translate([3]RNA{0, 0, 0}) != Unknown {
		tst.Error("Zero triple should translate to UNKNOWN")
	}
}

func TestTranscribe(tst *testing.T) {
	dna, err := ParseDNA("acTg")
	if err != nil {
		tst.Fatal(err)
	}
	if s := RNAString(TranscribeAll(dna)); s != "ACUG" {
		tst.Error("Wrong transcription:", s)
	}
	if TranslateDNA([3]DNA{'T', 'T', 'T'}) != Unknown {
		tst.Error("TTT should translate to UNKNOWN")
	}
}

func TestParseDNAError(tst *testing.T) {
	_, err := ParseDNA("ACU")
	if !errors.Is(err, ErrBadLetter) {
		tst.Error("Expected ErrBadLetter, got", err)
	}
}

func TestCodes(tst *testing.T) {
	if Unknown.Code() != 0 || A.Code() != 0 || R.Code() != 1 || V.Code() != 19 {
		tst.Error("Wrong amino acid codes")
	}
}

func TestParseProtein(tst *testing.T) {
	aas, err := ParseProtein("DAPW rr**_")
	if err != nil {
		tst.Fatal(err)
	}
	exp := []AminoAcid{D, A, P, W, R, R, Unknown, Unknown, Unknown}
	if len(aas) != len(exp) {
		tst.Fatal("Wrong length:", len(aas))
	}
	for i := range exp {
		if aas[i] != exp[i] {
			tst.Errorf("Wrong amino acid at %d: %v", i, aas[i])
		}
	}
	if s := ProteinString(aas); s != "DAPWRR***" {
		tst.Error("Wrong string:", s)
	}
	if _, err := ParseProtein("DAB"); !errors.Is(err, ErrBadLetter) {
		tst.Error("Expected ErrBadLetter, got", err)
	}
}

func TestParseFasta(tst *testing.T) {
	data := ">first\nDAPW\nRRRR\n\n>second\nPF AF\n"
	seqs, err := ParseFasta(bytes.NewBufferString(data))
	if err != nil {
		tst.Fatal(err)
	}
	if len(seqs) != 2 {
		tst.Fatal("Wrong number of sequences:", len(seqs))
	}
	if seqs[0].Name != "first" || seqs[0].Sequence != "DAPWRRRR" {
		tst.Error("Wrong first sequence:", seqs[0])
	}
	if seqs[1].Sequence != "PFAF" {
		tst.Error("Wrong second sequence:", seqs[1])
	}
	if _, err := ParseFasta(bytes.NewBufferString("DAPW\n")); err == nil {
		tst.Error("Sequence without a name should fail")
	}
	if _, err := ParseFasta(bytes.NewBufferString(">first\nDAPW\n> \nRRRR\n")); err == nil {
		tst.Error("Sequence with an empty name should fail")
	}
}
