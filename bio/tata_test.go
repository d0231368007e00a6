package bio

import "testing"

func mustDNA(tst *testing.T, s string) []DNA {
	dna, err := ParseDNA(s)
	if err != nil {
		tst.Fatal(err)
	}
	return dna
}

func TestReadGene(tst *testing.T) {
	rna, ok := ReadGene(mustDNA(tst, "ATTAGAATTA"), 0)
	if !ok {
		tst.Fatal("No gene found")
	}
	if s := RNAString(rna); s != "UUAGA" {
		tst.Error("Wrong RNA strand:", s)
	}
}

func TestReadGeneEnd(tst *testing.T) {
	rna, ok := ReadGene(mustDNA(tst, "ATTAGA"), 0)
	if !ok {
		tst.Fatal("No gene found")
	}
	if s := RNAString(rna); s != "UU" {
		tst.Error("Wrong RNA strand:", s)
	}
}

func TestReadGeneStartIndex(tst *testing.T) {
	genome := mustDNA(tst, "GGGAATTAGAATTA")
	rna, ok := ReadGene(genome, 4)
	if !ok {
		tst.Fatal("No gene found")
	}
	if s := RNAString(rna); s != "UUAGA" {
		tst.Error("Wrong RNA strand:", s)
	}
	if _, ok := ReadGene(genome, 100); ok {
		tst.Error("Start beyond the genome should not produce a gene")
	}
}

func TestReadGeneEmpty(tst *testing.T) {
	if _, ok := ReadGene(mustDNA(tst, "ATTA"), 0); ok {
		tst.Error("A single box should not produce a gene")
	}
	if _, ok := ReadGene(nil, 0); ok {
		tst.Error("Empty genome should not produce a gene")
	}
}
