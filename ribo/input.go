package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"bitbucket.org/Davydov/ribo/bio"
	"bitbucket.org/Davydov/ribo/codon"
)

// strand is a named amino acid strand.
type strand struct {
	name string
	aas  []bio.AminoAcid
}

// readStrands reads strands in the given format. For DNA the
// transcription unit starting at position start is translated.
func readStrands(rd io.Reader, format string, start int) ([]strand, error) {
	switch format {
	case "protein":
		var strands []strand
		scanner := bufio.NewScanner(rd)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			aas, err := bio.ParseProtein(line)
			if err != nil {
				return nil, fmt.Errorf("strand %d: %w", len(strands)+1, err)
			}
			strands = append(strands, strand{fmt.Sprintf("strand%d", len(strands)+1), aas})
		}
		return strands, scanner.Err()
	case "fasta":
		seqs, err := bio.ParseFasta(rd)
		if err != nil {
			return nil, err
		}
		strands := make([]strand, 0, len(seqs))
		for _, seq := range seqs {
			aas, err := bio.ParseProtein(seq.Sequence)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", seq.Name, err)
			}
			strands = append(strands, strand{seq.Name, aas})
		}
		return strands, nil
	case "dna":
		seqs, err := bio.ParseFasta(rd)
		if err != nil {
			return nil, err
		}
		strands := make([]strand, 0, len(seqs))
		for _, seq := range seqs {
			dna, err := bio.ParseDNA(seq.Sequence)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", seq.Name, err)
			}
			rna, ok := bio.ReadGene(dna, start)
			if !ok {
				log.Warningf("No transcription unit in %s", seq.Name)
				continue
			}
			log.Debugf("%s: transcribed %d nucleotides, codon usage:\n%v", seq.Name, len(rna), codon.Count(rna))
			aas := codon.Translate(rna)
			if len(aas) == 0 {
				log.Warningf("No complete codon in %s", seq.Name)
				continue
			}
			strands = append(strands, strand{seq.Name, aas})
		}
		return strands, nil
	}
	return nil, fmt.Errorf("Unknown input format: %s", format)
}

// readStrandsFile reads strands from a file.
func readStrandsFile(fn, format string, start int) ([]strand, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	strands, err := readStrands(f, format, start)
	if err != nil {
		return nil, err
	}
	log.Infof("Read %d strands from %s", len(strands), fn)
	return strands, nil
}
