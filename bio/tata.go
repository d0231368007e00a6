package bio

// tataBoxes are the promoter boxes delimiting transcription units in a
// genome.
var tataBoxes = [...][4]DNA{
	{'A', 'T', 'T', 'A'},
	{'T', 'A', 'T', 'A'},
	{'T', 'A', 'A', 'T'},
	{'T', 'T', 'T', 'A'},
}

// IsTATABox tests if the window is one of the TATA boxes.
func IsTATABox(w [4]DNA) bool {
	for _, box := range tataBoxes {
		if box == w {
			return true
		}
	}
	return false
}

// ReadGene reads a transcription unit from the genome starting at
// start. A window of four nucleotides slides over the genome; every
// window which is not a TATA box contributes the transcription of its
// first nucleotide. A TATA box seen after both a box and a
// contributing window ends the unit. ok is false if nothing was
// transcribed.
func ReadGene(genome []DNA, start int) (rna []RNA, ok bool) {
	if start < 0 {
		start = 0
	}
	if start > len(genome) {
		start = len(genome)
	}
	genome = genome[start:]

	foundStart := false
	foundBody := false
	for i := 3; i < len(genome); i++ {
		w := [4]DNA{genome[i-3], genome[i-2], genome[i-1], genome[i]}
		if IsTATABox(w) {
			if foundStart && foundBody {
				return rna, len(rna) > 0
			}
			foundStart = true
			continue
		}
		foundBody = true
		rna = append(rna, Transcribe(w[0]))
	}
	return rna, len(rna) > 0
}
