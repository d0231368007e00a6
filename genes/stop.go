package genes

import "bitbucket.org/Davydov/ribo/bio"

// AccumulatorStop is the width of the stop run ending accumulator
// genes.
const AccumulatorStop = 4

// FindStop returns the start of the first run of width Unknown amino
// acids in body.
func FindStop(body []bio.AminoAcid, width int) (int, bool) {
	if width < 1 {
		return 0, false
	}
	run := 0
	for i, aa := range body {
		if aa != bio.Unknown {
			run = 0
			continue
		}
		run++
		if run == width {
			return i - width + 1, true
		}
	}
	return 0, false
}
