package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/gonum/matrix/mat64"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"bitbucket.org/Davydov/ribo/accumulator"
	"bitbucket.org/Davydov/ribo/bio"
	"bitbucket.org/Davydov/ribo/formula"
	"bitbucket.org/Davydov/ribo/genes"
	"bitbucket.org/Davydov/ribo/neuro"
	"bitbucket.org/Davydov/ribo/ribosome"
)

// headers prints registered genes and the header distance matrix.
func headers(w io.Writer, reg *genes.Registry) {
	for _, d := range reg.All() {
		fmt.Fprintf(w, "%d\t%s\t%v\t%s\n", d.Index(), d.Label, d.Kind, bio.ProteinString(d.Header))
	}
	d := ribosome.HeaderDistances(reg)
	if d == nil {
		return
	}
	fmt.Fprintf(w, "\n%v\n", mat64.Formatted(d, mat64.Prefix("")))
	min, i, j, ok := ribosome.Margin(d)
	if !ok {
		return
	}
	fmt.Fprintf(w, "\nminimum distance: %v (%s, %s)\n", min, reg.At(i).Label, reg.At(j).Label)
	if int(min) < reg.PromoterSize() {
		log.Warningf("Headers of %s and %s are too close (%v) and can be confused", reg.At(i).Label, reg.At(j).Label, min)
	}
}

// translate prints transcription units of a DNA FASTA file translated
// to amino acids.
func translate(fn string) {
	if err := writeTranslation(os.Stdout, fn, *dnaStart); err != nil {
		log.Fatal(err)
	}
}

// writeTranslation writes the translated transcription units of a DNA
// FASTA file to w in FASTA format.
func writeTranslation(w io.Writer, fn string, start int) error {
	strands, err := readStrandsFile(fn, "dna", start)
	if err != nil {
		return err
	}
	seqs := make(bio.Sequences, len(strands))
	for i, st := range strands {
		seqs[i] = bio.Sequence{Name: st.name, Sequence: bio.ProteinString(st.aas)}
	}
	_, err = fmt.Fprintln(w, seqs)
	return err
}

// encode returns the strand encoding a gene, its header included. For
// accumulators value is the buildup rate, for formula genes it is the
// formula.
func encode(reg *genes.Registry, label, value string) (string, error) {
	d, ok := reg.Lookup(label)
	if !ok {
		return "", fmt.Errorf("Unknown gene: %s", label)
	}
	var body []bio.AminoAcid
	switch d.Kind {
	case genes.KindAccumulator:
		rate, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return "", err
		}
		body = accumulator.Encode(uint32(rate))
	case genes.KindFormula:
		if _, err := formula.Compile(value); err != nil {
			return "", err
		}
		var err error
		body, err = formula.Encode(value, reg.PromoterSize())
		if err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("Cannot encode %v genes", d.Kind)
	}
	return bio.ProteinString(d.Header) + bio.ProteinString(body), nil
}

// eval evaluates a formula, either as a number or as a gate.
func eval(src string, gate bool, dopamine, serotonin, norepinephrine int) (string, error) {
	f, err := formula.Compile(src)
	if err != nil {
		return "", err
	}
	l := neuro.Levels{Dopamine: dopamine, Serotonin: serotonin, Norepinephrine: norepinephrine}
	log.Infof("Evaluating %s with %v", src, l)
	if gate {
		b, err := f.Active(l)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(b), nil
	}
	x, err := f.Number(l)
	if err != nil {
		return "", err
	}
	return strconv.FormatFloat(x, 'g', -1, 64), nil
}

// profile prints the best header distance for every window of all the
// strands. The profile of the first strand is plotted if png is set.
func profile(reg *genes.Registry, fn, png string) {
	strands, err := readStrandsFile(fn, *format, *dnaStart)
	if err != nil {
		log.Fatal(err)
	}
	s := ribosome.NewScanner(reg)
	for i, st := range strands {
		scores := s.Profile(st.aas)
		writeProfile(os.Stdout, st.name, scores, s.Threshold())
		if i == 0 && png != "" {
			if err := plotProfile(png, st.name, scores, s.Threshold()); err != nil {
				log.Error("Error plotting profile:", err)
			}
		}
	}
}

// writeProfile prints scores, matches are marked with a star.
func writeProfile(w io.Writer, name string, scores []ribosome.Score, threshold int) {
	for _, sc := range scores {
		mark := ""
		if sc.Distance < threshold {
			mark = "*"
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n", name, sc.Window, sc.Distance, sc.Gene.Label, mark)
	}
}

// plotProfile plots scores and the match threshold.
func plotProfile(fn, name string, scores []ribosome.Score, threshold int) error {
	p := plot.New()
	p.Title.Text = name
	p.X.Label.Text = "window"
	p.Y.Label.Text = "distance"

	pts := make(plotter.XYs, len(scores))
	thr := make(plotter.XYs, len(scores))
	for i, sc := range scores {
		pts[i].X = float64(sc.Window)
		pts[i].Y = float64(sc.Distance)
		thr[i].X = float64(sc.Window)
		thr[i].Y = float64(threshold)
	}

	err := plotutil.AddLinePoints(p,
		"distance", pts,
		"threshold", thr)
	if err != nil {
		return err
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, fn)
}
