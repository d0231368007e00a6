// Package catalog registers the gene kinds of the neuron model.
package catalog

import (
	"fmt"

	"bitbucket.org/Davydov/ribo/accumulator"
	"bitbucket.org/Davydov/ribo/formula"
	"bitbucket.org/Davydov/ribo/genes"
	"bitbucket.org/Davydov/ribo/neuro"
	"bitbucket.org/Davydov/ribo/promoter"
)

// Gene labels.
const (
	Activation     = "Activation"
	UpdateFunction = "UpdateFunction"
)

// AccumulatorLabel returns the label of the accumulator gene for t.
func AccumulatorLabel(t neuro.Transmitter) string {
	name := t.String()
	return fmt.Sprintf("Accumulator<%c%s>", name[0]-'a'+'A', name[1:])
}

// Register registers accumulators for every transmitter followed by
// the activation and update formulas.
func Register(b *genes.Builder) error {
	for _, t := range neuro.Transmitters {
		label := AccumulatorLabel(t)
		_, err := b.Register(label, promoter.IdentityOf(label), genes.KindAccumulator,
			accumulator.Parser{Transmitter: t})
		if err != nil {
			return err
		}
	}
	formulas := []struct {
		label string
		role  formula.Role
	}{
		{Activation, formula.Activation},
		{UpdateFunction, formula.Update},
	}
	for _, f := range formulas {
		_, err := b.Register(f.label, promoter.IdentityOf(f.label), genes.KindFormula,
			formula.Parser{Role: f.role, Width: b.PromoterSize()})
		if err != nil {
			return err
		}
	}
	return nil
}

// Build returns a registry with all the catalog genes using headers
// of n amino acids.
func Build(n int) (*genes.Registry, error) {
	b, err := genes.NewBuilder(n)
	if err != nil {
		return nil, err
	}
	if err := Register(b); err != nil {
		return nil, err
	}
	return b.Build(), nil
}
