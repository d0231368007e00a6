// Package accumulator implements the numeric gene body. The payload
// is a run of amino acids terminated by four Unknown amino acids; the
// buildup rate is the sum of the payload amino acid codes.
package accumulator

import (
	"fmt"

	"bitbucket.org/Davydov/ribo/bio"
	"bitbucket.org/Davydov/ribo/genes"
	"bitbucket.org/Davydov/ribo/neuro"
)

// Accumulator is a neurotransmitter accumulator decoded from a gene.
type Accumulator struct {
	Transmitter neuro.Transmitter
	Level       uint32
	BuildupRate uint32
}

// Kind returns genes.KindAccumulator.
func (a *Accumulator) Kind() genes.Kind {
	return genes.KindAccumulator
}

func (a *Accumulator) String() string {
	return fmt.Sprintf("<Accumulator %v: level=%d rate=%d>", a.Transmitter, a.Level, a.BuildupRate)
}

// Tick adds the buildup rate to the level.
func (a *Accumulator) Tick() {
	a.Level += a.BuildupRate
}

// Decode returns the buildup rate encoded in body and the number of
// amino acids belonging to the gene. Without a stop run the whole body
// is the payload.
func Decode(body []bio.AminoAcid) (rate uint32, consumed int) {
	payload := body
	consumed = len(body)
	if k, ok := genes.FindStop(body, genes.AccumulatorStop); ok {
		payload = body[:k]
		consumed = k + genes.AccumulatorStop
	}
	for _, aa := range payload {
		rate += aa.Code()
	}
	return
}

// Parser decodes accumulator genes for a single transmitter.
type Parser struct {
	Transmitter neuro.Transmitter
}

// Parse implements genes.Parser.
func (p Parser) Parse(body []bio.AminoAcid) (genes.Record, int, error) {
	rate, consumed := Decode(body)
	return &Accumulator{Transmitter: p.Transmitter, BuildupRate: rate}, consumed, nil
}

// Encode returns a body encoding rate, stop run included. The payload
// is a run of V (code 19) followed by the remainder, if any.
func Encode(rate uint32) []bio.AminoAcid {
	max := bio.V.Code()
	body := make([]bio.AminoAcid, 0, rate/max+1+genes.AccumulatorStop)
	for ; rate >= max; rate -= max {
		body = append(body, bio.V)
	}
	if rate > 0 {
		body = append(body, bio.AminoAcid(rate))
	}
	return append(body, bio.StopRun(genes.AccumulatorStop)...)
}
