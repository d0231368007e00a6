// Package genes defines gene descriptors, the body parser contract and
// the gene registry.
//
// The registry is built in two phases. A Builder collects descriptors
// during start up; Build seals it and returns a read-only Registry
// which is passed to the scanner. Registration order is preserved and
// breaks ties between equally good header matches.
package genes

import (
	"fmt"

	"bitbucket.org/Davydov/ribo/bio"
)

// Kind enumerates the gene kinds known to the body parsers.
type Kind int

const (
	// KindAccumulator genes decode into a neurotransmitter accumulator.
	KindAccumulator Kind = iota
	// KindFormula genes decode into a compiled expression.
	KindFormula
)

func (k Kind) String() string {
	switch k {
	case KindAccumulator:
		return "accumulator"
	case KindFormula:
		return "formula"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Record is a decoded gene.
type Record interface {
	Kind() Kind
}

// Parser decodes a gene body. body starts immediately after the
// matched header. consumed is the number of amino acids belonging to
// the gene, its stop run included; it should be positive for a
// non-empty body.
type Parser interface {
	Parse(body []bio.AminoAcid) (rec Record, consumed int, err error)
}

// ParserFunc is an adapter to use ordinary functions as parsers.
type ParserFunc func(body []bio.AminoAcid) (Record, int, error)

// Parse calls f(body).
func (f ParserFunc) Parse(body []bio.AminoAcid) (Record, int, error) {
	return f(body)
}

// Descriptor is a registered gene type.
type Descriptor struct {
	// Label is used for diagnostics only.
	Label string
	// Kind is the gene kind produced by Parser.
	Kind Kind
	// Header is the promoter header, immutable once registered.
	Header []bio.AminoAcid
	// Parser decodes the gene body.
	Parser Parser

	// index is the registration order.
	index int
}

// Index returns the registration order of the descriptor.
func (d *Descriptor) Index() int {
	return d.index
}

func (d *Descriptor) String() string {
	return fmt.Sprintf("<Gene %d: %s (%v) %s>", d.index, d.Label, d.Kind, bio.ProteinString(d.Header))
}

// Product is a decoded gene as it is handed over to the host.
type Product struct {
	// Gene is the matched descriptor.
	Gene *Descriptor
	// Start is the strand position of the gene body.
	Start int
	// Consumed is the number of amino acids consumed by the parser.
	Consumed int
	// Record is the parser output.
	Record Record
}

// Sink receives decoded genes as soon as they are produced.
type Sink interface {
	Express(p Product) error
}

// SinkFunc is an adapter to use ordinary functions as sinks.
type SinkFunc func(p Product) error

// Express calls f(p).
func (f SinkFunc) Express(p Product) error {
	return f(p)
}

// Collector is a sink storing products in memory.
type Collector struct {
	Products []Product
}

// Express appends the product.
func (c *Collector) Express(p Product) error {
	c.Products = append(c.Products, p)
	return nil
}
