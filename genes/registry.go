package genes

import (
	"errors"
	"fmt"

	"github.com/op/go-logging"

	"bitbucket.org/Davydov/ribo/bio"
	"bitbucket.org/Davydov/ribo/promoter"
)

// log is the global logging variable.
var log = logging.MustGetLogger("genes")

// DefaultPromoterSize is the header length used when nothing else is
// configured.
const DefaultPromoterSize = 4

var (
	ErrSealed       = errors.New("registry is sealed")
	ErrNoLabel      = errors.New("gene label is required")
	ErrNoParser     = errors.New("gene parser is required")
	ErrPromoterSize = errors.New("promoter size should be > 0")
	ErrHeaderSize   = errors.New("header size mismatch")
)

// Builder collects gene descriptors during initialization. It is not
// safe for concurrent use.
type Builder struct {
	n      int
	descs  []*Descriptor
	sealed bool
}

// NewBuilder creates a builder for headers of n amino acids.
func NewBuilder(n int) (*Builder, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrPromoterSize, n)
	}
	return &Builder{n: n}, nil
}

// PromoterSize returns the header length.
func (b *Builder) PromoterSize() int {
	return b.n
}

// Register derives the header from identity and appends a descriptor.
func (b *Builder) Register(label string, identity promoter.Identity, kind Kind, parser Parser) (*Descriptor, error) {
	header, err := promoter.HeaderN(identity, b.n, 3*b.n)
	if err != nil {
		return nil, err
	}
	return b.RegisterHeader(label, header, kind, parser)
}

// RegisterHeader appends a descriptor with an explicitly given header.
// The header is copied.
func (b *Builder) RegisterHeader(label string, header []bio.AminoAcid, kind Kind, parser Parser) (*Descriptor, error) {
	if b.sealed {
		return nil, fmt.Errorf("%w: cannot register %s", ErrSealed, label)
	}
	if label == "" {
		return nil, ErrNoLabel
	}
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoParser, label)
	}
	if len(header) != b.n {
		return nil, fmt.Errorf("%w: %s has %d, expected %d", ErrHeaderSize, label, len(header), b.n)
	}

	d := &Descriptor{
		Label:  label,
		Kind:   kind,
		Header: append([]bio.AminoAcid(nil), header...),
		Parser: parser,
		index:  len(b.descs),
	}
	for _, other := range b.descs {
		if sameHeader(other.Header, d.Header) {
			log.Warningf("Genes %s and %s share header %s", other.Label, d.Label, bio.ProteinString(d.Header))
		}
	}
	b.descs = append(b.descs, d)
	log.Debugf("Registered %v", d)
	return d, nil
}

// MustRegister is like Register but panics on error.
func (b *Builder) MustRegister(label string, identity promoter.Identity, kind Kind, parser Parser) *Descriptor {
	d, err := b.Register(label, identity, kind, parser)
	if err != nil {
		panic(err)
	}
	return d
}

// Build seals the builder and returns the registry. Further
// registrations fail with ErrSealed.
func (b *Builder) Build() *Registry {
	b.sealed = true
	descs := make([]*Descriptor, len(b.descs))
	copy(descs, b.descs)
	return &Registry{n: b.n, descs: descs}
}

// Registry is an ordered, read-only catalog of gene descriptors. It is
// safe for concurrent use by multiple scanners.
type Registry struct {
	n     int
	descs []*Descriptor
}

// PromoterSize returns the header length.
func (r *Registry) PromoterSize() int {
	return r.n
}

// Len returns the number of registered genes.
func (r *Registry) Len() int {
	return len(r.descs)
}

// At returns the i-th registered descriptor.
func (r *Registry) At(i int) *Descriptor {
	return r.descs[i]
}

// All returns descriptors in registration order.
func (r *Registry) All() []*Descriptor {
	descs := make([]*Descriptor, len(r.descs))
	copy(descs, r.descs)
	return descs
}

// Lookup finds a descriptor by label.
func (r *Registry) Lookup(label string) (*Descriptor, bool) {
	for _, d := range r.descs {
		if d.Label == label {
			return d, true
		}
	}
	return nil, false
}

func sameHeader(a, b []bio.AminoAcid) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
