// Package ribosome scans amino acid strands for gene headers and
// dispatches gene bodies to the registered parsers.
//
// For every position of the cursor the scanner slides a window of the
// promoter size over the rest of the strand and compares each window
// with every registered header using the edit distance. The best
// candidate must be closer than half of the promoter size. Ties are
// broken by the window offset first and the registration order second,
// so the earliest window wins.
package ribosome

import (
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"
	"github.com/op/go-logging"

	"bitbucket.org/Davydov/ribo/bio"
	"bitbucket.org/Davydov/ribo/genes"
)

// log is the global logging variable.
var log = logging.MustGetLogger("ribosome")

var (
	// ErrNoProgress is returned if a parser consumed nothing from a
	// non-empty body.
	ErrNoProgress = errors.New("parser consumed nothing")
	// ErrOverrun is returned if a parser consumed more than the body.
	ErrOverrun = errors.New("parser consumed beyond the strand")
)

// Distance returns the edit (Levenshtein) distance between two amino
// acid sequences.
func Distance(a, b []bio.AminoAcid) int {
	return levenshtein.ComputeDistance(bio.ProteinString(a), bio.ProteinString(b))
}

// Match is a header found in a strand.
type Match struct {
	// Gene is the matched descriptor.
	Gene *genes.Descriptor
	// Window is the window offset relative to the scanned slice.
	Window int
	// Distance is the edit distance between the window and the header.
	Distance int
}

// Scanner scans strands using a sealed registry. A scanner has no
// mutable state and can be used from multiple goroutines.
type Scanner struct {
	reg *genes.Registry
	// headers are one-letter representations of registered headers.
	headers []string
}

// NewScanner creates a new Scanner.
func NewScanner(reg *genes.Registry) *Scanner {
	s := &Scanner{
		reg:     reg,
		headers: make([]string, reg.Len()),
	}
	for i, d := range reg.All() {
		s.headers[i] = bio.ProteinString(d.Header)
	}
	return s
}

// Registry returns the scanner registry.
func (s *Scanner) Registry() *genes.Registry {
	return s.reg
}

// Threshold returns the distance a match must be strictly below.
func (s *Scanner) Threshold() int {
	return s.reg.PromoterSize() / 2
}

// FindHeader finds the best header match in the slice. ok is false if
// no window is close enough to any header.
func (s *Scanner) FindHeader(slice []bio.AminoAcid) (m Match, ok bool) {
	n := s.reg.PromoterSize()
	thr := s.Threshold()
	str := bio.ProteinString(slice)

	m.Distance = n + 1
	for w := 0; w+n <= len(str); w++ {
		window := str[w : w+n]
		for i, header := range s.headers {
			dist := levenshtein.ComputeDistance(window, header)
			if dist < thr && dist < m.Distance {
				m = Match{Gene: s.reg.At(i), Window: w, Distance: dist}
				ok = true
			}
			if m.Distance == 0 {
				break
			}
		}
	}
	return
}

// Scan scans the strand from the beginning. See ScanFrom.
func (s *Scanner) Scan(strand []bio.AminoAcid, sink genes.Sink) (int, error) {
	return s.ScanFrom(strand, 0, sink)
}

// ScanFrom scans the strand starting at cursor and passes every
// decoded gene to sink. It returns the cursor position where scanning
// stopped. Scanning stops silently when no header is found; products
// expressed before an error remain valid.
//
// After a match the cursor advances by window*n+n, where window is the
// winning window offset and n is the promoter size, rather than to the
// end of the window.
func (s *Scanner) ScanFrom(strand []bio.AminoAcid, cursor int, sink genes.Sink) (int, error) {
	n := s.reg.PromoterSize()
	if cursor < 0 {
		cursor = 0
	}
	for cursor < len(strand) {
		m, ok := s.FindHeader(strand[cursor:])
		if !ok {
			log.Debugf("No header found after position %d", cursor)
			break
		}
		log.Debugf("Found %s in window %d (distance %d)", m.Gene.Label, m.Window, m.Distance)

		cursor += m.Window*n + n
		if cursor > len(strand) {
			cursor = len(strand)
		}
		body := strand[cursor:]

		rec, consumed, err := m.Gene.Parser.Parse(body)
		if err != nil {
			return cursor, fmt.Errorf("gene %s at %d: %w", m.Gene.Label, cursor, err)
		}
		if consumed < 0 || consumed > len(body) {
			return cursor, fmt.Errorf("%w: gene %s at %d consumed %d of %d",
				ErrOverrun, m.Gene.Label, cursor, consumed, len(body))
		}
		if consumed == 0 && len(body) > 0 {
			return cursor, fmt.Errorf("%w: gene %s at %d", ErrNoProgress, m.Gene.Label, cursor)
		}

		err = sink.Express(genes.Product{
			Gene:     m.Gene,
			Start:    cursor,
			Consumed: consumed,
			Record:   rec,
		})
		if err != nil {
			return cursor, err
		}
		cursor += consumed
	}
	return cursor, nil
}

// Express scans the strand and returns all the decoded genes.
func (s *Scanner) Express(strand []bio.AminoAcid) ([]genes.Product, error) {
	var c genes.Collector
	_, err := s.Scan(strand, &c)
	return c.Products, err
}
