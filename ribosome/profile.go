package ribosome

import (
	"github.com/agnivade/levenshtein"
	"github.com/gonum/matrix/mat64"

	"bitbucket.org/Davydov/ribo/bio"
	"bitbucket.org/Davydov/ribo/genes"
)

// Score is the best header distance for a single window.
type Score struct {
	// Window is the window offset in the strand.
	Window int
	// Gene is the closest header, the earliest registered on ties.
	Gene *genes.Descriptor
	// Distance is the edit distance to the closest header.
	Distance int
}

// Profile computes the closest header for every window of the
// strand. Unlike the scanner it does not move a cursor, so overlapping
// windows are all reported. Profile returns nil if the registry is
// empty.
func (s *Scanner) Profile(strand []bio.AminoAcid) []Score {
	n := s.reg.PromoterSize()
	if len(s.headers) == 0 || len(strand) < n {
		return nil
	}
	str := bio.ProteinString(strand)
	res := make([]Score, 0, len(str)-n+1)
	for w := 0; w+n <= len(str); w++ {
		sc := Score{Window: w, Distance: n + 1}
		for i, header := range s.headers {
			if dist := levenshtein.ComputeDistance(str[w:w+n], header); dist < sc.Distance {
				sc.Gene = s.reg.At(i)
				sc.Distance = dist
			}
		}
		res = append(res, sc)
	}
	return res
}

// HeaderDistances returns the matrix of pairwise edit distances
// between registered headers. It returns nil for an empty registry.
func HeaderDistances(reg *genes.Registry) *mat64.Dense {
	n := reg.Len()
	if n == 0 {
		return nil
	}
	d := mat64.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dist := float64(Distance(reg.At(i).Header, reg.At(j).Header))
			d.Set(i, j, dist)
			d.Set(j, i, dist)
		}
	}
	return d
}

// Margin returns the smallest off-diagonal distance and its indices.
// Two headers closer than twice the match threshold can be confused
// by the scanner. ok is false if there are less than two headers.
func Margin(d *mat64.Dense) (min float64, i, j int, ok bool) {
	if d == nil {
		return
	}
	rows, cols := d.Dims()
	for r := 0; r < rows; r++ {
		for c := r + 1; c < cols; c++ {
			if v := d.At(r, c); !ok || v < min {
				min, i, j, ok = v, r, c, true
			}
		}
	}
	return
}
