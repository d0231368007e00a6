// Package promoter derives promoter headers: fixed length amino acid
// signatures identifying gene types.
//
// A header is computed from a 128-bit identity value. For each
// nucleotide i the identity is shifted right by i whole bytes and
// masked to two bits, so only bits 8i and 8i+1 are used. The two bits
// select a DNA nucleotide (A, C, T, G), and consecutive nucleotide
// triples are transcribed and translated into the header amino acids.
package promoter

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"bitbucket.org/Davydov/ribo/bio"
)

// Identity is a stable 128-bit identity of a gene type.
type Identity struct {
	Hi uint64
	Lo uint64
}

// IdentityOf hashes a type label into an identity (FNV-128a).
func IdentityOf(label string) Identity {
	h := fnv.New128a()
	h.Write([]byte(label))
	sum := h.Sum(nil)
	return Identity{
		Hi: binary.BigEndian.Uint64(sum[:8]),
		Lo: binary.BigEndian.Uint64(sum[8:]),
	}
}

// Byte returns the i-th byte of the identity, counting from the least
// significant one. Bytes beyond 16 are zero.
func (id Identity) Byte(i int) byte {
	switch {
	case i < 0:
		return 0
	case i < 8:
		return byte(id.Lo >> (8 * uint(i)))
	case i < 16:
		return byte(id.Hi >> (8 * uint(i-8)))
	}
	return 0
}

func (id Identity) String() string {
	return fmt.Sprintf("%016x%016x", id.Hi, id.Lo)
}

// Nucleotides returns u nucleotides extracted from the identity.
func Nucleotides(id Identity, u int) []bio.DNA {
	dna := make([]bio.DNA, u)
	for i := range dna {
		dna[i] = bio.DNAFromBits(id.Byte(i))
	}
	return dna
}

// HeaderN derives a header of n amino acids from u nucleotides. u
// should be 3n; nucleotides beyond 3n are unused.
func HeaderN(id Identity, n, u int) ([]bio.AminoAcid, error) {
	if n < 1 {
		return nil, fmt.Errorf("header size should be > 0, got %d", n)
	}
	if u < 3*n {
		return nil, fmt.Errorf("%d nucleotides are not enough for a header of %d", u, n)
	}
	dna := Nucleotides(id, u)
	header := make([]bio.AminoAcid, n)
	for i := range header {
		header[i] = bio.TranslateDNA([3]bio.DNA{dna[3*i], dna[3*i+1], dna[3*i+2]})
	}
	return header, nil
}

// Header derives a header of n amino acids. It returns nil for n < 1.
func Header(id Identity, n int) []bio.AminoAcid {
	header, err := HeaderN(id, n, 3*n)
	if err != nil {
		return nil
	}
	return header
}
