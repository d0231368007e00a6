package main

import "bitbucket.org/Davydov/ribo/checkpoint"

// CallSummary is storing information on the ribo invocation.
type CallSummary struct {
	// Version stores ribo version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// Time is the computations time in seconds.
	TotalTime float64 `json:"time"`
}

// ScanSummary is storing ribo scan summary information.
type ScanSummary struct {
	CallSummary
	// PromoterSize is the gene header length.
	PromoterSize int `json:"promoterSize"`
	// Strands stores the results for every strand.
	Strands []StrandSummary `json:"strands"`
}

// StrandSummary stores the genes expressed from one strand.
type StrandSummary struct {
	// Name is the strand name.
	Name string `json:"name"`
	// Length is the strand length in amino acids.
	Length int `json:"length"`
	// Cursor is the position where scanning stopped.
	Cursor int `json:"cursor"`
	// Resumed is true if a checkpoint was found.
	Resumed bool `json:"resumed,omitempty"`
	// Genes are the decoded genes.
	Genes []checkpoint.Record `json:"genes"`
	// Error is the decoding error which stopped the scan.
	Error string `json:"error,omitempty"`
}
