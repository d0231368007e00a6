// Package neuro contains the neurotransmitters and the neuron levels
// which formula genes are evaluated against.
package neuro

import (
	"fmt"
	"strings"
)

// Transmitter is a neurotransmitter.
type Transmitter int

const (
	// Dopamine transmitter.
	Dopamine Transmitter = iota
	// Serotonin transmitter.
	Serotonin
	// Norepinephrine transmitter.
	Norepinephrine
)

// Transmitters lists all the transmitters in order.
var Transmitters = []Transmitter{Dopamine, Serotonin, Norepinephrine}

var names = [...]string{"dopamine", "serotonin", "norepinephrine"}

// String returns the transmitter name as used by formula variables.
func (t Transmitter) String() string {
	if t < 0 || int(t) >= len(names) {
		return fmt.Sprintf("Transmitter(%d)", int(t))
	}
	return names[t]
}

// ParseTransmitter returns a transmitter by its name (case insensitive).
func ParseTransmitter(s string) (Transmitter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if s == name {
			return Transmitter(i), nil
		}
	}
	return 0, fmt.Errorf("unknown transmitter: %q", s)
}

// Levels are the neurotransmitter levels of a neuron.
type Levels struct {
	Dopamine       int
	Serotonin      int
	Norepinephrine int
}

// Get returns the level of t.
func (l Levels) Get(t Transmitter) int {
	switch t {
	case Dopamine:
		return l.Dopamine
	case Serotonin:
		return l.Serotonin
	case Norepinephrine:
		return l.Norepinephrine
	}
	return 0
}

// Set sets the level of t.
func (l *Levels) Set(t Transmitter, v int) {
	switch t {
	case Dopamine:
		l.Dopamine = v
	case Serotonin:
		l.Serotonin = v
	case Norepinephrine:
		l.Norepinephrine = v
	}
}

// Vars returns the levels keyed by transmitter names.
func (l Levels) Vars() map[string]interface{} {
	vars := make(map[string]interface{}, len(Transmitters))
	for _, t := range Transmitters {
		vars[t.String()] = l.Get(t)
	}
	return vars
}

func (l Levels) String() string {
	return fmt.Sprintf("dopamine=%d serotonin=%d norepinephrine=%d",
		l.Dopamine, l.Serotonin, l.Norepinephrine)
}
