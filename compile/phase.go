// Package compile is the boundary to the external front-end compiler: it
// names the compilation phases a tree can be inspected at, defines the
// Frontend interface a compiler plugs in behind, and drives one render,
// converting every failure into diagnostic text instead of letting it
// escape.
package compile

import (
	"fmt"
	"strings"
)

// Phase is a named stage of the front end's pipeline.
type Phase int

const (
	PhaseInitialization Phase = iota + 1
	PhaseParsing
	PhaseConversion
	PhaseSemanticAnalysis
	PhaseCanonicalization
	PhaseInstructionSelection
	PhaseClassGeneration
	PhaseOutput
	PhaseFinalization
)

var phaseNames = map[Phase]string{
	PhaseInitialization:       "initialization",
	PhaseParsing:              "parsing",
	PhaseConversion:           "conversion",
	PhaseSemanticAnalysis:     "semantic-analysis",
	PhaseCanonicalization:     "canonicalization",
	PhaseInstructionSelection: "instruction-selection",
	PhaseClassGeneration:      "class-generation",
	PhaseOutput:               "output",
	PhaseFinalization:         "finalization",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Phases lists all phases in pipeline order.
func Phases() []Phase {
	out := make([]Phase, 0, len(phaseNames))
	for p := PhaseInitialization; p <= PhaseFinalization; p++ {
		out = append(out, p)
	}
	return out
}

// ParsePhase resolves a phase by name or 1-based number.
func ParsePhase(s string) (Phase, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	for p, name := range phaseNames {
		if name == s {
			return p, nil
		}
	}
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err == nil {
		p := Phase(n)
		if _, ok := phaseNames[p]; ok {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown compilation phase %q", s)
}
