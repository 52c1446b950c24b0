package compile

import "testing"

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseInitialization, "initialization"},
		{PhaseConversion, "conversion"},
		{PhaseSemanticAnalysis, "semantic-analysis"},
		{PhaseFinalization, "finalization"},
		{Phase(42), "phase(42)"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.expected {
			t.Errorf("Phase(%d).String() = %q, want %q", int(tt.phase), got, tt.expected)
		}
	}
}

func TestPhasesOrdered(t *testing.T) {
	phases := Phases()
	if len(phases) != 9 {
		t.Fatalf("got %d phases, want 9", len(phases))
	}
	if phases[0] != PhaseInitialization || phases[8] != PhaseFinalization {
		t.Errorf("phases out of order: %v", phases)
	}
	for i := 1; i < len(phases); i++ {
		if phases[i] != phases[i-1]+1 {
			t.Errorf("gap between %s and %s", phases[i-1], phases[i])
		}
	}
}

func TestParsePhase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Phase
		wantErr  bool
	}{
		{
			name:     "by name",
			input:    "conversion",
			expected: PhaseConversion,
		},
		{
			name:     "case insensitive",
			input:    "Semantic-Analysis",
			expected: PhaseSemanticAnalysis,
		},
		{
			name:     "surrounding whitespace",
			input:    " parsing ",
			expected: PhaseParsing,
		},
		{
			name:     "by number",
			input:    "3",
			expected: PhaseConversion,
		},
		{
			name:    "number out of range",
			input:   "10",
			wantErr: true,
		},
		{
			name:    "unknown name",
			input:   "linking",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePhase(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected an error, got %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got %s, want %s", got, tt.expected)
			}
		})
	}
}
