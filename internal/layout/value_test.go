package layout

import "testing"

func TestValue_Resolve(t *testing.T) {
	type tc struct {
		value     Value
		reference int
		density   float64
		fallback  int
		expected  int
	}

	tests := map[string]tc{
		"dp at density 1": {
			value:     Dp(50),
			reference: 1000,
			density:   1,
			expected:  50,
		},
		"dp at density 2.5": {
			value:     Dp(50),
			reference: 1000,
			density:   2.5,
			expected:  125,
		},
		"per mille of reference": {
			value:     PerMille(140),
			reference: 1080,
			density:   3,
			expected:  151,
		},
		"per mille above the reference": {
			value:     PerMille(1400),
			reference: 1000,
			density:   1,
			expected:  1400,
		},
		"auto uses fallback": {
			value:     Auto(),
			reference: 1000,
			density:   1,
			fallback:  33,
			expected:  33,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.Resolve(tt.reference, tt.density, tt.fallback); got != tt.expected {
				t.Errorf("Resolve() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestValue_IsAuto(t *testing.T) {
	if !Auto().IsAuto() {
		t.Error("Auto().IsAuto() = false")
	}
	if Dp(1).IsAuto() || PerMille(1).IsAuto() {
		t.Error("fixed values report IsAuto")
	}
}
