package services

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect float64
	}{
		{"plain integer", "100000", 100000},
		{"grouped thousands", "1.234.567", 1234567},
		{"decimal comma", "1234,50", 1234.50},
		{"grouped with decimals", "1.234,50", 1234.50},
		{"small decimal", "0,5", 0.5},
		{"leading whitespace", "  2500", 2500},
		{"empty string", "", 0},
		{"whitespace only", "   ", 0},
		{"garbage text", "abc", 0},
		{"mixed garbage", "12a34", 0},
		{"double comma", "1,2,3", 0},
		{"negative", "-500", -500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.input)
			if got != tt.expect {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.expect)
			}
		})
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect float64
	}{
		{"empty defaults to one", "", 1},
		{"whitespace defaults to one", "   ", 1},
		{"plain integer", "3", 3},
		{"decimal comma", "2,5", 2.5},
		{"garbage falls back to zero", "abc", 0},
		{"explicit zero", "0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseQuantity(tt.input)
			if got != tt.expect {
				t.Errorf("ParseQuantity(%q) = %v, want %v", tt.input, got, tt.expect)
			}
		})
	}
}
