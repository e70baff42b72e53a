package service

import (
	"testing"
)

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{
			name:  "Plain number",
			input: "4500000",
			want:  4500000,
		},
		{
			name:  "Thousands separators",
			input: "1,234",
			want:  1234,
		},
		{
			name:  "Currency symbol",
			input: "₹1,234",
			want:  1234,
		},
		{
			name:  "Indian grouping",
			input: "₹45,00,000",
			want:  4500000,
		},
		{
			name:  "Currency word",
			input: "45 Lakh",
			want:  45,
		},
		{
			name:  "Decimal stored price",
			input: "4500000.50",
			want:  450000050,
		},
		{
			name:  "Not a number",
			input: "N/A",
			want:  0,
		},
		{
			name:  "Empty string",
			input: "",
			want:  0,
		},
		{
			name:  "No digits at all",
			input: "price on request",
			want:  0,
		},
		{
			name:  "Overflow falls back to zero",
			input: "99999999999999999999999999",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePrice(tt.input)
			if got != tt.want {
				t.Errorf("NormalizePrice(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizePrice_NeverNegative(t *testing.T) {
	inputs := []string{"-500", "minus 100", "(1,000)", "₹-2,50,000"}
	for _, input := range inputs {
		if got := NormalizePrice(input); got < 0 {
			t.Errorf("NormalizePrice(%q) = %d, want non-negative", input, got)
		}
	}
}
