package numeric

import "testing"

func TestGeneral(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{42, "42"},
		{-42, "-42"},
		{12345678901, "12345678901"},
		{45498.666666666664, "45498.66667"},
		{2.09003333333333, "2.090033333"},
		{6.041666666666667, "6.041666667"},
		{0.1 + 0.2, "0.3"},
		{-1.5, "-1.5"},
		{123456789012, "1.23457E+11"},
		{1e20, "1E+20"},
		{1.5e-10, "1.5E-10"},
		{0.000000001, "0.000000001"},
	}
	for _, tt := range tests {
		if got := General(tt.v); got != tt.want {
			t.Errorf("General(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
