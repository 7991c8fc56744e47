package textutil

import "testing"

func TestCountNoun(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, "0 unique strings"},
		{1, "1 unique string"},
		{2, "2 unique strings"},
		{-1, "-1 unique strings"},
	}
	for _, tt := range tests {
		if got := CountNoun(tt.count, "unique string", "unique strings"); got != tt.want {
			t.Errorf("CountNoun(%d) = %q, want %q", tt.count, got, tt.want)
		}
	}
}

func TestTernary(t *testing.T) {
	if got := Ternary(true, "a", "b"); got != "a" {
		t.Errorf("Ternary(true) = %q", got)
	}
	if got := Ternary(false, 1, 2); got != 2 {
		t.Errorf("Ternary(false) = %d", got)
	}
}
