package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 0.5, 48)
	if len(s) != 48 {
		t.Fatalf("length = %d, want 48", len(s))
	}
	if s[0] != 0 {
		t.Errorf("s[0] = %v, want 0", s[0])
	}
	want := 0.5 * math.Sin(2*math.Pi*1000/48000)
	if math.Abs(s[1]-want) > 1e-15 {
		t.Errorf("s[1] = %v, want %v", s[1], want)
	}
}

func TestImpulse(t *testing.T) {
	s := Impulse(8, 3)
	for i, v := range s {
		want := 0.0
		if i == 3 {
			want = 1.0
		}
		if v != want {
			t.Errorf("s[%d] = %v, want %v", i, v, want)
		}
	}
	// Out-of-range position yields silence.
	for _, v := range Impulse(4, 10) {
		if v != 0 {
			t.Fatal("expected all zeros for out-of-range impulse position")
		}
	}
}

func TestDC(t *testing.T) {
	for _, v := range DC(-0.25, 16) {
		if v != -0.25 {
			t.Fatalf("got %v, want -0.25", v)
		}
	}
}

func TestNyquistTone(t *testing.T) {
	s := NyquistTone(0.8, 6)
	want := []float64{0.8, -0.8, 0.8, -0.8, 0.8, -0.8}
	for i := range s {
		if s[i] != want[i] {
			t.Errorf("s[%d] = %v, want %v", i, s[i], want[i])
		}
	}
}
