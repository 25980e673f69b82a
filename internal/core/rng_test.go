package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 32; i++ {
		if a.Float32() != b.Float32() {
			t.Fatalf("sequences diverge at %d", i)
		}
	}
}

func TestRNGRange(t *testing.T) {
	r := NewRNG(3)
	for i := 0; i < 1000; i++ {
		if v := r.Range(2, -1); v < -1 || v >= 2 {
			t.Fatalf("Range(2,-1) = %f", v)
		}
		if v := r.Signed(); v < -1 || v >= 1 {
			t.Fatalf("Signed = %f", v)
		}
		if v := r.Int64(); v < 0 {
			t.Fatalf("Int64 = %d", v)
		}
	}
}
