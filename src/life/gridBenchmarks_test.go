package life

import (
	"math/rand"
	"testing"
)

const (
	benchWidth  = 200
	benchHeight = 200
)

func benchGrid(b *testing.B) *Grid {
	g, err := NewGrid(benchWidth, benchHeight, WithRand(rand.New(rand.NewSource(1))))
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func BenchmarkGrid_Advance(b *testing.B) {
	g := benchGrid(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Advance()
	}
}

func BenchmarkGrid_Fingerprint(b *testing.B) {
	g := benchGrid(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Fingerprint()
	}
}
