package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/bmad/matrix"
)

var benchSizes = []int{128, 256, 512}

// Results land here so the compiler keeps the calls.
var (
	sinkB  *matrix.Boolean
	sinkCo [][]int
)

func BenchmarkBooleanProduct(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1337))
			A := randomBoolean(b, rng, n, n, 0.1)
			B := randomBoolean(b, rng, n, n, 0.1)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.BooleanProduct(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkB = m
			}
		})
	}
}

func BenchmarkCoOccurrence(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(4242))
			A := randomBoolean(b, rng, n, n/4, 0.1)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				co, err := matrix.CoOccurrence(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkCo = co
			}
		})
	}
}
