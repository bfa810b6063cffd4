package lcg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Reference vectors generated with java.util.Random; the generator must
// stay bit-compatible so the daily rotation survives the migration.
func TestIntn_ReferenceVectors(t *testing.T) {
	tests := []struct {
		name  string
		seed  int64
		bound int
		want  []int
	}{
		{"seed 42 bound 10", 42, 10, []int{0, 3, 8, 4, 0}},
		{"seed 0 bound 100", 0, 100, []int{60, 48, 29, 47, 15}},
		{"seed 20240307 bound 16 (power of two)", 20240307, 16, []int{1, 9, 5, 7}},
		{"seed 123456789 bound 7", 123456789, 7, []int{1, 0, 6, 3, 4, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.seed)
			got := make([]int, len(tt.want))
			for i := range got {
				got[i] = s.Intn(tt.bound)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntn_Deterministic(t *testing.T) {
	a := New(20240307)
	b := New(20240307)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(10), b.Intn(10))
	}
}

func TestIntn_WithinBounds(t *testing.T) {
	s := New(99)
	for i := 0; i < 1000; i++ {
		v := s.Intn(13)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 13)
	}
}

func TestIntn_PanicsOnNonPositiveBound(t *testing.T) {
	s := New(1)
	assert.Panics(t, func() { s.Intn(0) })
	assert.Panics(t, func() { s.Intn(-5) })
}
