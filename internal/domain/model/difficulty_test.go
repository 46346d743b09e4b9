package model

import (
	"math"
	"testing"
)

func ptr(v float64) *float64 { return &v }

func TestNormalizeDifficulty(t *testing.T) {
	tests := []struct {
		name string
		raw  *float64
		want Difficulty
	}{
		{name: "absent", raw: nil, want: UnknownDifficulty()},
		{name: "NaN", raw: ptr(math.NaN()), want: UnknownDifficulty()},
		{name: "positive infinity", raw: ptr(math.Inf(1)), want: UnknownDifficulty()},
		{name: "negative infinity", raw: ptr(math.Inf(-1)), want: UnknownDifficulty()},
		{name: "zero", raw: ptr(0), want: KnownDifficulty(147)},
		{name: "just below boundary", raw: ptr(399), want: KnownDifficulty(399)},
		{name: "boundary", raw: ptr(400), want: KnownDifficulty(400)},
		{name: "low rating compressed", raw: ptr(350), want: KnownDifficulty(353)},
		{name: "negative rating compressed", raw: ptr(-400), want: KnownDifficulty(54)},
		{name: "high rating rounded", raw: ptr(1234.4), want: KnownDifficulty(1234)},
		{name: "tie rounds to even (down)", raw: ptr(1234.5), want: KnownDifficulty(1234)},
		{name: "tie rounds to even (up)", raw: ptr(1235.5), want: KnownDifficulty(1236)},
		{name: "very high rating", raw: ptr(3999.7), want: KnownDifficulty(4000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDifficulty(tt.raw)
			if got != tt.want {
				t.Errorf("NormalizeDifficulty() = %v (known=%v), want %v (known=%v)", got, got.Known(), tt.want, tt.want.Known())
			}
		})
	}
}

// TestNormalizeDifficultyContinuity checks that the compressed branch meets
// the linear branch at 400 without a jump.
func TestNormalizeDifficultyContinuity(t *testing.T) {
	prev := -1
	for raw := 300.0; raw <= 500.0; raw += 0.5 {
		v, ok := NormalizeDifficulty(ptr(raw)).Value()
		if !ok {
			t.Fatalf("NormalizeDifficulty(%v) is unknown", raw)
		}
		if v < prev {
			t.Fatalf("NormalizeDifficulty(%v) = %d, decreased from %d", raw, v, prev)
		}
		if prev >= 0 && v-prev > 1 {
			t.Fatalf("NormalizeDifficulty(%v) = %d, jumped from %d", raw, v, prev)
		}
		prev = v
	}
}

func TestDifficultyUnknownDistinctFromZero(t *testing.T) {
	zero := KnownDifficulty(0)
	unknown := UnknownDifficulty()
	if zero == unknown {
		t.Fatal("known 0 must not equal unknown")
	}
	if unknown.String() != UnknownLabel {
		t.Errorf("unknown.String() = %q, want %q", unknown.String(), UnknownLabel)
	}
	if zero.String() != "0" {
		t.Errorf("zero.String() = %q, want %q", zero.String(), "0")
	}
}
