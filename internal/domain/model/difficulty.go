package model

import (
	"math"
	"strconv"
)

// UnknownLabel is displayed wherever a difficulty or tier is not available.
const UnknownLabel = "不明"

// Difficulty is a display difficulty. The zero value is unknown, which is
// distinct from a known difficulty of 0.
type Difficulty struct {
	value int
	known bool
}

// KnownDifficulty wraps a display difficulty value.
func KnownDifficulty(v int) Difficulty {
	return Difficulty{value: v, known: true}
}

// UnknownDifficulty returns a difficulty without a value.
func UnknownDifficulty() Difficulty {
	return Difficulty{}
}

// Value returns the difficulty and whether it is known.
func (d Difficulty) Value() (int, bool) {
	return d.value, d.known
}

// Known reports whether the difficulty carries a value.
func (d Difficulty) Known() bool {
	return d.known
}

func (d Difficulty) String() string {
	if !d.known {
		return UnknownLabel
	}
	return strconv.Itoa(d.value)
}

// NormalizeDifficulty converts a raw model difficulty into a display
// difficulty. Values below 400 are compressed into [0, 400) with
// 400 / exp(1 - raw/400). Rounding is half to even in both branches.
// A nil or non-finite raw value yields an unknown difficulty.
func NormalizeDifficulty(raw *float64) Difficulty {
	if raw == nil {
		return UnknownDifficulty()
	}
	r := *raw
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return UnknownDifficulty()
	}
	if r < 400 {
		r = 400 / math.Exp(1-r/400)
	}
	return KnownDifficulty(int(math.RoundToEven(r)))
}
