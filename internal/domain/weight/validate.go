package weight

import (
	"errors"
	"math"
	"strconv"
)

// MaxKg is the domain sanity bound on a single measurement.
const MaxKg = 300.0

// Validation errors carry the exact message shown inline in the form.
var (
	ErrNotNumeric  = errors.New("Le poids doit être un nombre valide")
	ErrNotPositive = errors.New("Le poids doit être supérieur à 0")
	ErrTooHigh     = errors.New("Le poids semble invalide (> 300kg)")
)

// Parse validates a raw form value before any store call is made.
// Accepted iff numeric and 0 < value <= MaxKg.
func Parse(raw string) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) {
		return 0, ErrNotNumeric
	}
	if value <= 0 {
		return 0, ErrNotPositive
	}
	if value > MaxKg {
		return 0, ErrTooHigh
	}
	return value, nil
}
