package numbers

import (
	"github.com/Invicton-Labs/go-pigudf/constraints"
)

func PowInt[BaseType constraints.Integer, ExpType constraints.Integer](base BaseType, exp ExpType) BaseType {
	if exp < 0 {
		panic("PowInt cannot be used with negative exponents")
	}
	if exp == 0 {
		return 1
	}
	v := base
	var i ExpType
	for i = 1; i < exp; i++ {
		v *= base
	}
	return v
}

// PowIntChecked multiplies an int64 accumulator (starting at 1) by `base`, `exp` times.
// If the accumulator ever decreases across a multiplication, the product is assumed to
// have wrapped around the int64 range and the loop stops with overflowed set to true.
//
// A zero base is exempt from the check, so 0^exp is 0 for any positive exp.
// The check only catches wraps that show up as a decrease. A negative base
// trips it, and a wrap that lands on a larger value goes unnoticed.
// An exponent of zero or less runs no iterations and returns 1.
func PowIntChecked[ExpType constraints.Integer](base int64, exp ExpType) (result int64, overflowed bool) {
	result = 1
	var i ExpType
	for i = 0; i < exp; i++ {
		previous := result
		result *= base
		if base != 0 && previous > result {
			return result, true
		}
	}
	return result, false
}
