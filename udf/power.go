package udf

import (
	"fmt"

	"github.com/Invicton-Labs/go-pigudf/numbers"
	"github.com/Invicton-Labs/go-stackerr"
)

const OverflowMessage = "Overflow!"

var _ EvalFunc = (*Power)(nil)

type PowerInput struct {
	// Warner receives the overflow diagnostics. Defaults to a LogWarner
	// on the default logger.
	Warner Warner

	// RejectNegativeExponent makes a negative exponent an invalid input.
	// By default a negative exponent runs zero multiplications and
	// yields 1.
	RejectNegativeExponent bool
}

// Power computes `base ^ exponent` for a pair of host ints, producing a
// host long. It holds no mutable state and can be shared between
// goroutines. The zero value warns through the default logger.
type Power struct {
	warner                 Warner
	rejectNegativeExponent bool
}

func NewPower(input PowerInput) *Power {
	p := &Power{
		warner:                 input.Warner,
		rejectNegativeExponent: input.RejectNegativeExponent,
	}
	if p.warner == nil {
		p.warner = LogWarner{}
	}
	return p
}

// Compute raises base to exponent. If the running product wraps around
// the int64 range (detected as a decrease between two multiplications),
// it warns with TooLargeForInt and returns Overflow.
func (p *Power) Compute(base int32, exponent int32) Result {
	if exponent < 0 && p.rejectNegativeExponent {
		return InvalidInput()
	}
	result, overflowed := numbers.PowIntChecked(int64(base), exponent)
	if overflowed {
		p.getWarner().Warn(OverflowMessage, TooLargeForInt)
		return Overflow()
	}
	return Value(result)
}

func (p *Power) getWarner() Warner {
	if p.warner == nil {
		return LogWarner{}
	}
	return p.warner
}

func (p *Power) Exec(input Tuple) (result Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			var cause error = stackerr.FromRecover(r)
			result, err = InvalidInput(), newEvalError(cause)
		}
	}()

	base, serr := input.Int(0)
	if serr != nil {
		return InvalidInput(), newEvalError(serr)
	}
	exponent, serr := input.Int(1)
	if serr != nil {
		return InvalidInput(), newEvalError(serr)
	}
	if exponent < 0 && p.rejectNegativeExponent {
		return InvalidInput(), newEvalError(stackerr.Errorf("Negative exponent %d is not supported", exponent))
	}
	return p.Compute(base, exponent), nil
}

// OutputSchema accepts exactly two int fields and declares a single
// unnamed long output.
func (p *Power) OutputSchema(input Schema) (Schema, error) {
	if input.Size() != 2 {
		return Schema{}, &SchemaError{
			Message: schemaSizeMessage,
			Input:   input,
		}
	}
	first, second := input.Fields[0], input.Fields[1]
	if first.Type != TypeInt || second.Type != TypeInt {
		return Schema{}, &SchemaError{
			Message: fmt.Sprintf(schemaTypesMessageTmpl, FindTypeName(first.Type), FindTypeName(second.Type)),
			Input:   input,
		}
	}
	return NewSchema(FieldSchema{Type: TypeLong}), nil
}
