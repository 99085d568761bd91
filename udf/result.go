package udf

import "fmt"

type Kind int

const (
	// KindValue is a successfully computed result
	KindValue Kind = iota
	// KindOverflow is a soft failure: the row produces no value, but
	// processing of other rows continues.
	KindOverflow
	// KindInvalidInput is a hard failure: the row's input could not
	// be used at all.
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "Value"
	case KindOverflow:
		return "Overflow"
	case KindInvalidInput:
		return "InvalidInput"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Result is the outcome of a single evaluation.
type Result struct {
	kind  Kind
	value int64
}

func Value(n int64) Result {
	return Result{
		kind:  KindValue,
		value: n,
	}
}

func Overflow() Result {
	return Result{
		kind: KindOverflow,
	}
}

func InvalidInput() Result {
	return Result{
		kind: KindInvalidInput,
	}
}

func (r Result) Kind() Kind {
	return r.kind
}

// Int64 returns the computed value, and false if the result
// isn't a value.
func (r Result) Int64() (int64, bool) {
	if r.kind != KindValue {
		return 0, false
	}
	return r.value, true
}

// IsNull reports whether the host should emit a null for this row.
func (r Result) IsNull() bool {
	return r.kind != KindValue
}

func (r Result) String() string {
	if r.kind == KindValue {
		return fmt.Sprintf("Value(%d)", r.value)
	}
	return r.kind.String()
}
