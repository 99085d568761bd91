package udf

import (
	"github.com/Invicton-Labs/go-pigudf/log"
)

// WarningCode classifies a non-fatal diagnostic. The host aggregates
// warnings by code.
type WarningCode string

const (
	AccessingNonExistentField          WarningCode = "ACCESSING_NON_EXISTENT_FIELD"
	DivideByZero                       WarningCode = "DIVIDE_BY_ZERO"
	FieldDiscardedTypeConversionFailed WarningCode = "FIELD_DISCARDED_TYPE_CONVERSION_FAILED"
	TooLargeForInt                     WarningCode = "TOO_LARGE_FOR_INT"
	UDFWarning1                        WarningCode = "UDF_WARNING_1"
)

// Warner receives advisory diagnostics. Implementations must be safe
// for concurrent use, and nothing a Warner does affects the result
// of the evaluation that raised the warning.
type Warner interface {
	Warn(msg string, code WarningCode)
}

// WarnerFunc adapts a function to a Warner.
type WarnerFunc func(msg string, code WarningCode)

func (f WarnerFunc) Warn(msg string, code WarningCode) {
	f(msg, code)
}

// LogWarner writes warnings to a logger. If Logger is nil,
// the package default logger is used. Production loggers sample
// repeated messages (100 per second, then 1 in 100), so a flood of
// per-row warnings is only partly logged; use warnings.Aggregator
// when exact counts matter.
type LogWarner struct {
	Logger log.Logger
}

func (w LogWarner) Warn(msg string, code WarningCode) {
	if w.Logger == nil {
		log.Warnw(msg, "code", string(code))
		return
	}
	w.Logger.Warnw(msg, "code", string(code))
}
