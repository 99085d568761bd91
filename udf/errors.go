package udf

const (
	evalFailedMessage      = "Something bad happened!"
	schemaSizeMessage      = "Expected (int, int), input does not have 2 fields"
	schemaTypesMessageTmpl = "Expected input (int, int), received schema (%s, %s)"
)

// EvalError is a hard failure for a single row. The message is fixed;
// the reason is available through Unwrap.
type EvalError struct {
	Message string
	Cause   error
}

func newEvalError(cause error) *EvalError {
	return &EvalError{
		Message: evalFailedMessage,
		Cause:   cause,
	}
}

func (e *EvalError) Error() string {
	return e.Message
}

func (e *EvalError) Unwrap() error {
	return e.Cause
}

// SchemaError is returned when an input schema can't be accepted.
// It happens before any row is evaluated.
type SchemaError struct {
	Message string
	Input   Schema
}

func (e *SchemaError) Error() string {
	return e.Message
}
