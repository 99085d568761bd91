package udf

// EvalFunc is the narrow contract a host adapter needs to run a scalar
// function: a plan-time schema check and a per-row evaluation.
type EvalFunc interface {
	// OutputSchema validates the input schema and returns the schema
	// of the function's output.
	OutputSchema(input Schema) (Schema, error)

	// Exec evaluates a single row. A non-nil error is a hard failure
	// for the row; a soft failure is reported only through the Result.
	Exec(input Tuple) (Result, error)
}
