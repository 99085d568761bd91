package udf

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/Invicton-Labs/go-pigudf/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"
)

type warning struct {
	msg  string
	code WarningCode
}

type recordingWarner struct {
	lock     sync.Mutex
	warnings []warning
}

func (w *recordingWarner) Warn(msg string, code WarningCode) {
	w.lock.Lock()
	defer w.lock.Unlock()
	w.warnings = append(w.warnings, warning{msg: msg, code: code})
}

func (w *recordingWarner) recorded() []warning {
	w.lock.Lock()
	defer w.lock.Unlock()
	return append([]warning(nil), w.warnings...)
}

func TestPowerCompute(t *testing.T) {
	tests := []struct {
		name     string
		base     int32
		exponent int32
		want     Result
	}{
		{name: "one squared", base: 1, exponent: 2, want: Value(1)},
		{name: "two cubed", base: 2, exponent: 3, want: Value(8)},
		{name: "ten cubed", base: 10, exponent: 3, want: Value(1000)},
		{name: "zero exponent", base: 99, exponent: 0, want: Value(1)},
		{name: "zero base", base: 0, exponent: 5, want: Value(0)},
		{name: "one to a large power", base: 1, exponent: math.MaxInt16, want: Value(1)},
		{name: "negative exponent", base: 7, exponent: -2, want: Value(1)},
		{name: "largest power of ten", base: 10, exponent: 18, want: Value(1_000_000_000_000_000_000)},
		{name: "int32 max squared", base: math.MaxInt32, exponent: 2, want: Value(math.MaxInt32 * math.MaxInt32)},
		{name: "wraps past int64", base: 10, exponent: 19, want: Overflow()},
		{name: "negative base", base: -3, exponent: 3, want: Overflow()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warner := &recordingWarner{}
			p := NewPower(PowerInput{Warner: warner})
			got := p.Compute(tt.base, tt.exponent)
			assert.Equal(t, tt.want, got)
			if tt.want.Kind() == KindOverflow {
				assert.Equal(t, []warning{{msg: "Overflow!", code: TooLargeForInt}}, warner.recorded())
			} else {
				assert.Empty(t, warner.recorded())
			}
		})
	}
}

func TestPowerComputeRejectNegativeExponent(t *testing.T) {
	warner := &recordingWarner{}
	p := NewPower(PowerInput{Warner: warner, RejectNegativeExponent: true})
	assert.Equal(t, InvalidInput(), p.Compute(2, -1))
	assert.Equal(t, Value(1), p.Compute(2, 0))
	assert.Empty(t, warner.recorded())
}

func TestPowerComputeIsIdempotent(t *testing.T) {
	p := NewPower(PowerInput{Warner: &recordingWarner{}})
	for i := 0; i < 3; i++ {
		assert.Equal(t, Value(59049), p.Compute(3, 10))
		assert.Equal(t, Overflow(), p.Compute(10, 20))
	}
}

func TestPowerComputeConcurrent(t *testing.T) {
	warner := &recordingWarner{}
	p := NewPower(PowerInput{Warner: warner})

	var group errgroup.Group
	for i := 0; i < 50; i++ {
		group.Go(func() error {
			if got := p.Compute(2, 10); got != Value(1024) {
				return errors.New("unexpected value: " + got.String())
			}
			if got := p.Compute(10, 19); got != Overflow() {
				return errors.New("unexpected overflow result: " + got.String())
			}
			return nil
		})
	}
	require.NoError(t, group.Wait())
	assert.Len(t, warner.recorded(), 50)
}

func TestPowerExec(t *testing.T) {
	p := NewPower(PowerInput{Warner: &recordingWarner{}})

	got, err := p.Exec(NewTuple(int32(2), int32(3)))
	require.NoError(t, err)
	assert.Equal(t, Value(8), got)

	got, err = p.Exec(NewTuple(int32(10), int32(19)))
	require.NoError(t, err)
	assert.Equal(t, Overflow(), got)
	assert.True(t, got.IsNull())
}

func TestPowerExecInvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		input     Tuple
		wantCause string
	}{
		{name: "nil tuple", input: nil, wantCause: "out of range"},
		{name: "one field", input: NewTuple(int32(2)), wantCause: "out of range"},
		{name: "null base", input: NewTuple(nil, int32(2)), wantCause: "Field 0 is null"},
		{name: "null exponent", input: NewTuple(int32(2), nil), wantCause: "Field 1 is null"},
		{name: "string base", input: NewTuple("2", int32(2)), wantCause: "Field 0 has type chararray"},
		{name: "long exponent", input: NewTuple(int32(2), int64(2)), wantCause: "Field 1 has type long"},
		{name: "go int", input: NewTuple(2, 3), wantCause: "Field 0 has type unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPower(PowerInput{Warner: &recordingWarner{}})
			got, err := p.Exec(tt.input)
			assert.Equal(t, InvalidInput(), got)
			require.Error(t, err)
			assert.Equal(t, "Something bad happened!", err.Error())

			var evalErr *EvalError
			require.True(t, errors.As(err, &evalErr))
			require.NotNil(t, errors.Unwrap(err))
			assert.Contains(t, errors.Unwrap(err).Error(), tt.wantCause)
		})
	}
}

func TestPowerExecRejectNegativeExponent(t *testing.T) {
	p := NewPower(PowerInput{Warner: &recordingWarner{}, RejectNegativeExponent: true})
	got, err := p.Exec(NewTuple(int32(2), int32(-4)))
	assert.Equal(t, InvalidInput(), got)
	require.Error(t, err)
	assert.Equal(t, "Something bad happened!", err.Error())
	assert.Contains(t, errors.Unwrap(err).Error(), "Negative exponent -4")
}

func TestPowerExecRecoversWarnerPanic(t *testing.T) {
	p := NewPower(PowerInput{Warner: WarnerFunc(func(string, WarningCode) {
		panic("warning sink is closed")
	})})
	got, err := p.Exec(NewTuple(int32(10), int32(19)))
	assert.Equal(t, InvalidInput(), got)
	require.Error(t, err)
	assert.Equal(t, "Something bad happened!", err.Error())
	assert.NotNil(t, errors.Unwrap(err))
}

func TestPowerOutputSchema(t *testing.T) {
	p := NewPower(PowerInput{})

	tests := []struct {
		name    string
		input   Schema
		want    Schema
		wantErr string
	}{
		{
			name:  "two ints",
			input: NewSchema(FieldSchema{Alias: "a", Type: TypeInt}, FieldSchema{Alias: "b", Type: TypeInt}),
			want:  NewSchema(FieldSchema{Type: TypeLong}),
		},
		{
			name:    "one field",
			input:   NewSchema(FieldSchema{Alias: "a", Type: TypeInt}),
			wantErr: "Expected (int, int), input does not have 2 fields",
		},
		{
			name:    "no fields",
			input:   NewSchema(),
			wantErr: "Expected (int, int), input does not have 2 fields",
		},
		{
			name:    "three fields",
			input:   NewSchema(FieldSchema{Type: TypeInt}, FieldSchema{Type: TypeInt}, FieldSchema{Type: TypeInt}),
			wantErr: "Expected (int, int), input does not have 2 fields",
		},
		{
			name:    "chararray and int",
			input:   NewSchema(FieldSchema{Alias: "s", Type: TypeCharArray}, FieldSchema{Alias: "a", Type: TypeInt}),
			wantErr: "Expected input (int, int), received schema (chararray, int)",
		},
		{
			name:    "int and long",
			input:   NewSchema(FieldSchema{Type: TypeInt}, FieldSchema{Type: TypeLong}),
			wantErr: "Expected input (int, int), received schema (int, long)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.OutputSchema(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				var schemaErr *SchemaError
				require.True(t, errors.As(err, &schemaErr))
				assert.Equal(t, tt.input, schemaErr.Input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "{long}", got.String())
		})
	}
}

func TestPowerZeroBase(t *testing.T) {
	warner := &recordingWarner{}
	p := NewPower(PowerInput{Warner: warner})
	for _, exponent := range []int32{1, 2, 5, 64, math.MaxInt16} {
		assert.Equal(t, Value(0), p.Compute(0, exponent), "0^%d", exponent)
	}

	got, err := p.Exec(NewTuple(int32(0), int32(3)))
	require.NoError(t, err)
	assert.Equal(t, Value(0), got)
	assert.Empty(t, warner.recorded())
}

func TestPowerZeroValueWarnsThroughDefaultLogger(t *testing.T) {
	previous := log.Default()
	defer log.SetDefault(previous)

	core, logs := observer.New(zapcore.DebugLevel)
	log.SetDefault(log.FromZap(zap.New(core)))

	var p Power
	assert.NotPanics(t, func() {
		assert.Equal(t, Overflow(), p.Compute(10, 19))
	})
	assert.Equal(t, Value(1000), p.Compute(10, 3))
	assert.Equal(t, 1, logs.FilterMessage("Overflow!").Len())
}
