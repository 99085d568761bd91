package udf

import (
	"fmt"

	"github.com/Invicton-Labs/go-stackerr"
)

// Tuple is the ordered record a host hands to a function for each row.
type Tuple []any

func NewTuple(values ...any) Tuple {
	return Tuple(values)
}

func (t Tuple) Size() int {
	return len(t)
}

func (t Tuple) Get(index int) (any, stackerr.Error) {
	if index < 0 || index >= len(t) {
		return nil, stackerr.Errorf("Field index %d out of range for tuple with %d fields", index, len(t))
	}
	return t[index], nil
}

// Int gets a field that must hold a host `int` (an int32). A null field
// or a field of any other type is an error.
func (t Tuple) Int(index int) (int32, stackerr.Error) {
	v, err := t.Get(index)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, stackerr.Errorf("Field %d is null", index)
	}
	i, ok := v.(int32)
	if !ok {
		return 0, stackerr.Errorf("Field %d has type %s, expected int", index, FindTypeName(FindType(v))).With(map[string]any{
			"field_index": index,
			"go_type":     fmt.Sprintf("%T", v),
		})
	}
	return i, nil
}
